package postgres

import "embed"

//go:embed *.sql
var MigrationFiles embed.FS

package sqlite

import "embed"

//go:embed *.sql
var MigrationFiles embed.FS

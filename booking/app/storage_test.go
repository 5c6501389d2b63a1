package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Astemirdum/court-booking/booking/config"
	"github.com/Astemirdum/court-booking/booking/internal/queue"
	"github.com/Astemirdum/court-booking/booking/internal/repository"
	"github.com/Astemirdum/court-booking/pkg/kafka"
	"github.com/Astemirdum/court-booking/pkg/postgres"
	"github.com/Astemirdum/court-booking/pkg/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func unreachablePostgres() postgres.DB {
	return postgres.DB{
		Host:     "127.0.0.1",
		Port:     "1",
		Username: "postgres",
		NameDB:   "quadras_db",
		SSLMode:  "disable",
	}
}

func TestOpenStorage(t *testing.T) {
	log := zap.NewExample().Named("test")
	ctx := context.Background()

	t.Run("sqlite", func(t *testing.T) {
		cfg := &config.Config{
			Storage: config.Storage{Driver: config.DriverSQLite},
			SQLite:  sqlite.Config{Path: filepath.Join(t.TempDir(), "quadras.db")},
		}
		st, err := openStorage(ctx, cfg, log)
		require.NoError(t, err)
		defer st.close()
		require.Equal(t, repository.DriverSQLite, st.repo.Driver())
	})

	t.Run("postgres down, fallback", func(t *testing.T) {
		cfg := &config.Config{
			Storage:  config.Storage{Driver: config.DriverPostgres, Fallback: true},
			Database: unreachablePostgres(),
			SQLite:   sqlite.Config{Path: filepath.Join(t.TempDir(), "quadras.db")},
		}
		st, err := openStorage(ctx, cfg, log)
		require.NoError(t, err)
		defer st.close()
		require.Equal(t, repository.DriverSQLite, st.repo.Driver())

		courts, err := st.repo.ListCourts(ctx)
		require.NoError(t, err)
		require.Len(t, courts, 6)
	})

	t.Run("postgres down, no fallback", func(t *testing.T) {
		cfg := &config.Config{
			Storage:  config.Storage{Driver: config.DriverPostgres},
			Database: unreachablePostgres(),
		}
		_, err := openStorage(ctx, cfg, log)
		require.Error(t, err)
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := openStorage(ctx, &config.Config{Storage: config.Storage{Driver: "mysql"}}, log)
		require.EqualError(t, err, `unknown storage driver "mysql"`)
	})
}

func TestNewPublisher_Disabled(t *testing.T) {
	pub := newPublisher(kafka.Config{}, zap.NewExample().Named("test"))
	require.IsType(t, queue.Nop{}, pub)
}

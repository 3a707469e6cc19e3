package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Migrations are embedded so the binary can bootstrap its schema regardless
// of the working directory it is started from.
//
//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate applies all embedded migration files in lexical order. Every file
// is written to be idempotent (CREATE ... IF NOT EXISTS), so re-running at
// startup is safe.
func Migrate(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	names, err := fs.Glob(migrationsFS, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		sqlBytes, err := migrationsFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := pool.Exec(ctx, string(sqlBytes)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
		logger.Debug().Str("migration", name).Msg("migration applied")
	}

	logger.Info().Int("count", len(names)).Msg("database migrations applied")
	return nil
}

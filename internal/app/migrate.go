package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/guttosm/imoveisxml/db/migrations"
	"github.com/guttosm/imoveisxml/internal/logger"
	goose "github.com/pressly/goose/v3"
)

// Migrate applies every pending migration embedded in the binary.
//
// Parameters:
//   - ctx: cancels the run between migrations.
//   - db: target database.
//
// Returns:
//   - error: provider setup or migration failure.
func Migrate(ctx context.Context, db *sql.DB) error {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	for _, r := range results {
		logger.L().Info().
			Int64("version", r.Source.Version).
			Str("file", r.Source.Path).
			Dur("took", r.Duration).
			Msg("migration applied")
	}
	if len(results) == 0 {
		logger.L().Info().Msg("database schema up to date")
	}
	return nil
}

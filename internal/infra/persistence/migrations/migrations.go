// Package migrations embeds the SQL schema and applies it with golang-migrate.
package migrations

import (
	"context"
	"embed"
	"log/slog"

	"userhub/config"
	"userhub/internal/domain/lifecycle"
	"userhub/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

//go:embed sql/*.sql
var files embed.FS

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
}

// Register applies pending migrations on start when migrations.autoApply is enabled.
// It must be invoked after the Postgres module so the ping hook runs first.
func Register(params Params) {
	if params.Config.Migrations == nil || !params.Config.Migrations.AutoApply {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return Up(ctx, params.DB, params.Logger)
		},
	})
}

// Up applies every migration not yet recorded in schema_migrations.
func Up(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	migrator, err := newMigrator(ctx, db)
	if err != nil {
		return err
	}
	defer func() {
		if srcErr, dbErr := migrator.Close(); srcErr != nil || dbErr != nil {
			logger.Warn("Failed to close migrator", slog.Any("sourceError", srcErr), slog.Any("databaseError", dbErr))
		}
	}()

	err = migrator.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("Database schema is up to date")

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	version, _, _ := migrator.Version()
	logger.Info("Database migrations applied", slog.Uint64("version", uint64(version)))

	return nil
}

func newMigrator(ctx context.Context, db *gorm.DB) (*migrate.Migrate, error) {
	source, err := iofs.New(files, "sql")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open embedded migrations")
	}

	sqlDB, err := db.WithContext(ctx).DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB for migrations")
	}

	driver, err := migratepostgres.WithInstance(sqlDB, &migratepostgres.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migration driver")
	}

	migrator, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migrator")
	}

	return migrator, nil
}

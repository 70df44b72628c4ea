package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jsamuelsen/trivia-service/internal/platform/config"
)

// DefaultCategories are seeded into an empty categories table.
var DefaultCategories = []string{"Science", "Art", "Geography", "History", "Entertainment", "Sports"}

// Open connects to the configured database and tunes the pool.
func Open(cfg *config.DatabaseConfig, logger *slog.Logger) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 NewGormLogger(logger, cfg.SlowThreshold),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("accessing connection pool: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return db, nil
}

func dialectorFor(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return postgres.Open(cfg.DSN), nil
	case config.DriverSQLite:
		return sqlite.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Close releases the connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// Migrate creates or updates the questions and categories tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&categoryRecord{}, &questionRecord{}); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}

	return nil
}

// SeedCategories inserts DefaultCategories when the table is empty and
// reports how many rows it added.
func SeedCategories(ctx context.Context, db *gorm.DB) (int, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&categoryRecord{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting categories: %w", err)
	}

	if count > 0 {
		return 0, nil
	}

	records := make([]categoryRecord, len(DefaultCategories))
	for i, name := range DefaultCategories {
		records[i] = categoryRecord{ID: i + 1, Type: name}
	}

	if err := db.WithContext(ctx).Create(&records).Error; err != nil {
		return 0, fmt.Errorf("seeding categories: %w", err)
	}

	return len(records), nil
}

// Setup runs the optional migration and seed steps selected by cfg.
func Setup(ctx context.Context, db *gorm.DB, cfg *config.DatabaseConfig, logger *slog.Logger) error {
	if cfg.AutoMigrate {
		if err := Migrate(ctx, db); err != nil {
			return err
		}
	}

	if !cfg.Seed {
		return nil
	}

	seeded, err := SeedCategories(ctx, db)
	if err != nil {
		return errors.Join(errors.New("database seed failed"), err)
	}

	if seeded > 0 {
		logger.InfoContext(ctx, "seeded categories", slog.Int("count", seeded))
	}

	return nil
}

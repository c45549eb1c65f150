package db

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Khattouaymen/pressing-sub000/internal/models"

	migrate "github.com/golang-migrate/migrate/v4"
	// The following blank imports register the database drivers and file
	// source for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectAndMigrate opens the database designated by dsn, brings the schema
// up to date and seeds demonstration rows on an empty base. The handle must
// be closed by the caller (see Close).
func ConnectAndMigrate(dsn string) (*gorm.DB, error) {
	dsn = strings.TrimSpace(strings.Trim(dsn, "\"'"))
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_DSN est vide, vérifiez la configuration de l'environnement")
	}
	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "1" {
		logLevel = logger.Info
	}
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel)}

	var db *gorm.DB
	var err error
	for i := 0; i < 10; i++ {
		db, err = gorm.Open(dialectorFor(dsn), cfg)
		if err == nil {
			break
		}
		fmt.Println("Retrying DB connection...", err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect database after retries: %w", err)
	}

	// Basic connectivity test
	if pingErr := db.Exec("SELECT 1").Error; pingErr != nil {
		return nil, fmt.Errorf("db ping failed: %w", pingErr)
	}

	// If MIGRATIONS=1 (or true) we run sql migrations via golang-migrate;
	// otherwise keep the AutoMigrate fallback (dev convenience)
	if v := strings.ToLower(os.Getenv("MIGRATIONS")); v == "1" || v == "true" || v == "yes" {
		if err := runSQLMigrations(dsn); err != nil {
			return nil, fmt.Errorf("sql migrations failed: %w", err)
		}
	} else {
		modelsToMigrate := []interface{}{
			&models.Client{}, &models.ProfessionalClient{}, &models.Piece{},
			&models.Order{}, &models.OrderPiece{}, &models.ProfessionalOrder{},
		}
		for _, m := range modelsToMigrate {
			if migErr := db.AutoMigrate(m); migErr != nil {
				return nil, fmt.Errorf("automigrate %T: %w", m, migErr)
			}
		}
	}

	Seed(db)
	return db, nil
}

// Close releases the underlying connection pool. Paired with
// ConnectAndMigrate so the handle has an explicit open/close lifecycle.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func isPostgres(dsn string) bool {
	lower := strings.ToLower(dsn)
	return strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://")
}

// dialectorFor picks the driver from the DSN shape: URL form targets
// Postgres, anything else is treated as a SQLite path (":memory:" included).
func dialectorFor(dsn string) gorm.Dialector {
	if isPostgres(dsn) {
		return postgres.Open(dsn)
	}
	return sqlite.Open(dsn)
}

// runSQLMigrations executes migrations in ./migrations using the
// golang-migrate file source.
func runSQLMigrations(dsn string) error {
	target := dsn
	if !isPostgres(dsn) {
		target = "sqlite3://" + dsn
	}
	m, err := migrate.New("file://migrations", target)
	if err != nil {
		return err
	}
	if err = m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

package db

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log"

	"wave-estimates-backend/internal/models"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
	"gorm.io/gorm"
)

const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// MigrationStatus holds information about database migration state.
type MigrationStatus struct {
	CurrentVersion uint
	LatestVersion  uint
	Dirty          bool
	Pending        bool
}

// Models lists every table the service owns, in dependency order.
func Models() []interface{} {
	return []interface{}{
		&models.Customer{},
		&models.Item{},
		&models.Estimate{},
		&models.LineItem{},
		&models.EstimateEvent{},
	}
}

// AutoMigrate is the development path: gorm derives the schema from the models.
func AutoMigrate(gdb *gorm.DB) error {
	for _, m := range Models() {
		if err := gdb.AutoMigrate(m); err != nil {
			return fmt.Errorf("automigrate %T: %w", m, err)
		}
	}
	return nil
}

// Migrate applies the schema. With useSQL it runs the embedded SQL migrations
// for the dialect through golang-migrate, otherwise it falls back to AutoMigrate.
func Migrate(gdb *gorm.DB, dialect, dsn string, useSQL bool) error {
	if !useSQL {
		log.Println("[db] applying schema with AutoMigrate")
		return AutoMigrate(gdb)
	}

	log.Printf("[db] applying SQL migrations dialect=%s", dialect)
	return RunMigrations(dialect, dsn)
}

// RunMigrations runs all pending SQL migrations.
func RunMigrations(dialect, dsn string) error {
	m, err := newMigrator(dialect, dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

// GetMigrationStatus reports the applied version against the newest embedded one.
func GetMigrationStatus(dialect, dsn string) (*MigrationStatus, error) {
	m, err := newMigrator(dialect, dsn)
	if err != nil {
		return nil, err
	}
	defer m.Close()

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return nil, err
	}

	latest, err := latestVersion(dialect)
	if err != nil {
		return nil, err
	}

	return &MigrationStatus{
		CurrentVersion: version,
		LatestVersion:  latest,
		Dirty:          dirty,
		Pending:        version < latest,
	}, nil
}

func latestVersion(dialect string) (uint, error) {
	source, err := iofs.New(migrationsFS, "migrations/"+dialect)
	if err != nil {
		return 0, err
	}
	defer source.Close()

	latest, err := source.First()
	if err != nil {
		return 0, err
	}
	for {
		next, err := source.Next(latest)
		if err != nil {
			break
		}
		latest = next
	}
	return latest, nil
}

// newMigrator opens a dedicated connection so closing the migrator never
// touches the pool gorm is serving requests from.
func newMigrator(dialect, dsn string) (*migrate.Migrate, error) {
	var (
		sqlDB  *sql.DB
		driver database.Driver
		err    error
	)

	switch dialect {
	case DialectPostgres:
		if sqlDB, err = sql.Open("pgx", dsn); err != nil {
			return nil, err
		}
		driver, err = postgres.WithInstance(sqlDB, &postgres.Config{})
	case DialectSQLite:
		if sqlDB, err = sql.Open("sqlite3", dsn); err != nil {
			return nil, err
		}
		driver, err = sqlite3.WithInstance(sqlDB, &sqlite3.Config{})
	default:
		return nil, fmt.Errorf("unsupported dialect %q", dialect)
	}
	if err != nil {
		sqlDB.Close()
		return nil, err
	}

	source, err := iofs.New(migrationsFS, "migrations/"+dialect)
	if err != nil {
		driver.Close()
		return nil, err
	}

	return migrate.NewWithInstance("iofs", source, dialect, driver)
}

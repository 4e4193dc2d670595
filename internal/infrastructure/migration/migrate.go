// Package migration applies the versioned SQL schema in migrations/ with
// golang-migrate and scaffolds new migration file pairs.
package migration

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/schoolms/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

const pingTimeout = 10 * time.Second

// ErrUnsupportedDriver is returned by Open for databases without versioned
// migrations. SQLite databases are created with GORM AutoMigrate instead.
var ErrUnsupportedDriver = errors.New("versioned migrations require the postgres driver")

// Migrator moves the postgres schema between versions of migrations/
type Migrator struct {
	m   *migrate.Migrate
	log *zap.Logger
	// owned is the connection opened by Open, closed with the Migrator
	owned *sql.DB
}

// Open connects with cfg and returns a Migrator owning the connection
func Open(ctx context.Context, cfg *config.DatabaseConfig, dir string, log *zap.Logger) (*Migrator, error) {
	if cfg.Driver != "" && cfg.Driver != config.DriverPostgres {
		return nil, fmt.Errorf("%w: got %q", ErrUnsupportedDriver, cfg.Driver)
	}

	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	mg, err := New(db, dir, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	mg.owned = db
	return mg, nil
}

// New wraps an existing postgres connection; the caller keeps ownership
func New(db *sql.DB, dir string, log *zap.Logger) (*Migrator, error) {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("postgres migrate driver: %w", err)
	}
	m, err := migrate.NewWithDatabaseInstance("file://"+dir, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("load migrations from %s: %w", dir, err)
	}
	return &Migrator{m: m, log: log}, nil
}

// apply runs one golang-migrate operation. ErrNoChange is success; on any
// other outcome the resulting version is logged.
func (mg *Migrator) apply(op string, run func() error, fields ...zap.Field) error {
	mg.log.Info("Migrating", append(fields, zap.String("op", op))...)
	err := run()
	if errors.Is(err, migrate.ErrNoChange) {
		mg.log.Info("Schema already current", zap.String("op", op))
		return nil
	}
	if err != nil {
		return fmt.Errorf("migrate %s: %w", op, err)
	}
	version, dirty, err := mg.Version()
	if err != nil {
		return err
	}
	mg.log.Info("Migration finished", zap.String("op", op), zap.Uint("version", version), zap.Bool("dirty", dirty))
	return nil
}

// Up applies every pending migration
func (mg *Migrator) Up() error { return mg.apply("up", mg.m.Up) }

// Down rolls every migration back
func (mg *Migrator) Down() error { return mg.apply("down", mg.m.Down) }

// Steps applies n migrations; negative n rolls back
func (mg *Migrator) Steps(n int) error {
	return mg.apply("step", func() error { return mg.m.Steps(n) }, zap.Int("steps", n))
}

// GoTo migrates up or down to version
func (mg *Migrator) GoTo(version uint) error {
	return mg.apply("goto", func() error { return mg.m.Migrate(version) }, zap.Uint("target", version))
}

// Version reports the applied version; 0 when nothing is applied
func (mg *Migrator) Version() (uint, bool, error) {
	version, dirty, err := mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("read migration version: %w", err)
	}
	return version, dirty, nil
}

// Force records version as applied and clean without running SQL. It is
// the way out of a dirty state after a failed migration was fixed by hand.
func (mg *Migrator) Force(version int) error {
	return mg.apply("force", func() error { return mg.m.Force(version) }, zap.Int("version", version))
}

// Drop removes every table, including the version table
func (mg *Migrator) Drop() error {
	if err := mg.m.Drop(); err != nil {
		return fmt.Errorf("migrate drop: %w", err)
	}
	mg.log.Warn("Database dropped")
	return nil
}

// Close releases the source, the driver and an owned connection
func (mg *Migrator) Close() error {
	sourceErr, dbErr := mg.m.Close()
	if mg.owned != nil {
		dbErr = errors.Join(dbErr, mg.owned.Close())
	}
	return errors.Join(sourceErr, dbErr)
}

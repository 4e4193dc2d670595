package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loadIsolated loads from an empty directory so a developer config.toml
// cannot leak into the assertions.
func loadIsolated(t *testing.T) (*Config, error) {
	t.Helper()
	return LoadFrom(t.TempDir())
}

func TestLoad(t *testing.T) {
	t.Run("loads default values when env vars not set", func(t *testing.T) {
		cfg, err := loadIsolated(t)
		require.NoError(t, err)

		assert.Equal(t, "school-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, DriverPostgres, cfg.Database.Driver)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "school", cfg.Database.DBName)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.Equal(t, StorageDriverPublic, cfg.Storage.Driver)
		assert.Equal(t, "uploads", cfg.Storage.UploadDir)
		assert.Equal(t, 15*time.Minute, cfg.Storage.PresignExpiration)
		assert.Equal(t, 200*time.Millisecond, cfg.Telemetry.DBSlowQueryThresh)
		assert.Equal(t, 1.0, cfg.Telemetry.SamplingRatio)
	})

	t.Run("loads values from environment variables with SCHOOL prefix", func(t *testing.T) {
		t.Setenv("SCHOOL_APP_NAME", "test-app")
		t.Setenv("SCHOOL_APP_PORT", "9000")
		t.Setenv("SCHOOL_DATABASE_HOST", "testdb.local")
		t.Setenv("SCHOOL_DATABASE_PORT", "5433")
		t.Setenv("SCHOOL_DATABASE_PASSWORD", "testpass")
		t.Setenv("SCHOOL_DATABASE_MAX_OPEN_CONNS", "50")
		t.Setenv("SCHOOL_DATABASE_MAX_IDLE_CONNS", "10")
		t.Setenv("SCHOOL_STORAGE_BASE_URL", "https://school.example.com")

		cfg, err := loadIsolated(t)
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, "testpass", cfg.Database.Password)
		assert.Equal(t, 50, cfg.Database.MaxOpenConns)
		assert.Equal(t, 10, cfg.Database.MaxIdleConns)
		assert.Equal(t, "https://school.example.com", cfg.Storage.BaseURL)
	})

	t.Run("reads config.toml from the search path", func(t *testing.T) {
		dir := t.TempDir()
		content := "[database]\ndriver = \"sqlite\"\nsqlite_path = \"test.db\"\n\n[storage]\nupload_dir = \"files\"\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600))

		cfg, err := LoadFrom(dir)
		require.NoError(t, err)
		assert.Equal(t, DriverSQLite, cfg.Database.Driver)
		assert.Equal(t, "test.db", cfg.Database.DSN())
		assert.Equal(t, "files", cfg.Storage.UploadDir)
	})

	t.Run("validates MaxIdleConns cannot exceed MaxOpenConns", func(t *testing.T) {
		t.Setenv("SCHOOL_DATABASE_MAX_OPEN_CONNS", "10")
		t.Setenv("SCHOOL_DATABASE_MAX_IDLE_CONNS", "20")

		_, err := loadIsolated(t)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot exceed")
	})

	t.Run("validates MaxIdleConns cannot be negative", func(t *testing.T) {
		t.Setenv("SCHOOL_DATABASE_MAX_IDLE_CONNS", "-1")

		_, err := loadIsolated(t)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns cannot be negative")
	})

	t.Run("rejects unknown database driver", func(t *testing.T) {
		t.Setenv("SCHOOL_DATABASE_DRIVER", "mysql")

		_, err := loadIsolated(t)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.driver")
	})

	t.Run("s3 storage requires a bucket", func(t *testing.T) {
		t.Setenv("SCHOOL_STORAGE_DRIVER", "s3")

		_, err := loadIsolated(t)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "storage.bucket")
	})

	t.Run("rejects sampling ratio out of range", func(t *testing.T) {
		t.Setenv("SCHOOL_TELEMETRY_SAMPLING_RATIO", "1.5")

		_, err := loadIsolated(t)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sampling_ratio")
	})
}

func TestLoad_ProductionValidation(t *testing.T) {
	setProd := func(t *testing.T) {
		t.Setenv("SCHOOL_APP_ENV", "production")
		t.Setenv("SCHOOL_DATABASE_PASSWORD", "secret")
		t.Setenv("SCHOOL_DATABASE_SSLMODE", "require")
	}

	t.Run("valid production config loads", func(t *testing.T) {
		setProd(t)
		_, err := loadIsolated(t)
		require.NoError(t, err)
	})

	t.Run("requires database password", func(t *testing.T) {
		setProd(t)
		t.Setenv("SCHOOL_DATABASE_PASSWORD", "")

		_, err := loadIsolated(t)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.password")
	})

	t.Run("rejects sslmode disable", func(t *testing.T) {
		setProd(t)
		t.Setenv("SCHOOL_DATABASE_SSLMODE", "disable")

		_, err := loadIsolated(t)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sslmode")
	})

	t.Run("unrestricted swagger is rejected", func(t *testing.T) {
		setProd(t)
		t.Setenv("SCHOOL_SWAGGER_ENABLED", "true")

		_, err := loadIsolated(t)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "swagger")
	})

	t.Run("full SQL logging is rejected", func(t *testing.T) {
		setProd(t)
		t.Setenv("SCHOOL_TELEMETRY_DB_LOG_FULL_SQL", "true")

		_, err := loadIsolated(t)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db_log_full_sql")
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Run("escapes credentials", func(t *testing.T) {
		d := DatabaseConfig{
			Driver:   DriverPostgres,
			Host:     "db",
			Port:     5432,
			User:     "app",
			Password: "p@ss:word",
			DBName:   "school",
			SSLMode:  "disable",
		}
		assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/school?sslmode=disable", d.DSN())
	})

	t.Run("sqlite uses the file path", func(t *testing.T) {
		d := DatabaseConfig{Driver: DriverSQLite, SQLitePath: ":memory:"}
		assert.Equal(t, ":memory:", d.DSN())
	})
}

package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/schoolms/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

const repoMigrationsDir = "../../../migrations"

var createTableRe = regexp.MustCompile(`(?i)CREATE TABLE IF NOT EXISTS (\w+)`)

// sqliteDialect rewrites the postgres-only pieces of the up migrations
var sqliteDialect = strings.NewReplacer(
	"BIGSERIAL PRIMARY KEY", "INTEGER PRIMARY KEY AUTOINCREMENT",
	"NOW()", "CURRENT_TIMESTAMP",
)

// migratedSQLite applies every up migration to a private in-memory database
func migratedSQLite(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	migrations, err := ListMigrations(repoMigrationsDir)
	require.NoError(t, err)
	for _, m := range migrations {
		body, err := os.ReadFile(filepath.Join(repoMigrationsDir, m+".up.sql"))
		require.NoError(t, err)
		require.NoError(t, db.Exec(sqliteDialect.Replace(string(body))).Error, "applying %s", m)
	}
	return db
}

func TestRepositoryMigrations_AreSequentialPairs(t *testing.T) {
	migrations, err := ListMigrations(repoMigrationsDir)
	require.NoError(t, err)
	require.NotEmpty(t, migrations)

	for i, m := range migrations {
		assert.True(t, strings.HasPrefix(m, fmt.Sprintf("%0*d_", versionWidth, i+1)), "%s out of sequence", m)
		_, err := os.Stat(filepath.Join(repoMigrationsDir, m+".down.sql"))
		assert.NoError(t, err, "%s has no down migration", m)
	}
}

func TestRepositoryMigrations_CoverEveryModel(t *testing.T) {
	created := make(map[string]bool)
	migrations, err := ListMigrations(repoMigrationsDir)
	require.NoError(t, err)
	for _, m := range migrations {
		body, err := os.ReadFile(filepath.Join(repoMigrationsDir, m+".up.sql"))
		require.NoError(t, err)
		for _, match := range createTableRe.FindAllStringSubmatch(string(body), -1) {
			created[match[1]] = true
		}
	}

	for _, model := range models.All() {
		tabler, ok := model.(schema.Tabler)
		require.True(t, ok, "%T must name its table", model)
		assert.True(t, created[tabler.TableName()], "no migration creates %s", tabler.TableName())
	}
}

func TestRepositoryMigrations_CoverEveryModelColumn(t *testing.T) {
	db := migratedSQLite(t)
	cache := &sync.Map{}

	for _, model := range models.All() {
		parsed, err := schema.Parse(model, cache, schema.NamingStrategy{})
		require.NoError(t, err)

		columns, err := db.Migrator().ColumnTypes(parsed.Table)
		require.NoError(t, err, "reading columns of %s", parsed.Table)
		present := make(map[string]bool, len(columns))
		for _, c := range columns {
			present[c.Name()] = true
		}

		for _, name := range parsed.DBNames {
			assert.True(t, present[name], "%s.%s is mapped by %T but no migration creates it", parsed.Table, name, model)
		}
	}
}

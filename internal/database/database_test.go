package database

import (
	"context"
	"path/filepath"
	"testing"

	"transaction-seeder/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_UnsupportedDriver(t *testing.T) {
	_, err := New(&config.DatabaseConfig{Driver: "mysql"}, discardLogger())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestInitialize_SQLiteFile(t *testing.T) {
	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Driver:     "sqlite",
			SQLitePath: filepath.Join(t.TempDir(), "transactions.db"),
		},
	}

	db, err := Initialize(context.Background(), cfg, discardLogger())
	require.NoError(t, err)
	defer db.Close()

	assert.True(t, db.Migrator().HasTable("transactions"))
	assert.True(t, db.Migrator().HasTable("pending_transactions"))
	assert.NoError(t, db.HealthCheck(context.Background()))
}

func TestSetupTestDB_Migrates(t *testing.T) {
	db := SetupTestDB(t)

	assert.True(t, db.Migrator().HasTable("transactions"))
	assert.True(t, db.Migrator().HasColumn("transactions", "details"))
	assert.True(t, db.Migrator().HasColumn("transactions", "batch_id"))
	assert.NoError(t, db.Migrate(context.Background()))
}

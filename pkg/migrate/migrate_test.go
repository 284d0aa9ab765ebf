package migrate_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zarnosh/My-E-comerce-Store/pkg/config"
	"github.com/zarnosh/My-E-comerce-Store/pkg/db"
	"github.com/zarnosh/My-E-comerce-Store/pkg/logger"
	"github.com/zarnosh/My-E-comerce-Store/pkg/migrate"
)

func TestEmbeddedMigrationsAreValid(t *testing.T) {
	require.NoError(t, migrate.Validate(migrate.Files(), migrate.Dir))
}

func TestValidateRejectsBadFiles(t *testing.T) {
	badName := fstest.MapFS{"migrations/create.sql": {Data: []byte("-- +goose Up\n-- +goose Down\n")}}
	assert.Error(t, migrate.Validate(badName, "migrations"))

	missingDown := fstest.MapFS{"migrations/20260101000000_x.sql": {Data: []byte("-- +goose Up\n")}}
	assert.Error(t, migrate.Validate(missingDown, "migrations"))
}

func TestDialect(t *testing.T) {
	d, err := migrate.Dialect(config.DriverSQLite)
	require.NoError(t, err)
	assert.Equal(t, "sqlite3", d)

	d, err = migrate.Dialect(config.DriverPostgres)
	require.NoError(t, err)
	assert.Equal(t, "postgres", d)

	_, err = migrate.Dialect("oracle")
	assert.Error(t, err)
}

func TestMaybeRunCreatesKVTable(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{
		Storage: config.StorageConfig{PersistentBackend: config.BackendSQL, AutoMigrate: true},
		DB:      config.DBConfig{Driver: config.DriverSQLite, DSN: "file:migrate_autorun?mode=memory&cache=shared"},
	}
	client, err := db.New(ctx, cfg.DB, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, migrate.MaybeRun(ctx, cfg, logger.Nop(), client))
	assert.True(t, client.DB().Migrator().HasTable("kv_entries"))

	sqlDB, err := client.SQL()
	require.NoError(t, err)
	version, err := migrate.Version(sqlDB, config.DriverSQLite)
	require.NoError(t, err)
	assert.Equal(t, int64(20260301120000), version)

	// second run is a no-op
	require.NoError(t, migrate.MaybeRun(ctx, cfg, logger.Nop(), client))
}

func TestMaybeRunSkipsMemoryBackend(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{PersistentBackend: config.BackendMemory, AutoMigrate: true}}
	assert.NoError(t, migrate.MaybeRun(context.Background(), cfg, logger.Nop(), nil))
}

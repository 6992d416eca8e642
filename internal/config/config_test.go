package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/rebalancer-backend/internal/domain"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"STORAGE", "DB_CONN_STR", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
		"GRPC_ADDR", "API_TOKEN", "LOG_LEVEL", "LOG_PRETTY", "ZERO_ALLOCATION_POLICY",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	require.NoError(t, err)
	assert.Equal(t, StorageDriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, ":8080", cfg.GRPC.Addr)
	assert.Equal(t, "dev-token", cfg.GRPC.APIToken)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, domain.ZeroAllocationSkip, cfg.ZeroAllocationPolicy())
	assert.Equal(t, "host=localhost port=5432 user=postgres password=postgres dbname=rebalancer sslmode=disable", cfg.DSN())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
database:
  host: db.internal
  name: portfolios
grpc:
  addr: ":9090"
log:
  level: debug
  pretty: true
rebalance:
  zero_allocation_policy: evaluate
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("API_TOKEN", "secret")
	t.Setenv("DB_CONN_STR", "postgres://x")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, ":9090", cfg.GRPC.Addr)
	assert.Equal(t, "secret", cfg.GRPC.APIToken)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
	assert.Equal(t, domain.ZeroAllocationEvaluate, cfg.ZeroAllocationPolicy())
	assert.Equal(t, "postgres://x", cfg.DSN())
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grpc: [unterminated"), 0o644))

	_, err := Load(path)

	assert.Error(t, err)
}

func TestValidate_BadPolicy(t *testing.T) {
	clearEnv(t)
	t.Setenv("ZERO_ALLOCATION_POLICY", "maybe")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Error(t, cfg.Validate())
	assert.Equal(t, domain.ZeroAllocationSkip, cfg.ZeroAllocationPolicy())
}

func TestLoad_StorageDriver(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  driver: memory\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
	assert.NoError(t, cfg.Validate())

	t.Setenv("STORAGE", "postgres")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, StorageDriverPostgres, cfg.Storage.Driver)
}

func TestValidate_UnknownStorageDriver(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE", "sqlite")

	cfg, err := Load("")
	require.NoError(t, err)

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage.driver")
}

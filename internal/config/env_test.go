package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesNestedFields(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "env-sign-key")
	t.Setenv("APP_TOKEN_ISSUER", "env-issuer")
	t.Setenv("APP_TOKEN_DURATION", "45m")
	t.Setenv("APP_VAULT_KEY", "env-vault-key")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://u:p@localhost:5432/vault")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:9999")
	t.Setenv("ADAPTER_ADDRESS", "localhost:9999")
	t.Setenv("WORKERS_REFRESH_INTERVAL", "90s")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "env-sign-key", cfg.App.TokenSignKey)
	assert.Equal(t, "env-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 45*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, "env-vault-key", cfg.App.VaultKey)
	assert.Equal(t, "postgres://u:p@localhost:5432/vault", cfg.Storage.DB.DSN)
	assert.Equal(t, "0.0.0.0:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9999", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 90*time.Second, cfg.Workers.RefreshInterval)
}

func TestParseEnv_EmptyEnvironment(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Empty(t, cfg.App.TokenSignKey)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("APP_TOKEN_DURATION", "not-a-duration")

	cfg := &StructuredConfig{}
	assert.Error(t, parseEnv(cfg))
}

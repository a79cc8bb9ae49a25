package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_DefaultsApplied(t *testing.T) {
	builder := newConfigBuilder()
	builder.configs = append(builder.configs, defaultConfig())

	cfg, err := builder.build()
	require.NoError(t, err)

	assert.Equal(t, DefaultVaultKey, cfg.App.VaultKey)
	assert.Equal(t, DefaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, DefaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultRefreshInterval, cfg.Workers.RefreshInterval)
}

func TestBuild_ExplicitValuesWinOverDefaults(t *testing.T) {
	explicit := &StructuredConfig{
		App: App{
			VaultKey:      "real-key",
			TokenDuration: time.Hour,
		},
		Storage: Storage{DB: DBConfig{DSN: "postgres://u:p@localhost/vault"}},
	}

	builder := newConfigBuilder()
	builder.configs = append(builder.configs, explicit, defaultConfig())

	cfg, err := builder.build()
	require.NoError(t, err)

	// explicit values survive the merge
	assert.Equal(t, "real-key", cfg.App.VaultKey)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "postgres://u:p@localhost/vault", cfg.Storage.DB.DSN)

	// untouched fields fall back to defaults
	assert.Equal(t, DefaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
}

func TestBuild_PropagatesSourceError(t *testing.T) {
	builder := newConfigBuilder()
	builder.err = assert.AnError

	_, err := builder.build()
	assert.Error(t, err)
}

func TestClientConfigValidate(t *testing.T) {
	valid := ClientConfig{
		App:     ClientApp{VaultKey: "key"},
		Adapter: ClientAdapter{HTTPAddress: "localhost:8080", RequestTimeout: time.Second},
		Workers: ClientWorkers{RefreshInterval: time.Minute},
	}
	require.NoError(t, valid.validate())

	noKey := valid
	noKey.App.VaultKey = ""
	assert.ErrorIs(t, noKey.validate(), ErrInvalidAppConfigs)

	noAdapter := valid
	noAdapter.Adapter.HTTPAddress = ""
	assert.ErrorIs(t, noAdapter.validate(), ErrInvalidAdapterConfigs)

	noInterval := valid
	noInterval.Workers.RefreshInterval = 0
	assert.ErrorIs(t, noInterval.validate(), ErrInvalidWorkerConfigs)
}

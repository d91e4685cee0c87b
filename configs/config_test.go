package configs

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg, err := DefaultConfig()
	require.NoError(t, err)

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, "output", cfg.Output.Dir)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Contains(t, cfg.Sources.Deployments.Stage, ".env.deployments.stage")

	require.Contains(t, cfg.Policy, TierStage)
	assert.True(t, cfg.Policy[TierStage].RequireDeployment)
	assert.False(t, cfg.Policy[TierMainnet].RequireDeployment)
	assert.Equal(t, []string{"mainnet", "testnet"}, cfg.Policy[TierTestnet].RPCSources)
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := Config{
		HTTP: HTTP{Timeout: -time.Second},
		Policy: map[string]PolicyConfig{
			"devnet": {},
			TierStage: {RPCSources: []string{"stage"}},
		},
	}

	err := cfg.Validate()
	require.Error(t, err)

	for _, want := range []string{
		"sources.deployments.mainnet is required",
		"sources.networks.testnet is required",
		"output.dir is required",
		"http.timeout must not be negative",
		"policy.devnet: tier must be one of",
		"policy.stage.rpc-sources",
	} {
		assert.Contains(t, err.Error(), want)
	}
	assert.NotContains(t, err.Error(), "sources.deployments.stage")
}

func TestSetDefaultsAllowsPartialOverrides(t *testing.T) {
	v := viper.New()
	require.NoError(t, SetDefaults(v))
	v.Set("output.dir", "dist")

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))

	assert.Equal(t, "dist", cfg.Output.Dir)
	assert.NotEmpty(t, cfg.Sources.Networks.Mainnet)
	assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout)
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTier(t *testing.T) {
	for _, in := range []string{"mainnet", "TESTNET", " Stage "} {
		_, err := ParseTier(in)
		require.NoError(t, err, in)
	}

	_, err := ParseTier("devnet")
	require.Error(t, err)
}

func TestTierIsTestnet(t *testing.T) {
	assert.False(t, TierMainnet.IsTestnet())
	assert.True(t, TierTestnet.IsTestnet())
	assert.True(t, TierStage.IsTestnet())
}

func TestRegistryUnifiedPrefersMainnet(t *testing.T) {
	registry := Registry{
		Mainnet: Chains{
			1: {ID: "1", ChainSelector: 1, Name: "ethereum"},
		},
		Testnet: Chains{
			1: {ID: "11155111", ChainSelector: 1, Name: "ethereumSepolia", IsTestnet: true},
			2: {ID: "84532", ChainSelector: 2, Name: "baseSepolia", IsTestnet: true},
		},
		Stage: Chains{
			3: {ID: "421614", ChainSelector: 3, Name: "arbitrumSepolia", IsTestnet: true},
		},
	}

	unified := registry.Unified()

	require.Len(t, unified, 2)
	assert.Equal(t, "ethereum", unified[1].Name)
	assert.False(t, unified[1].IsTestnet)
	assert.Equal(t, "baseSepolia", unified[2].Name)
	assert.NotContains(t, unified, ChainSelector(3))
}

func TestRegistryTier(t *testing.T) {
	registry := Registry{Stage: Chains{7: {Name: "x"}}}
	assert.Len(t, registry.Tier(TierStage), 1)
	assert.Nil(t, registry.Tier(Tier("other")))
}

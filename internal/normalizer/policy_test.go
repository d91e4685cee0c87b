package normalizer

import (
	"testing"

	"github.com/concero/chain-registry/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPolicy(t *testing.T) {
	policy := DefaultPolicy()

	for _, tier := range domain.Tiers() {
		assert.True(t, policy.For(tier).RequireRPCURLs, tier)
	}
	assert.False(t, policy.For(domain.TierMainnet).RequireDeployment)
	assert.True(t, policy.For(domain.TierTestnet).RequireDeployment)
	assert.True(t, policy.For(domain.TierStage).RequireDeployment)
}

func TestPolicyForFallsBackToDefault(t *testing.T) {
	policy := Policy{domain.TierMainnet: {RequireDeployment: true}}

	assert.True(t, policy.For(domain.TierMainnet).RequireDeployment)
	assert.False(t, policy.For(domain.TierMainnet).RequireRPCURLs)
	assert.Equal(t, DefaultPolicy()[domain.TierStage], policy.For(domain.TierStage))
}

func TestPolicyValidate(t *testing.T) {
	require.NoError(t, DefaultPolicy().Validate())

	err := Policy{
		domain.TierStage:      {RPCSources: []domain.Tier{domain.TierStage}},
		domain.Tier("devnet"): {},
	}.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), `policy.stage.rpc-sources: unsupported source "stage"`)
	assert.Contains(t, err.Error(), `unknown tier "devnet"`)
}

package build

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/concero/chain-registry/configs"
	"github.com/concero/chain-registry/internal/domain"
	fsjson "github.com/concero/chain-registry/internal/infra/filesystem/json"
	"github.com/concero/chain-registry/internal/normalizer"
	"github.com/concero/chain-registry/internal/output"
	"github.com/concero/chain-registry/internal/sources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ethereumSelector domain.ChainSelector = 5009297550715157269

type stubLoader struct {
	raw *sources.Raw
	err error
}

func (s stubLoader) Load(context.Context) (*sources.Raw, error) {
	return s.raw, s.err
}

func ptr[T any](v T) *T { return &v }

func rawInputs() *sources.Raw {
	return &sources.Raw{
		MainnetEnv: "CONCERO_ROUTER_PROXY_ETHEREUM = 0x1111111111111111111111111111111111111111",
		TestnetEnv: "CONCERO_RELAYER_LIB_PROXY_ETHEREUM=0x2222222222222222222222222222222222222222\n",
		StageEnv:   "CONCERO_ROUTER_PROXY_BASE_SEPOLIA=0x3333333333333333333333333333333333333333\n",
		MainnetNetworks: domain.Networks{
			"ethereum": {
				Name:                  "ethereum",
				ChainID:               1,
				ChainSelector:         ethereumSelector,
				RPCURLs:               []string{"https://eth.public"},
				NativeCurrency:        domain.NativeCurrency{Name: "Ether", Symbol: "ETH", Decimals: 18},
				FinalityConfirmations: ptr(uint64(12)),
			},
		},
		TestnetNetworks: domain.Networks{
			"baseSepolia": {
				Name:           "baseSepolia",
				ChainID:        84532,
				ChainSelector:  10344971235874465080,
				NativeCurrency: domain.NativeCurrency{Name: "Sepolia Ether", Symbol: "ETH", Decimals: 18},
			},
		},
		MainnetRPCs: domain.RPCs{"ethereum": {RPCURLs: []string{"https://eth.aux"}}},
		TestnetRPCs: domain.RPCs{"baseSepolia": {RPCURLs: []string{"https://base-sepolia.aux"}}},
	}
}

func TestServiceRun(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	service := NewService(
		stubLoader{raw: rawInputs()},
		normalizer.NewNormalizer(normalizer.DefaultPolicy()),
		output.NewGenerator(fsjson.NewWriter(), dir),
		&out,
	)

	registry, err := service.Run(context.Background())
	require.NoError(t, err)

	eth := registry.Mainnet[ethereumSelector]
	assert.Equal(t, "1", eth.ID)
	assert.Equal(t, []string{"https://eth.aux", "https://eth.public"}, eth.RPCURLs)
	assert.True(t, eth.IsFinalitySupported)
	assert.Equal(t, domain.Deployments{
		domain.DeploymentCategoryRouter:     "0x1111111111111111111111111111111111111111",
		domain.DeploymentCategoryRelayerLib: "0x2222222222222222222222222222222222222222",
	}, eth.Deployments)

	// baseSepolia only has a stage deployment
	assert.Empty(t, registry.Testnet)
	require.Len(t, registry.Stage, 1)
	for _, chain := range registry.Stage {
		assert.Equal(t, domain.DeploymentAddress("0x3333333333333333333333333333333333333333"), chain.Deployments[domain.DeploymentCategoryRouter])
	}

	for _, name := range output.MinifiedFileNames() {
		_, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Contains(t, out.String(), name)
	}
}

func TestServiceRunIsReproducible(t *testing.T) {
	digests := make([][]output.Fingerprint, 0, 2)
	for i := 0; i < 2; i++ {
		dir := t.TempDir()
		service := NewService(
			stubLoader{raw: rawInputs()},
			normalizer.NewNormalizer(normalizer.DefaultPolicy()),
			output.NewGenerator(fsjson.NewWriter(), dir),
			&bytes.Buffer{},
		)
		_, err := service.Run(context.Background())
		require.NoError(t, err)

		fingerprints, err := output.FingerprintFiles(fsjson.NewReader(), dir, output.MinifiedFileNames())
		require.NoError(t, err)
		digests = append(digests, fingerprints)
	}

	assert.Equal(t, digests[0], digests[1])
}

func TestServiceRunStopsOnLoadFailure(t *testing.T) {
	dir := t.TempDir()

	service := NewService(
		stubLoader{err: errors.New("boom")},
		normalizer.NewNormalizer(normalizer.DefaultPolicy()),
		output.NewGenerator(fsjson.NewWriter(), dir),
		&bytes.Buffer{},
	)

	_, err := service.Run(context.Background())
	require.ErrorContains(t, err, "boom")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPolicyFromConfig(t *testing.T) {
	policy, err := policyFromConfig(map[string]configs.PolicyConfig{
		"mainnet": {RequireRPCURLs: false, RequireDeployment: true, RPCSources: []string{"mainnet"}},
	})
	require.NoError(t, err)

	assert.Equal(t, normalizer.TierPolicy{
		RequireRPCURLs:    false,
		RequireDeployment: true,
		RPCSources:        []domain.Tier{domain.TierMainnet},
	}, policy[domain.TierMainnet])
	assert.Equal(t, normalizer.DefaultPolicy()[domain.TierStage], policy[domain.TierStage])

	_, err = policyFromConfig(map[string]configs.PolicyConfig{"devnet": {}})
	require.Error(t, err)

	_, err = policyFromConfig(map[string]configs.PolicyConfig{"stage": {RPCSources: []string{"stage"}}})
	require.Error(t, err)
}

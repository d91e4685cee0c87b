package normalizer

import (
	"log/slog"
	"slices"
	"strconv"

	"github.com/concero/chain-registry/internal/domain"
	"github.com/concero/chain-registry/internal/logger"
)

const defaultMinBlockConfirmations uint64 = 1

type (
	// Inputs is everything the normalizer merges, already fetched and extracted.
	Inputs struct {
		MainnetNetworks domain.Networks
		TestnetNetworks domain.Networks
		MainnetRPCs     domain.RPCs
		TestnetRPCs     domain.RPCs
		// Deployments is built from the mainnet and testnet env documents.
		Deployments domain.DeploymentTable
		// StageDeployments is built from the stage env document only.
		StageDeployments domain.DeploymentTable
	}

	// Normalizer reconciles upstream network, RPC and deployment data into canonical chains.
	Normalizer struct {
		policy Policy
		logger *slog.Logger
	}
)

// NewNormalizer creates a normalizer applying policy
func NewNormalizer(policy Policy) *Normalizer {
	return &Normalizer{
		policy: policy,
		logger: logger.Named("chain_normalizer"),
	}
}

// Build produces all three tier buckets. Stage reuses the testnet networks with the stage deployments.
func (n *Normalizer) Build(in Inputs) domain.Registry {
	registry := domain.Registry{
		Mainnet: n.NormalizeTier(domain.TierMainnet, in),
		Testnet: n.NormalizeTier(domain.TierTestnet, in),
		Stage:   n.NormalizeTier(domain.TierStage, in),
	}

	n.logger.With(
		"mainnet", len(registry.Mainnet),
		"testnet", len(registry.Testnet),
		"stage", len(registry.Stage),
	).Info("chains normalized")

	return registry
}

// NormalizeTier builds the bucket of one tier.
func (n *Normalizer) NormalizeTier(tier domain.Tier, in Inputs) domain.Chains {
	networks, deployments := in.Networks(tier), in.DeploymentsFor(tier)
	gates := n.policy.For(tier)
	logger := n.logger.With("tier", tier)

	chains := make(domain.Chains, len(networks))

	// Sorted keys make same-selector collisions resolve the same way on every run.
	names := make([]string, 0, len(networks))
	for name := range networks {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, key := range names {
		network := networks[key]
		chainLogger := logger.With("chain", network.Name, "chain_selector", network.ChainSelector)

		rpcURLs := in.rpcURLs(gates.RPCSources, network)
		if gates.RequireRPCURLs && len(rpcURLs) == 0 {
			chainLogger.Debug("skipping chain without rpc urls")
			continue
		}

		chainDeployments, found := deployments.Lookup(network.Name)
		if gates.RequireDeployment && !found {
			chainLogger.Debug("skipping chain without deployments")
			continue
		}
		if chainDeployments == nil {
			chainDeployments = domain.Deployments{}
		}

		if _, exists := chains[network.ChainSelector]; exists {
			chainLogger.Warn("chain selector appears twice, keeping the later entry")
		}
		chains[network.ChainSelector] = canonical(tier, network, rpcURLs, chainDeployments)
	}

	return chains
}

// Networks returns the raw network set used for tier.
func (in Inputs) Networks(tier domain.Tier) domain.Networks {
	if tier == domain.TierMainnet {
		return in.MainnetNetworks
	}
	return in.TestnetNetworks
}

// DeploymentsFor returns the deployment table used for tier.
func (in Inputs) DeploymentsFor(tier domain.Tier) domain.DeploymentTable {
	if tier == domain.TierStage {
		return in.StageDeployments
	}
	return in.Deployments
}

func (in Inputs) rpcTable(source domain.Tier) domain.RPCs {
	switch source {
	case domain.TierMainnet:
		return in.MainnetRPCs
	case domain.TierTestnet:
		return in.TestnetRPCs
	default:
		return nil
	}
}

// rpcURLs concatenates the auxiliary lists in source order followed by the network's own list.
func (in Inputs) rpcURLs(sources []domain.Tier, network domain.RawNetwork) []string {
	urls := make([]string, 0, len(network.RPCURLs))
	for _, source := range sources {
		if aux, ok := in.rpcTable(source)[network.Name]; ok {
			urls = append(urls, aux.RPCURLs...)
		}
	}
	return append(urls, network.RPCURLs...)
}

func canonical(tier domain.Tier, network domain.RawNetwork, rpcURLs []string, deployments domain.Deployments) domain.Chain {
	minBlockConfirmations := defaultMinBlockConfirmations
	if network.MinBlockConfirmations != nil {
		minBlockConfirmations = *network.MinBlockConfirmations
	}

	isFinalitySupported := network.FinalityConfirmations != nil ||
		(network.FinalityTagEnabled != nil && *network.FinalityTagEnabled)

	return domain.Chain{
		ID:                    strconv.FormatUint(network.ChainID, 10),
		ChainSelector:         network.ChainSelector,
		Name:                  network.Name,
		IsTestnet:             tier.IsTestnet(),
		FinalityTagEnabled:    network.FinalityTagEnabled,
		FinalityConfirmations: network.FinalityConfirmations,
		IsFinalitySupported:   isFinalitySupported,
		MinBlockConfirmations: minBlockConfirmations,
		RPCURLs:               rpcURLs,
		BlockExplorers:        slices.Clone(network.BlockExplorers),
		NativeCurrency:        network.NativeCurrency,
		Deployments:           deployments,
	}
}

package domain

import (
	"fmt"
	"strings"
)

// Tier partitions chains by deployment environment.
type Tier string

const (
	TierMainnet Tier = "mainnet"
	TierTestnet Tier = "testnet"
	TierStage   Tier = "stage"
)

// Tiers returns every tier in output order.
func Tiers() []Tier {
	return []Tier{TierMainnet, TierTestnet, TierStage}
}

// ParseTier accepts a tier name in any case.
func ParseTier(s string) (Tier, error) {
	tier := Tier(strings.ToLower(strings.TrimSpace(s)))
	switch tier {
	case TierMainnet, TierTestnet, TierStage:
		return tier, nil
	default:
		return "", fmt.Errorf("unknown tier %q", s)
	}
}

// IsTestnet reports whether chains of this tier are test networks.
func (t Tier) IsTestnet() bool {
	return t != TierMainnet
}

type (
	// Chain is the canonical, merged record for one chain selector within a tier.
	Chain struct {
		ID                    string          `json:"id"`
		ChainSelector         ChainSelector   `json:"chainSelector"`
		Name                  string          `json:"name"`
		IsTestnet             bool            `json:"isTestnet"`
		FinalityTagEnabled    *bool           `json:"finalityTagEnabled,omitempty"`
		FinalityConfirmations *uint64         `json:"finalityConfirmations,omitempty"`
		IsFinalitySupported   bool            `json:"isFinalitySupported"`
		MinBlockConfirmations uint64          `json:"minBlockConfirmations"`
		RPCURLs               []string        `json:"rpcUrls"`
		BlockExplorers        []BlockExplorer `json:"blockExplorers,omitempty"`
		NativeCurrency        NativeCurrency  `json:"nativeCurrency"`
		Deployments           Deployments     `json:"deployments"`
	}

	// Chains is a tier bucket keyed by chain selector.
	Chains map[ChainSelector]Chain

	// Registry holds the three tier buckets produced by one run.
	Registry struct {
		Mainnet Chains
		Testnet Chains
		Stage   Chains
	}
)

// Tier returns the bucket for tier.
func (r Registry) Tier(tier Tier) Chains {
	switch tier {
	case TierMainnet:
		return r.Mainnet
	case TierTestnet:
		return r.Testnet
	case TierStage:
		return r.Stage
	default:
		return nil
	}
}

// Unified overlays mainnet chains on testnet chains. A selector present in both resolves to mainnet.
func (r Registry) Unified() Chains {
	out := make(Chains, len(r.Mainnet)+len(r.Testnet))
	for selector, chain := range r.Testnet {
		out[selector] = chain
	}
	for selector, chain := range r.Mainnet {
		out[selector] = chain
	}
	return out
}

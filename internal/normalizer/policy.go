package normalizer

import (
	"errors"
	"fmt"

	"github.com/concero/chain-registry/internal/domain"
)

type (
	// TierPolicy is the set of inclusion gates applied to every chain of one tier.
	TierPolicy struct {
		// RequireRPCURLs drops chains whose merged RPC URL list is empty.
		RequireRPCURLs bool
		// RequireDeployment drops chains with no entry in the tier's deployment table.
		RequireDeployment bool
		// RPCSources lists the auxiliary RPC documents consulted, in merge order.
		RPCSources []domain.Tier
	}

	// Policy holds the gates of each tier.
	Policy map[domain.Tier]TierPolicy
)

// DefaultPolicy mirrors the latest upstream behaviour: every tier needs RPC URLs, testnet and stage
// also need a deployment.
func DefaultPolicy() Policy {
	sources := []domain.Tier{domain.TierMainnet, domain.TierTestnet}
	return Policy{
		domain.TierMainnet: {RequireRPCURLs: true, RequireDeployment: false, RPCSources: sources},
		domain.TierTestnet: {RequireRPCURLs: true, RequireDeployment: true, RPCSources: sources},
		domain.TierStage:   {RequireRPCURLs: true, RequireDeployment: true, RPCSources: sources},
	}
}

// For returns the gates of tier, falling back to the default policy.
func (p Policy) For(tier domain.Tier) TierPolicy {
	if tp, ok := p[tier]; ok {
		return tp
	}
	return DefaultPolicy()[tier]
}

// Validate reports every RPC source that does not name a document the normalizer knows about.
func (p Policy) Validate() error {
	var errs []error
	for _, tier := range domain.Tiers() {
		tp, ok := p[tier]
		if !ok {
			continue
		}
		for _, source := range tp.RPCSources {
			if source != domain.TierMainnet && source != domain.TierTestnet {
				errs = append(errs, fmt.Errorf("policy.%s.rpc-sources: unsupported source %q", tier, source))
			}
		}
	}
	for tier := range p {
		if _, err := domain.ParseTier(string(tier)); err != nil {
			errs = append(errs, fmt.Errorf("policy: %w", err))
		}
	}
	return errors.Join(errs...)
}

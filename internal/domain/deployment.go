package domain

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

type (
	// DeploymentCategory tags the contract role an address was deployed for.
	DeploymentCategory string

	// DeploymentAddress is a 0x-prefixed, 40 hex digit contract address, kept in the casing it was read with.
	DeploymentAddress string

	// Deployments holds the addresses known for one chain. Any category may be missing.
	Deployments map[DeploymentCategory]DeploymentAddress

	// DeploymentTable maps a camel-case chain name to its deployments.
	DeploymentTable map[string]Deployments
)

const (
	DeploymentCategoryRouter       DeploymentCategory = "router"
	DeploymentCategoryRelayerLib   DeploymentCategory = "relayerLib"
	DeploymentCategoryValidatorLib DeploymentCategory = "validatorLib"
)

// Categories returns every known deployment category in a fixed order.
func Categories() []DeploymentCategory {
	return []DeploymentCategory{
		DeploymentCategoryRouter,
		DeploymentCategoryRelayerLib,
		DeploymentCategoryValidatorLib,
	}
}

// ParseDeploymentAddress validates s as a 0x-prefixed 20 byte hex address.
func ParseDeploymentAddress(s string) (DeploymentAddress, bool) {
	if len(s) != 2+2*common.AddressLength {
		return "", false
	}
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return "", false
	}
	if !common.IsHexAddress(s) {
		return "", false
	}
	return DeploymentAddress(s), true
}

// Set stores addr for chain under category, leaving sibling categories untouched.
func (t DeploymentTable) Set(chain string, category DeploymentCategory, addr DeploymentAddress) {
	entry, ok := t[chain]
	if !ok {
		entry = Deployments{}
		t[chain] = entry
	}
	entry[category] = addr
}

// Lookup returns a copy of the deployments for chain.
func (t DeploymentTable) Lookup(chain string) (Deployments, bool) {
	entry, ok := t[chain]
	if !ok {
		return nil, false
	}
	out := make(Deployments, len(entry))
	for category, addr := range entry {
		out[category] = addr
	}
	return out, true
}

package output

import (
	"fmt"

	"github.com/concero/chain-registry/internal/domain"
)

const manifestFileName = "manifest.yaml"

type (
	// Artifact is one serialized registry file.
	Artifact struct {
		Name string
		Data []byte
	}

	// Fingerprint is the content digest of an artifact.
	Fingerprint struct {
		Artifact string `yaml:"artifact"`
		SHA256   string `yaml:"sha256"`
		Bytes    int    `yaml:"bytes"`
	}

	// Manifest describes a build: what was written and how to verify it.
	Manifest struct {
		RunID        string         `yaml:"run-id"`
		GeneratedAt  string         `yaml:"generated-at"`
		Chains       map[string]int `yaml:"chains"`
		Fingerprints []Fingerprint  `yaml:"fingerprints"`
	}
)

// TierFileName returns the artifact name of a tier bucket.
func TierFileName(tier domain.Tier, minified bool) string {
	return fileName(fmt.Sprintf("chains.%s", tier), minified)
}

// UnifiedFileName returns the artifact name of the combined mainnet and testnet view.
func UnifiedFileName(minified bool) string {
	return fileName("chains", minified)
}

// MinifiedFileNames lists the minified artifacts in output order.
func MinifiedFileNames() []string {
	names := make([]string, 0, len(domain.Tiers())+1)
	for _, tier := range domain.Tiers() {
		names = append(names, TierFileName(tier, true))
	}
	return append(names, UnifiedFileName(true))
}

func fileName(base string, minified bool) string {
	if minified {
		return base + ".minified.json"
	}
	return base + ".json"
}

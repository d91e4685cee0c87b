package output

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/concero/chain-registry/internal/domain"
	"github.com/concero/chain-registry/internal/infra/filesystem"
	fsjson "github.com/concero/chain-registry/internal/infra/filesystem/json"
	"github.com/concero/chain-registry/internal/logger"
	"gopkg.in/yaml.v3"
)

type Generator struct {
	writer filesystem.Writer
	dir    string
	logger *slog.Logger
}

func NewGenerator(writer filesystem.Writer, dir string) *Generator {
	return &Generator{
		writer: writer,
		dir:    dir,
		logger: logger.Named("output_generator"),
	}
}

// Artifacts serializes every tier and the unified view, pretty and minified.
func Artifacts(registry domain.Registry) ([]Artifact, error) {
	artifacts := make([]Artifact, 0, 2*(len(domain.Tiers())+1))

	add := func(name string, chains domain.Chains, pretty bool) error {
		if chains == nil {
			chains = domain.Chains{}
		}
		data, err := fsjson.Marshal(chains, pretty)
		if err != nil {
			return fmt.Errorf("could not serialize %s: %w", name, err)
		}
		artifacts = append(artifacts, Artifact{Name: name, Data: data})
		return nil
	}

	for _, tier := range domain.Tiers() {
		chains := registry.Tier(tier)
		if err := add(TierFileName(tier, false), chains, true); err != nil {
			return nil, err
		}
		if err := add(TierFileName(tier, true), chains, false); err != nil {
			return nil, err
		}
	}

	unified := registry.Unified()
	if err := add(UnifiedFileName(false), unified, true); err != nil {
		return nil, err
	}
	if err := add(UnifiedFileName(true), unified, false); err != nil {
		return nil, err
	}

	return artifacts, nil
}

// Generate writes every artifact and the manifest into the output directory and returns the fingerprints.
func (g *Generator) Generate(runID string, registry domain.Registry) ([]Fingerprint, error) {
	artifacts, err := Artifacts(registry)
	if err != nil {
		return nil, err
	}

	fingerprints := make([]Fingerprint, 0, len(artifacts))
	for _, artifact := range artifacts {
		path := filepath.Join(g.dir, artifact.Name)
		if err := g.writer.WriteBytes(path, artifact.Data); err != nil {
			return nil, fmt.Errorf("could not write '%s': %w", path, err)
		}
		g.logger.With("file_path", path, "bytes", len(artifact.Data)).Debug("artifact written")

		fingerprints = append(fingerprints, Fingerprint{
			Artifact: artifact.Name,
			SHA256:   Digest(artifact.Data),
			Bytes:    len(artifact.Data),
		})
	}

	manifest := Manifest{
		RunID:       runID,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Chains: map[string]int{
			string(domain.TierMainnet): len(registry.Mainnet),
			string(domain.TierTestnet): len(registry.Testnet),
			string(domain.TierStage):   len(registry.Stage),
			"unified":                  len(registry.Unified()),
		},
		Fingerprints: fingerprints,
	}

	data, err := yaml.Marshal(manifest)
	if err != nil {
		return nil, fmt.Errorf("could not marshal manifest. Err: '%w'", err)
	}

	path := filepath.Join(g.dir, manifestFileName)
	if err := g.writer.WriteBytes(path, data); err != nil {
		return nil, fmt.Errorf("could not write manifest file. Err: '%w'", err)
	}

	g.logger.With("dir", g.dir, "artifacts", len(artifacts)).Info("output written")

	return fingerprints, nil
}

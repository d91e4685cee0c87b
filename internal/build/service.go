package build

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/concero/chain-registry/configs"
	"github.com/concero/chain-registry/internal/deployments"
	"github.com/concero/chain-registry/internal/domain"
	"github.com/concero/chain-registry/internal/infra/fetch"
	fsjson "github.com/concero/chain-registry/internal/infra/filesystem/json"
	"github.com/concero/chain-registry/internal/logger"
	"github.com/concero/chain-registry/internal/normalizer"
	"github.com/concero/chain-registry/internal/output"
	"github.com/concero/chain-registry/internal/sources"
	"github.com/google/uuid"
)

type (
	loader interface {
		Load(ctx context.Context) (*sources.Raw, error)
	}

	generator interface {
		Generate(runID string, registry domain.Registry) ([]output.Fingerprint, error)
	}

	// Service runs one build: fetch, extract, normalize, write, report.
	Service struct {
		loader     loader
		extractor  *deployments.Extractor
		normalizer *normalizer.Normalizer
		generator  generator
		out        io.Writer
		logger     *slog.Logger
	}
)

func start(ctx context.Context, out io.Writer) error {
	cfg := configs.Values

	policy, err := policyFromConfig(cfg.Policy)
	if err != nil {
		return err
	}

	service := NewService(
		sources.NewLoader(fetch.NewFetcher(cfg.HTTP.Timeout), cfg.Sources),
		normalizer.NewNormalizer(policy),
		output.NewGenerator(fsjson.NewWriter(), cfg.Output.Dir),
		out,
	)

	_, err = service.Run(ctx)
	return err
}

func NewService(loader loader, normalizer *normalizer.Normalizer, generator generator, out io.Writer) *Service {
	return &Service{
		loader:     loader,
		extractor:  deployments.NewExtractor(),
		normalizer: normalizer,
		generator:  generator,
		out:        out,
		logger:     logger.Named("build_service"),
	}
}

// Run executes the build and returns the registry it wrote.
func (s *Service) Run(ctx context.Context) (domain.Registry, error) {
	runID := uuid.NewString()
	logger := s.logger.With("run_id", runID)

	raw, err := s.loader.Load(ctx)
	if err != nil {
		return domain.Registry{}, err
	}

	primary := s.extractor.ExtractAll(deployments.Join(raw.MainnetEnv, raw.TestnetEnv))
	stage := s.extractor.ExtractAll(raw.StageEnv)
	logger.With("primary", len(primary), "stage", len(stage)).Info("deployments extracted")

	registry := s.normalizer.Build(normalizer.Inputs{
		MainnetNetworks:  raw.MainnetNetworks,
		TestnetNetworks:  raw.TestnetNetworks,
		MainnetRPCs:      raw.MainnetRPCs,
		TestnetRPCs:      raw.TestnetRPCs,
		Deployments:      primary,
		StageDeployments: stage,
	})

	fingerprints, err := s.generator.Generate(runID, registry)
	if err != nil {
		return domain.Registry{}, fmt.Errorf("failed to write registry: %w", err)
	}

	if err := output.PrintFingerprints(s.out, fingerprints); err != nil {
		return domain.Registry{}, fmt.Errorf("failed to print fingerprints: %w", err)
	}

	logger.Info("build finished")

	return registry, nil
}

// policyFromConfig turns the per-tier config sections into normalizer gates.
// Tiers missing from the config keep their default gates.
func policyFromConfig(cfg map[string]configs.PolicyConfig) (normalizer.Policy, error) {
	policy := normalizer.DefaultPolicy()

	for name, section := range cfg {
		tier, err := domain.ParseTier(name)
		if err != nil {
			return nil, fmt.Errorf("invalid policy section: %w", err)
		}

		rpcSources := make([]domain.Tier, 0, len(section.RPCSources))
		for _, source := range section.RPCSources {
			sourceTier, err := domain.ParseTier(source)
			if err != nil {
				return nil, fmt.Errorf("invalid policy.%s.rpc-sources: %w", name, err)
			}
			rpcSources = append(rpcSources, sourceTier)
		}

		policy[tier] = normalizer.TierPolicy{
			RequireRPCURLs:    section.RequireRPCURLs,
			RequireDeployment: section.RequireDeployment,
			RPCSources:        rpcSources,
		}
	}

	if err := policy.Validate(); err != nil {
		return nil, err
	}

	return policy, nil
}

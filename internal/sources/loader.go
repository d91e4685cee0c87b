package sources

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/concero/chain-registry/configs"
	"github.com/concero/chain-registry/internal/domain"
	"github.com/concero/chain-registry/internal/logger"
	"golang.org/x/sync/errgroup"
)

type (
	fetcher interface {
		FetchText(ctx context.Context, location string) (string, error)
		FetchJSON(ctx context.Context, location string, target any) error
	}

	// Raw is every upstream document of one run, as fetched.
	Raw struct {
		MainnetEnv      string
		TestnetEnv      string
		StageEnv        string
		MainnetRPCs     domain.RPCs
		TestnetRPCs     domain.RPCs
		MainnetNetworks domain.Networks
		TestnetNetworks domain.Networks
	}

	// Loader fetches all upstream documents concurrently.
	Loader struct {
		fetcher fetcher
		sources configs.Sources
		logger  *slog.Logger
	}
)

// NewLoader creates a new loader
func NewLoader(fetcher fetcher, sources configs.Sources) *Loader {
	return &Loader{
		fetcher: fetcher,
		sources: sources,
		logger:  logger.Named("sources_loader"),
	}
}

// Load issues every fetch at once and returns when all of them finished.
// The first failure cancels the remaining fetches and is returned; nothing is partially loaded.
func (l *Loader) Load(ctx context.Context) (*Raw, error) {
	l.logger.Info("fetching upstream documents")
	start := time.Now()

	var raw Raw
	eg, egCtx := errgroup.WithContext(ctx)

	text := func(location string, dst *string) {
		eg.Go(func() error {
			body, err := l.fetcher.FetchText(egCtx, location)
			if err != nil {
				return err
			}
			*dst = body
			return nil
		})
	}
	document := func(location string, dst any) {
		eg.Go(func() error {
			return l.fetcher.FetchJSON(egCtx, location, dst)
		})
	}

	text(l.sources.Deployments.Mainnet, &raw.MainnetEnv)
	text(l.sources.Deployments.Testnet, &raw.TestnetEnv)
	if l.sources.Deployments.Stage != "" {
		text(l.sources.Deployments.Stage, &raw.StageEnv)
	} else {
		l.logger.Warn("no stage deployments source configured, stage tier will be empty")
	}
	document(l.sources.RPCs.Mainnet, &raw.MainnetRPCs)
	document(l.sources.RPCs.Testnet, &raw.TestnetRPCs)
	document(l.sources.Networks.Mainnet, &raw.MainnetNetworks)
	document(l.sources.Networks.Testnet, &raw.TestnetNetworks)

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load upstream documents: %w", err)
	}

	l.logger.With(
		"mainnet_networks", len(raw.MainnetNetworks),
		"testnet_networks", len(raw.TestnetNetworks),
		"elapsed", time.Since(start).String(),
	).Info("upstream documents fetched")

	return &raw, nil
}

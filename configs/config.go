package configs

import (
	"errors"
	"fmt"
	"time"
)

var Values Config

type (
	Config struct {
		Sources Sources                 `mapstructure:"sources"`
		HTTP    HTTP                    `mapstructure:"http"`
		Output  Output                  `mapstructure:"output"`
		Policy  map[string]PolicyConfig `mapstructure:"policy"`
		Log     Log                     `mapstructure:"log"`
	}

	// Sources holds the location (URL or local path) of every upstream document.
	Sources struct {
		Deployments DeploymentSources `mapstructure:"deployments"`
		RPCs        TierSources       `mapstructure:"rpcs"`
		Networks    TierSources       `mapstructure:"networks"`
	}

	TierSources struct {
		Mainnet string `mapstructure:"mainnet"`
		Testnet string `mapstructure:"testnet"`
	}

	DeploymentSources struct {
		Mainnet string `mapstructure:"mainnet"`
		Testnet string `mapstructure:"testnet"`
		// Stage is optional. When empty the stage tier is built from an empty deployment table.
		Stage string `mapstructure:"stage"`
	}

	HTTP struct {
		Timeout time.Duration `mapstructure:"timeout"`
	}

	Output struct {
		Dir string `mapstructure:"dir"`
	}

	PolicyConfig struct {
		RequireRPCURLs    bool     `mapstructure:"require-rpc-urls"`
		RequireDeployment bool     `mapstructure:"require-deployment"`
		RPCSources        []string `mapstructure:"rpc-sources"`
	}

	Log struct {
		Level string `mapstructure:"level"`
	}
)

const (
	TierMainnet = "mainnet"
	TierTestnet = "testnet"
	TierStage   = "stage"
)

func (c *Config) Validate() error {
	var errs []error

	required := []struct {
		key   string
		value string
	}{
		{"sources.deployments.mainnet", c.Sources.Deployments.Mainnet},
		{"sources.deployments.testnet", c.Sources.Deployments.Testnet},
		{"sources.rpcs.mainnet", c.Sources.RPCs.Mainnet},
		{"sources.rpcs.testnet", c.Sources.RPCs.Testnet},
		{"sources.networks.mainnet", c.Sources.Networks.Mainnet},
		{"sources.networks.testnet", c.Sources.Networks.Testnet},
		{"output.dir", c.Output.Dir},
	}
	for _, field := range required {
		if field.value == "" {
			errs = append(errs, fmt.Errorf("%s is required", field.key))
		}
	}

	if c.HTTP.Timeout < 0 {
		errs = append(errs, errors.New("http.timeout must not be negative"))
	}

	for tier, policy := range c.Policy {
		if tier != TierMainnet && tier != TierTestnet && tier != TierStage {
			errs = append(errs, fmt.Errorf("policy.%s: tier must be one of 'mainnet', 'testnet' or 'stage'", tier))
			continue
		}
		for _, source := range policy.RPCSources {
			if source != TierMainnet && source != TierTestnet {
				errs = append(errs, fmt.Errorf("policy.%s.rpc-sources: source must be either 'mainnet' or 'testnet', got '%s'", tier, source))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %w", errors.Join(errs...))
	}

	return nil
}

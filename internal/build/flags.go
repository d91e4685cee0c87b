package build

import (
	"github.com/spf13/viper"
)

// flagDef defines a command-line flag with its configuration.
// Defaults live in the embedded config, so flag defaults are zero values.
type (
	flagType interface {
		string | int | bool
	}

	flagDef[T flagType] struct {
		name         string
		viperKey     string
		defaultValue T
		description  string
	}
)

var (
	stringFlags = []flagDef[string]{
		// Deployment env documents
		{"mainnet-deployments", "sources.deployments.mainnet", "", "Mainnet .env.deployments URL or path"},
		{"testnet-deployments", "sources.deployments.testnet", "", "Testnet .env.deployments URL or path"},
		{"stage-deployments", "sources.deployments.stage", "", "Stage .env.deployments URL or path (empty disables the stage tier)"},

		// RPC documents
		{"mainnet-rpcs", "sources.rpcs.mainnet", "", "Mainnet RPC document URL or path"},
		{"testnet-rpcs", "sources.rpcs.testnet", "", "Testnet RPC document URL or path"},

		// Network documents
		{"mainnet-networks", "sources.networks.mainnet", "", "Mainnet networks document URL or path"},
		{"testnet-networks", "sources.networks.testnet", "", "Testnet networks document URL or path"},

		// Transport
		{"http-timeout", "http.timeout", "", "HTTP client timeout, e.g. 30s (0 disables it)"},
	}

	// Boolean flags for the inclusion policy (currently empty, policy is configured per tier in the config file)
	boolFlags = []flagDef[bool]{}
)

func init() {
	if err := declareFlags(stringFlags); err != nil {
		panic(err)
	}
	if err := declareFlags(boolFlags); err != nil {
		panic(err)
	}
}

// declareFlags declares multiple flags and binds them to viper configuration keys.
func declareFlags[T flagType](flags []flagDef[T]) error {
	for _, flag := range flags {
		if err := declareFlag(flag.name, flag.viperKey, flag.defaultValue, flag.description); err != nil {
			return err
		}
	}
	return nil
}

// declareFlag declares a single flag and binds it to a viper configuration key.
// The type parameter T determines the flag type (string, int, or bool).
func declareFlag[T flagType](flagName, viperKey string, defaultValue T, description string) error {
	var zero T
	switch any(zero).(type) {
	case string:
		CMD.Flags().String(flagName, any(defaultValue).(string), description)
	case int:
		CMD.Flags().Int(flagName, any(defaultValue).(int), description)
	case bool:
		CMD.Flags().Bool(flagName, any(defaultValue).(bool), description)
	}
	return viper.BindPFlag(viperKey, CMD.Flags().Lookup(flagName))
}

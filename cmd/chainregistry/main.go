package main

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/concero/chain-registry/configs"
	"github.com/concero/chain-registry/internal/build"
	"github.com/concero/chain-registry/internal/hash"
	"github.com/concero/chain-registry/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	appName   = "chain-registry"
	envPrefix = "CHAIN_REGISTRY"
)

var rootCmd = &cobra.Command{
	Use:           appName,
	Short:         "CLI for building the per-tier chain registry files",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.Initialize(slog.LevelInfo)

		if err := configs.SetDefaults(viper.GetViper()); err != nil {
			const errMsg = "unable to load embedded defaults"
			slog.With("err", err.Error()).Error(errMsg)
			return errors.Join(err, errors.New(errMsg))
		}

		viper.SetEnvPrefix(envPrefix)
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
		viper.AutomaticEnv()

		if configFile, _ := cmd.Flags().GetString("config"); configFile != "" {
			viper.SetConfigFile(configFile)
		} else {
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")

			if execPath, err := os.Executable(); err == nil {
				execDir := filepath.Dir(execPath)
				viper.AddConfigPath(execDir)
			}
			viper.AddConfigPath(".")
			viper.AddConfigPath("./configs")
		}

		// Try to read config file, but don't fail if it doesn't exist
		// Embedded defaults and flags can provide all necessary configuration
		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); ok {
				slog.Debug("no config file found, will rely on flags and defaults")
			} else {
				const errMsg = "error reading config file"
				slog.With("err", err.Error()).Error(errMsg)
				return errors.Join(err, errors.New(errMsg))
			}
		} else {
			slog.With("config_file", viper.ConfigFileUsed()).Debug("config file loaded")
		}

		if err := viper.Unmarshal(&configs.Values); err != nil {
			const errMsg = "unable to decode application config"
			slog.With("err", err.Error()).Error(errMsg)
			return errors.Join(err, errors.New(errMsg))
		}

		logger.Initialize(logger.ParseLevel(configs.Values.Log.Level))

		slog.With("config", configs.Values).Debug("configuration loaded")

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().String("output-dir", "", "Directory the registry files are written to")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")

	if err := viper.BindPFlag("output.dir", rootCmd.PersistentFlags().Lookup("output-dir")); err != nil {
		panic(err)
	}
	if err := viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		panic(err)
	}
}

func main() {
	rootCmd.AddCommand(build.CMD)
	rootCmd.AddCommand(hash.CMD)

	if err := rootCmd.Execute(); err != nil {
		slog.With("err", err.Error()).Error("failed to execute root command")
		os.Exit(1)
	}
}

package build

import (
	"fmt"
	"log/slog"

	"github.com/concero/chain-registry/configs"
	"github.com/spf13/cobra"
)

var CMD = &cobra.Command{
	Use:   "build",
	Short: "Fetch upstream data and build the chain registry files",
	RunE: func(cmd *cobra.Command, args []string) error {
		slog.Info("starting build command. Validating config", slog.Any("sources", configs.Values.Sources))

		if err := configs.Values.Validate(); err != nil {
			return err
		}

		slog.Info("config validation successful. Building registry...")

		if err := start(cmd.Context(), cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("error occurred building registry: %w", err)
		}

		slog.Info("registry built successfully")

		return nil
	},
}

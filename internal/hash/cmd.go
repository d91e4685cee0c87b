package hash

import (
	"fmt"
	"log/slog"

	"github.com/concero/chain-registry/configs"
	fsjson "github.com/concero/chain-registry/internal/infra/filesystem/json"
	"github.com/concero/chain-registry/internal/output"
	"github.com/spf13/cobra"
)

var CMD = &cobra.Command{
	Use:   "hash",
	Short: "Print SHA-256 fingerprints of the minified registry files",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := configs.Values.Output.Dir
		slog.With("dir", dir).Info("fingerprinting registry files")

		fingerprints, err := output.FingerprintFiles(fsjson.NewReader(), dir, output.MinifiedFileNames())
		if err != nil {
			return fmt.Errorf("error occurred fingerprinting registry files: %w", err)
		}

		return output.PrintFingerprints(cmd.OutOrStdout(), fingerprints)
	},
}

// Package cmd contains the commands for the talon executable.
package cmd

import (
	"io"
	"log/slog"

	"github.com/gordian-engine/talon"
	"github.com/gordian-engine/talon/thash/tsha256"
	"github.com/spf13/cobra"
)

// NewRootCommand returns the root command for the talon executable.
// Human-readable results go to out;
// diagnostics go through the given logger.
func NewRootCommand(log *slog.Logger, out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "talon",
		Short: "Build Merkle trees over data blocks and work with membership proofs",

		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newRootHashCommand(log, out),
		newProveCommand(log, out),
		newVerifyCommand(log, out),
		newTreeCommand(log, out),
	)

	return rootCmd
}

// buildTree builds the SHA-256 tree over the command-line blocks.
func buildTree(args []string) (*talon.Tree, error) {
	blocks := make([][]byte, len(args))
	for i, a := range args {
		blocks[i] = []byte(a)
	}

	return talon.Build(blocks, talon.Config{
		Hasher:   tsha256.Hasher{},
		HashSize: tsha256.HashSize,
	})
}

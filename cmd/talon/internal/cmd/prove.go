package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

func newProveCommand(log *slog.Logger, out io.Writer) *cobra.Command {
	var leafIdx int

	proveCmd := &cobra.Command{
		Use:   "prove BLOCK...",
		Short: "Print the membership proof for one leaf, one digest per line",

		Args: cobra.MinimumNArgs(1),

		RunE: func(_ *cobra.Command, args []string) error {
			if leafIdx < 0 || leafIdx >= len(args) {
				return fmt.Errorf(
					"leaf index %d out of range [0, %d)", leafIdx, len(args),
				)
			}

			t, err := buildTree(args)
			if err != nil {
				return err
			}

			proof := t.Prove(t.Leaf(leafIdx))

			log.Info(
				"Generated proof",
				"leaf", leafIdx,
				"entries", len(proof),
			)

			for _, sibling := range proof {
				if _, err := fmt.Fprintln(out, hex.EncodeToString(sibling)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	proveCmd.Flags().IntVar(&leafIdx, "leaf", 0, "index of the leaf to prove")

	return proveCmd
}

package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

func newRootHashCommand(log *slog.Logger, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "root BLOCK...",
		Short: "Print the root digest of the tree built over the given blocks",

		Args: cobra.MinimumNArgs(1),

		RunE: func(_ *cobra.Command, args []string) error {
			t, err := buildTree(args)
			if err != nil {
				return err
			}

			log.Info(
				"Built tree",
				"blocks", len(args),
				"padded_leaves", t.NumLeaves(),
				"height", t.Height(),
			)

			_, err = fmt.Fprintln(out, hex.EncodeToString(t.RootHash()))
			return err
		},
	}
}

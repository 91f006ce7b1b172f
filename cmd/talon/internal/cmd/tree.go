package cmd

import (
	"io"
	"log/slog"

	"github.com/gordian-engine/talon"
	"github.com/spf13/cobra"
)

func newTreeCommand(log *slog.Logger, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "tree BLOCK...",
		Short: "Print an indented listing of the tree built over the given blocks",

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
			)

			return talon.Fprint(out, t)
		},
	}
}

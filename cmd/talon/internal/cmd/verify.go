package cmd

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/gordian-engine/talon"
	"github.com/gordian-engine/talon/thash/tsha256"
	"github.com/spf13/cobra"
)

func newVerifyCommand(log *slog.Logger, out io.Writer) *cobra.Command {
	var rootHex, leafHex string

	verifyCmd := &cobra.Command{
		Use:   "verify [PROOF_DIGEST...]",
		Short: "Check a membership proof against a root digest",

		RunE: func(_ *cobra.Command, args []string) error {
			rootHash, err := hex.DecodeString(rootHex)
			if err != nil {
				return fmt.Errorf("invalid root digest: %w", err)
			}

			leafHash, err := hex.DecodeString(leafHex)
			if err != nil {
				return fmt.Errorf("invalid leaf digest: %w", err)
			}

			proof := make(talon.Proof, len(args))
			for i, a := range args {
				proof[i], err = hex.DecodeString(a)
				if err != nil {
					return fmt.Errorf(
						"invalid proof digest at position %d: %w", i, err,
					)
				}
			}

			if talon.Verify(rootHash, leafHash, proof, tsha256.Hasher{}) {
				_, err = fmt.Fprintln(out, "OK")
				return err
			}

			log.Warn(
				"Verification failed",
				"proof_entries", len(proof),
			)

			if _, err := fmt.Fprintln(out, "FAILED"); err != nil {
				return err
			}
			return errors.New("proof did not verify")
		},
	}

	verifyCmd.Flags().StringVar(&rootHex, "root", "", "hex-encoded root digest")
	verifyCmd.Flags().StringVar(&leafHex, "leaf", "", "hex-encoded leaf digest")

	_ = verifyCmd.MarkFlagRequired("root")
	_ = verifyCmd.MarkFlagRequired("leaf")

	return verifyCmd
}

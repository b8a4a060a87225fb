package cli

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	huffman "github.com/chronos-tachyon/huffcode"
)

func newTableCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "table <file>",
		Short: "Print the code table that compress would write for a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, "failed to read %s", args[0])
			}
			weights, err := huffman.CountWeights(bytes.NewReader(data))
			if err != nil {
				return err
			}
			tree, err := huffman.NewTree(weights)
			if err != nil {
				return errors.Wrapf(err, "cannot build a code for %s", args[0])
			}
			_, err = tree.Save(cmd.OutOrStdout())
			return err
		},
	}
}

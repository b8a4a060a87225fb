package cli

import (
	"github.com/spf13/cobra"
)

func newDumpCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dump <table>",
		Short: "Load a code table and print a debugging dump of its tree",
		Long: `Load a code table written by compress, check that it describes a
complete prefix-free code, and print every symbol with its path.

Examples:
  huffcode dump hamlet.code`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := loadTable(args[0])
			if err != nil {
				return err
			}
			_, err = tree.Dump(cmd.OutOrStdout())
			return err
		},
	}
}

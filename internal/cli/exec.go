package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewExecCommand creates the exec command: run a mutation statement and
// print the affected row count.
func NewExecCommand(opts *RootOptions) *cobra.Command {
	var paramList string

	cmd := &cobra.Command{
		Use:   "exec <statement> [param...]",
		Short: "Run an INSERT/UPDATE/DELETE statement",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer store.Close()

			params := collectParams(args[1:], paramList)
			n, err := store.Execute(cmd.Context(), args[0], params...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d row(s) affected\n", n)
			return err
		},
	}

	cmd.Flags().StringVar(&paramList, "params", "", "comma-separated parameter list")
	return cmd
}

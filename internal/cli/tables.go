package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewTablesCommand creates the tables command: report whether the store
// has an entry for each named table.
func NewTablesCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tables <name>...",
		Short: "Check whether tables exist in the store",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer store.Close()

			for _, name := range args {
				state := "absent"
				if store.TableExists(name) {
					state = "exists"
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, state); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

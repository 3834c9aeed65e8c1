package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewInitCommand creates the init command: mark the store ready and seed
// first-run defaults.
func NewInitCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the store and seed first-run defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Initialize(cmd.Context()); err != nil {
				return fmt.Errorf("initialize store: %w", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "initialized %s\n", store.Path())
			return err
		},
	}
}

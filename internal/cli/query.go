package cli

import (
	"github.com/spf13/cobra"

	"github.com/questlog/questlog/internal/record"
	"github.com/questlog/questlog/internal/sqlparse"
)

// NewQueryCommand creates the query command: run a SELECT statement and
// print the resulting rows.
func NewQueryCommand(opts *RootOptions) *cobra.Command {
	var paramList string

	cmd := &cobra.Command{
		Use:   "query <statement> [param...]",
		Short: "Run a SELECT statement and print rows",
		Long: `Run a SELECT statement against the store.

Positional parameters bind ? placeholders left to right. They can be
passed as separate arguments or as one comma-separated --params list;
quoted and JSON-valued parameters survive the list intact.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer store.Close()

			params := collectParams(args[1:], paramList)
			rows, err := store.Query(cmd.Context(), args[0], params...)
			if err != nil {
				return err
			}
			return RenderRows(cmd.OutOrStdout(), rows, opts.Format)
		},
	}

	cmd.Flags().StringVar(&paramList, "params", "", "comma-separated parameter list")
	return cmd
}

// collectParams coerces positional parameters from either separate args
// or a comma-separated list. List items split at the top level only, so
// quoted strings and JSON values pass through whole.
func collectParams(args []string, paramList string) []any {
	raw := args
	if paramList != "" {
		raw = append(sqlparse.SplitList(paramList), args...)
	}
	if len(raw) == 0 {
		return nil
	}
	params := make([]any, len(raw))
	for i, item := range raw {
		params[i] = record.Unwrap(sqlparse.CoerceLiteral(item))
	}
	return params
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlcases/pkg/corpus"
)

func newSQLCommand() *cobra.Command {
	var (
		placeholder bool
		unsupported bool
	)

	cmd := &cobra.Command{
		Use:   "sql <case-id> [param...]",
		Short: "Resolve one case into concrete SQL",
		Long: `Resolve a case template. Without parameters the raw template is
printed (Literal variant pass-through); with parameters they are
substituted positionally. --placeholder rewrites value markers to ?
bind tokens instead.`,
		Example: `  # Raw template
  sqlcases sql assertSelectOne

  # Literal substitution
  sqlcases sql assertSelectOne 10 1000

  # Bind-parameter form
  sqlcases sql assertSelectOne --placeholder`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := newLoader()
			id := args[0]
			params := make([]any, 0, len(args)-1)
			for _, a := range args[1:] {
				params = append(params, a)
			}

			variant := corpus.Literal
			if placeholder {
				variant = corpus.Placeholder
			}

			var (
				sql string
				err error
			)
			if unsupported {
				sql, err = loader.UnsupportedSQLAs(id, variant, params)
			} else {
				sql, err = loader.SupportedSQLAs(id, variant, params)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), sql)
			return err
		},
	}

	cmd.Flags().BoolVar(&placeholder, "placeholder", false, "resolve with ? bind tokens")
	cmd.Flags().BoolVar(&unsupported, "unsupported", false, "resolve from the unsupported corpus")
	return cmd
}

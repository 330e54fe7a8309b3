package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlcases/pkg/corpus"
	"github.com/leapstack-labs/sqlcases/pkg/dialect"
)

func newMatrixCommand() *cobra.Command {
	var (
		unsupported bool
		dialectsCSV string
	)

	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Expand the (case x dialect x variant) test matrix",
		Example: `  # Full supported matrix over every dialect
  sqlcases matrix

  # Restrict the dialect axis
  sqlcases matrix --dialects MySQL,PostgreSQL

  # Unsupported corpus, JSON output
  sqlcases matrix --unsupported --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all := dialect.All()
			if dialectsCSV != "" {
				var err error
				all, err = dialect.ParseList(dialectsCSV)
				if err != nil {
					return err
				}
			}

			loader := newLoader()
			var (
				tuples []corpus.Tuple
				err    error
			)
			if unsupported {
				tuples, err = loader.UnsupportedTestMatrix(all)
			} else {
				tuples, err = loader.SupportedTestMatrix(all)
			}
			if err != nil {
				return err
			}
			return runMatrix(cmd, tuples)
		},
	}

	cmd.Flags().BoolVar(&unsupported, "unsupported", false, "expand the unsupported corpus")
	cmd.Flags().StringVar(&dialectsCSV, "dialects", "", "comma-separated dialect axis (default: all)")
	return cmd
}

type tupleRow struct {
	CaseID  string `json:"case_id"`
	Dialect string `json:"dialect"`
	Variant string `json:"variant"`
}

func runMatrix(cmd *cobra.Command, tuples []corpus.Tuple) error {
	w := cmd.OutOrStdout()
	if cfg.Output == "json" {
		items := make([]tupleRow, len(tuples))
		for i, t := range tuples {
			items[i] = tupleRow{CaseID: t.CaseID, Dialect: t.Dialect.String(), Variant: t.Variant.String()}
		}
		return renderJSON(w, items)
	}

	rows := make([][]string, len(tuples))
	for i, t := range tuples {
		rows[i] = []string{t.CaseID, t.Dialect.String(), t.Variant.String()}
	}
	renderTable(w, []string{"CASE", "DIALECT", "VARIANT"}, rows)
	_, _ = fmt.Fprintf(w, "%d tuples\n", len(tuples))
	return nil
}

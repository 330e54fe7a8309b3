package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlcases/pkg/corpus"
)

func newListCommand() *cobra.Command {
	var unsupported bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every case in a corpus",
		Example: `  # List the supported cases
  sqlcases list

  # List the unsupported cases as JSON
  sqlcases list --unsupported --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loader := newLoader()
			c, err := pick(loader, unsupported)
			if err != nil {
				return err
			}
			return runList(cmd, c)
		},
	}

	cmd.Flags().BoolVar(&unsupported, "unsupported", false, "list the unsupported corpus")
	return cmd
}

func pick(loader *corpus.Loader, unsupported bool) (*corpus.Corpus, error) {
	if unsupported {
		return loader.Unsupported()
	}
	return loader.Supported()
}

type caseRow struct {
	ID       string `json:"id"`
	Dialects string `json:"dialects,omitempty"`
	Template string `json:"template"`
}

func runList(cmd *cobra.Command, c *corpus.Corpus) error {
	var items []caseRow
	for _, id := range c.IDs() {
		sc, err := c.Lookup(id)
		if err != nil {
			return err
		}
		items = append(items, caseRow{ID: sc.ID, Dialects: sc.DatabaseTypes, Template: sc.Value})
	}

	w := cmd.OutOrStdout()
	if cfg.Output == "json" {
		return renderJSON(w, items)
	}
	rows := make([][]string, len(items))
	for i, it := range items {
		dialects := it.Dialects
		if dialects == "" {
			dialects = "(all)"
		}
		rows[i] = []string{it.ID, dialects, it.Template}
	}
	renderTable(w, []string{"ID", "DIALECTS", "TEMPLATE"}, rows)
	_, _ = fmt.Fprintf(w, "%d cases\n", len(items))
	return nil
}

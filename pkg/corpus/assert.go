package corpus

import (
	"fmt"
	"io"
	"sort"

	"github.com/leapstack-labs/sqlcases/pkg/sqlcase"
)

// LoadAssertions loads every assertion fixture under prefix into a flat
// slice, in resource-name order then file order. Dialect literals were
// already validated by the parser, so a typo fails the load instead of
// the first assertion run. A missing prefix yields an empty slice.
func LoadAssertions(src Source, prefix string) ([]sqlcase.Assertion, error) {
	resources, err := src.List(prefix)
	if err != nil {
		return nil, fmt.Errorf("scan assertion fixtures %q: %w", prefix, err)
	}
	sort.Slice(resources, func(i, j int) bool { return resources[i].Name() < resources[j].Name() })

	var out []sqlcase.Assertion
	for _, res := range resources {
		rc, err := res.Open()
		if err != nil {
			return nil, fmt.Errorf("open assertion fixture %s: %w", res.Name(), err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read assertion fixture %s: %w", res.Name(), err)
		}
		doc, err := sqlcase.ParseAssertionDocument(res.Name(), data)
		if err != nil {
			return nil, err
		}
		out = append(out, doc.Assertions...)
	}
	return out, nil
}

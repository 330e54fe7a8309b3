package corpus

import (
	"errors"

	"github.com/leapstack-labs/sqlcases/pkg/dialect"
)

// Tuple is one row of the flattened test matrix consumed by a
// parameterized test runner.
type Tuple struct {
	CaseID  string
	Dialect dialect.Dialect
	Variant Variant
}

// Expand computes the cross-product of (case x applicable dialect x
// variant) for every case in the corpus. A case with no dialect
// restriction applies to every dialect in all; a restriction naming a
// dialect outside the closed set fails the whole expansion with an
// UnknownDialectError, since that is a corpus-authoring error.
//
// Output order is sorted by case id, then variant declaration order,
// then dialect order, so reports are reproducible for a fixed corpus
// and a fixed all ordering.
func Expand(c *Corpus, all []dialect.Dialect) ([]Tuple, error) {
	var out []Tuple
	for _, id := range c.ids {
		sc := c.cases[id]
		applicable, err := sc.Dialects()
		if err != nil {
			var ue *dialect.UnknownError
			if errors.As(err, &ue) {
				return nil, &UnknownDialectError{CaseID: id, Name: ue.Name}
			}
			return nil, err
		}
		if applicable == nil {
			applicable = all
		}
		for _, v := range AllVariants() {
			for _, d := range applicable {
				out = append(out, Tuple{CaseID: id, Dialect: d, Variant: v})
			}
		}
	}
	return out, nil
}

// Package dialect defines the closed set of SQL dialects that fixture
// cases may target, plus name-based lookup with eager validation.
package dialect

import (
	"fmt"
	"strings"
)

// Dialect identifies one target SQL engine flavor.
type Dialect int

const (
	// H2 is the in-memory engine used by the integration harness.
	H2 Dialect = iota
	// MySQL targets MySQL and compatible engines.
	MySQL
	// PostgreSQL targets PostgreSQL.
	PostgreSQL
	// Oracle targets Oracle Database.
	Oracle
	// SQLServer targets Microsoft SQL Server.
	SQLServer
)

// names holds the canonical literal for each dialect, indexed by value.
// Fixture files reference dialects by these exact literals.
var names = [...]string{
	H2:         "H2",
	MySQL:      "MySQL",
	PostgreSQL: "PostgreSQL",
	Oracle:     "Oracle",
	SQLServer:  "SQLServer",
}

var byName = func() map[string]Dialect {
	m := make(map[string]Dialect, len(names))
	for d, n := range names {
		m[n] = Dialect(d)
	}
	return m
}()

// String returns the canonical dialect literal.
func (d Dialect) String() string {
	if int(d) < 0 || int(d) >= len(names) {
		return fmt.Sprintf("Dialect(%d)", int(d))
	}
	return names[d]
}

// All returns every dialect in declaration order.
func All() []Dialect {
	all := make([]Dialect, len(names))
	for i := range names {
		all[i] = Dialect(i)
	}
	return all
}

// UnknownError reports a dialect literal that is not part of the closed set.
type UnknownError struct {
	Name string
}

func (e *UnknownError) Error() string {
	return fmt.Sprintf("unknown dialect %q (known: %s)", e.Name, strings.Join(names[:], ", "))
}

// FromName resolves a dialect literal. The match is exact and
// case-sensitive; an unrecognized name returns an UnknownError rather
// than a fallback value.
func FromName(name string) (Dialect, error) {
	d, ok := byName[name]
	if !ok {
		return 0, &UnknownError{Name: name}
	}
	return d, nil
}

// ParseList resolves a comma-separated list of dialect literals, the form
// used by the `database-types` and `types` fixture attributes. Surrounding
// whitespace per element is tolerated. An empty or blank input yields nil,
// which callers treat as "every dialect".
func ParseList(s string) ([]Dialect, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]Dialect, 0, len(parts))
	for _, p := range parts {
		d, err := FromName(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

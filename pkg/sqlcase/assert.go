package sqlcase

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/sqlcases/pkg/dialect"
)

// Assertion is one entry of the assertion-fixture flavor: a SQL statement
// together with the expected sharding outcome for it.
type Assertion struct {
	ID  string `yaml:"id"`
	SQL string `yaml:"sql"`

	// Types is a comma-separated list of dialect literals. Empty means
	// the assertion applies to every dialect.
	Types string `yaml:"types"`

	// ShardingRuleAssertions carries the expected routing/rewrite data.
	// It is opaque to this module and handed to the test assertions
	// undecoded.
	ShardingRuleAssertions yaml.Node `yaml:"sharding-rule-assertions"`
}

// DialectSet resolves the Types restriction, validating every literal
// against the closed dialect set. Nil means unrestricted.
func (a Assertion) DialectSet() ([]dialect.Dialect, error) {
	return dialect.ParseList(a.Types)
}

// AssertionDocument is one parsed assertion-fixture file.
type AssertionDocument struct {
	Assertions []Assertion `yaml:"sql-asserts"`
}

// ParseAssertionDocument decodes one assertion-fixture file. Dialect
// literals are validated eagerly so a typo fails at load time rather
// than when the assertion first runs.
func ParseAssertionDocument(resource string, data []byte) (*AssertionDocument, error) {
	var doc AssertionDocument
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, &ParseError{Resource: resource, Message: fmt.Sprintf("invalid assertion document: %v", err)}
	}
	for i, a := range doc.Assertions {
		if a.ID == "" {
			return nil, &ParseError{Resource: resource, Message: fmt.Sprintf("assertion #%d: missing id", i)}
		}
		if a.SQL == "" {
			return nil, &ParseError{Resource: resource, Message: fmt.Sprintf("assertion %q: missing sql", a.ID)}
		}
		if _, err := a.DialectSet(); err != nil {
			return nil, &ParseError{Resource: resource, Message: fmt.Sprintf("assertion %q: %v", a.ID, err)}
		}
	}
	return &doc, nil
}

// Package sqlcase defines the fixture document schemas for SQL test
// cases: the plain case flavor (templates with positional markers) and
// the assertion flavor (expected routing data for sharding tests).
// Documents are YAML with strict field validation; a fixture file that
// fails to decode indicates a broken corpus, not a recoverable condition.
package sqlcase

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/sqlcases/pkg/dialect"
)

// Case is one logical SQL statement fixture.
//
// Value may contain positional value markers (%s) and literal-percent
// escapes (%%); resolution semantics live in pkg/corpus.
type Case struct {
	ID string `yaml:"id"`

	// Value is the SQL template text.
	Value string `yaml:"value"`

	// DatabaseTypes is a comma-separated list of dialect literals the
	// case is restricted to. Empty means the case applies to every
	// dialect known to the caller.
	DatabaseTypes string `yaml:"database-types"`
}

// Dialects resolves the DatabaseTypes restriction. Nil means
// unrestricted. An unknown literal returns a dialect.UnknownError.
func (c Case) Dialects() ([]dialect.Dialect, error) {
	return dialect.ParseList(c.DatabaseTypes)
}

// Document is one parsed case-definition file.
type Document struct {
	Cases []Case `yaml:"sql-cases"`
}

// ParseError reports a fixture file that could not be decoded or that
// violates the document schema.
type ParseError struct {
	Resource string
	Message  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Resource, e.Message)
}

// ParseDocument decodes one case-definition file. Unknown fields and
// cases missing id or value are schema violations and fail the parse.
func ParseDocument(resource string, data []byte) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, &ParseError{Resource: resource, Message: fmt.Sprintf("invalid case document: %v", err)}
	}
	for i, c := range doc.Cases {
		if c.ID == "" {
			return nil, &ParseError{Resource: resource, Message: fmt.Sprintf("case #%d: missing id", i)}
		}
		if c.Value == "" {
			return nil, &ParseError{Resource: resource, Message: fmt.Sprintf("case %q: missing value", c.ID)}
		}
	}
	return &doc, nil
}

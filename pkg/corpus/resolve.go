package corpus

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/sqlcases/pkg/sqlcase"
)

// Variant selects how parameter values appear in resolved SQL.
type Variant int

const (
	// Literal substitutes parameter values inline as text.
	Literal Variant = iota
	// Placeholder replaces every value marker with a ? bind token.
	Placeholder
)

func (v Variant) String() string {
	switch v {
	case Literal:
		return "Literal"
	case Placeholder:
		return "Placeholder"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// AllVariants returns every variant in declaration order.
func AllVariants() []Variant {
	return []Variant{Literal, Placeholder}
}

// Resolve turns a case template into concrete SQL for the given variant.
// Parameters are only consumed by the Literal variant; Placeholder
// accepts them for signature symmetry with the matrix expander and
// ignores them.
func Resolve(c sqlcase.Case, v Variant, params []any) (string, error) {
	switch v {
	case Literal:
		return resolveLiteral(c, params)
	case Placeholder:
		return resolvePlaceholder(c.Value), nil
	default:
		return "", fmt.Errorf("case %q: unsupported syntax variant %d", c.ID, int(v))
	}
}

// resolvePlaceholder rewrites markers in two phases: every %s becomes ?
// first, then every %% becomes %. The phase order is part of the
// contract ("%%s" resolves to "%?", not "%s").
func resolvePlaceholder(template string) string {
	sql := strings.ReplaceAll(template, "%s", "?")
	return strings.ReplaceAll(sql, "%%", "%")
}

// resolveLiteral substitutes parameters positionally. With no parameters
// the template passes through byte-for-byte, %% escapes included; that
// asymmetry with the Placeholder variant is deliberate, for templates
// that need no substitution.
func resolveLiteral(c sqlcase.Case, params []any) (string, error) {
	if len(params) == 0 {
		return c.Value, nil
	}

	// Explicit marker-by-marker scan; values render in their natural
	// string form with no quoting or SQL escaping.
	var b strings.Builder
	b.Grow(len(c.Value))
	template := c.Value
	markers, next := 0, 0
	for i := 0; i < len(template); {
		if template[i] != '%' || i+1 >= len(template) {
			b.WriteByte(template[i])
			i++
			continue
		}
		switch template[i+1] {
		case '%':
			b.WriteByte('%')
			i += 2
		case 's':
			markers++
			if next < len(params) {
				b.WriteString(fmt.Sprint(params[next]))
				next++
			}
			i += 2
		default:
			b.WriteByte(template[i])
			i++
		}
	}
	if markers != len(params) {
		return "", &FormatError{CaseID: c.ID, Markers: markers, Params: len(params)}
	}
	return b.String(), nil
}

package corpus

import (
	"log/slog"
	"sync"

	"github.com/leapstack-labs/sqlcases/pkg/dialect"
)

// Fixed fixture categories. The supported and unsupported corpora are
// independent and never merged.
const (
	SupportedCategory   = "sql"
	UnsupportedCategory = "unsupported_sql"
)

// Loader serves the supported and unsupported corpora. Each corpus is
// built lazily on first access; concurrent first callers observe exactly
// one build and share its result. Construct one Loader and pass it by
// reference to consumers.
type Loader struct {
	source Source
	logger *slog.Logger

	supportedOnce sync.Once
	supported     *Corpus
	supportedErr  error

	unsupportedOnce sync.Once
	unsupported     *Corpus
	unsupportedErr  error
}

// Option configures a Loader.
type Option func(*Loader)

// WithSource overrides deployment-shape detection with an explicit
// fixture source.
func WithSource(src Source) Option {
	return func(l *Loader) { l.source = src }
}

// WithLogger sets the logger used during corpus builds.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) { l.logger = logger }
}

// NewLoader creates a Loader serving fixtures rooted at root. The
// discovery mode (loose directory tree vs. zip-packaged binary) is
// probed once here, not chosen per call.
func NewLoader(root string, opts ...Option) *Loader {
	l := &Loader{
		source: DetectSource(root),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Supported returns the supported-cases corpus, building it on first use.
func (l *Loader) Supported() (*Corpus, error) {
	l.supportedOnce.Do(func() {
		l.supported, l.supportedErr = Build(l.source, SupportedCategory, l.logger)
	})
	return l.supported, l.supportedErr
}

// Unsupported returns the unsupported-cases corpus, building it on first use.
func (l *Loader) Unsupported() (*Corpus, error) {
	l.unsupportedOnce.Do(func() {
		l.unsupported, l.unsupportedErr = Build(l.source, UnsupportedCategory, l.logger)
	})
	return l.unsupported, l.unsupportedErr
}

// SupportedSQL returns the raw template for id, Literal variant with no
// parameters.
func (l *Loader) SupportedSQL(id string) (string, error) {
	return l.supportedSQLAs(id, Literal, nil)
}

// SupportedLiteralSQL resolves id with inline parameter substitution.
func (l *Loader) SupportedLiteralSQL(id string, params []any) (string, error) {
	return l.supportedSQLAs(id, Literal, params)
}

// SupportedPlaceholderSQL resolves id with ? bind tokens.
func (l *Loader) SupportedPlaceholderSQL(id string) (string, error) {
	return l.supportedSQLAs(id, Placeholder, nil)
}

// SupportedSQLAs resolves id from the supported corpus with an explicit
// variant.
func (l *Loader) SupportedSQLAs(id string, v Variant, params []any) (string, error) {
	return l.supportedSQLAs(id, v, params)
}

// UnsupportedSQLAs resolves id from the unsupported corpus with an
// explicit variant.
func (l *Loader) UnsupportedSQLAs(id string, v Variant, params []any) (string, error) {
	c, err := l.Unsupported()
	if err != nil {
		return "", err
	}
	return resolveFrom(c, id, v, params)
}

func (l *Loader) supportedSQLAs(id string, v Variant, params []any) (string, error) {
	c, err := l.Supported()
	if err != nil {
		return "", err
	}
	return resolveFrom(c, id, v, params)
}

func resolveFrom(c *Corpus, id string, v Variant, params []any) (string, error) {
	sc, err := c.Lookup(id)
	if err != nil {
		return "", err
	}
	return Resolve(sc, v, params)
}

// SupportedDialects returns the raw dialect-restriction literal for id,
// exactly as authored in the fixture (empty means unrestricted).
func (l *Loader) SupportedDialects(id string) (string, error) {
	c, err := l.Supported()
	if err != nil {
		return "", err
	}
	sc, err := c.Lookup(id)
	if err != nil {
		return "", err
	}
	return sc.DatabaseTypes, nil
}

// SupportedTestMatrix expands the supported corpus against all.
func (l *Loader) SupportedTestMatrix(all []dialect.Dialect) ([]Tuple, error) {
	c, err := l.Supported()
	if err != nil {
		return nil, err
	}
	return Expand(c, all)
}

// UnsupportedTestMatrix expands the unsupported corpus against all.
func (l *Loader) UnsupportedTestMatrix(all []dialect.Dialect) ([]Tuple, error) {
	c, err := l.Unsupported()
	if err != nil {
		return nil, err
	}
	return Expand(c, all)
}

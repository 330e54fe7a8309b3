// Package corpus loads SQL test-case fixtures into an immutable index
// and resolves cases into concrete SQL text or a flattened test matrix.
//
// Fixtures are discovered from a directory tree or from a zip-packaged
// binary (see Source), parsed once, and served read-only for the rest of
// the process lifetime.
package corpus

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/sqlcases/pkg/sqlcase"
)

// parseConcurrency bounds the fixture files parsed in parallel during a
// build. The corpus is small; this only smooths cold-start latency.
const parseConcurrency = 8

// Corpus is the immutable set of cases loaded for one category.
// It requires no locking after Build returns.
type Corpus struct {
	cases map[string]sqlcase.Case
	ids   []string // sorted, for deterministic iteration
}

// Build discovers every fixture resource under prefix, parses each, and
// merges the cases into one index. A malformed document or a duplicate
// id fails the whole build; a missing category yields an empty corpus.
func Build(src Source, prefix string, logger *slog.Logger) (*Corpus, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	resources, err := src.List(prefix)
	if err != nil {
		return nil, fmt.Errorf("scan fixtures %q: %w", prefix, err)
	}

	var (
		mu    sync.Mutex
		cases = make(map[string]sqlcase.Case)
	)
	var g errgroup.Group
	g.SetLimit(parseConcurrency)
	for _, res := range resources {
		g.Go(func() error {
			doc, err := parseResource(res)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			for _, c := range doc.Cases {
				if _, dup := cases[c.ID]; dup {
					return &DuplicateCaseError{ID: c.ID, Resource: res.Name()}
				}
				cases[c.ID] = c
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(cases))
	for id := range cases {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	logger.Debug("built SQL case corpus", "prefix", prefix, "files", len(resources), "cases", len(ids))
	return &Corpus{cases: cases, ids: ids}, nil
}

func parseResource(res Resource) (*sqlcase.Document, error) {
	rc, err := res.Open()
	if err != nil {
		return nil, fmt.Errorf("open fixture %s: %w", res.Name(), err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", res.Name(), err)
	}
	return sqlcase.ParseDocument(res.Name(), data)
}

// Lookup returns the case for id, or a CaseNotFoundError carrying the
// offending id.
func (c *Corpus) Lookup(id string) (sqlcase.Case, error) {
	sc, ok := c.cases[id]
	if !ok {
		return sqlcase.Case{}, &CaseNotFoundError{ID: id}
	}
	return sc, nil
}

// Len returns the number of cases in the corpus.
func (c *Corpus) Len() int { return len(c.cases) }

// IDs returns every case id in sorted order.
func (c *Corpus) IDs() []string {
	out := make([]string, len(c.ids))
	copy(out, c.ids)
	return out
}

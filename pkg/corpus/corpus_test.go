package corpus

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlcases/internal/testutil"
)

func fixtureTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "sql", "dql", "select.yaml"), `
sql-cases:
  - id: select_one
    value: SELECT 1
  - id: select_by_user
    value: SELECT * FROM t_order WHERE user_id = %s
    database-types: MySQL,Oracle
`)
	writeFile(t, filepath.Join(root, "sql", "dml", "insert.yaml"), `
sql-cases:
  - id: insert_order
    value: INSERT INTO t_order (order_id, user_id) VALUES (%s, %s)
`)
	writeFile(t, filepath.Join(root, "unsupported_sql", "unsupported.yaml"), `
sql-cases:
  - id: select_into_outfile
    value: SELECT * INTO OUTFILE '/tmp/out' FROM t_order
    database-types: MySQL
`)
	return root
}

func TestBuild_MergesAcrossFiles(t *testing.T) {
	src := &DirSource{Root: fixtureTree(t)}
	c, err := Build(src, SupportedCategory, testutil.NewTestLogger(t))
	require.NoError(t, err)

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []string{"insert_order", "select_by_user", "select_one"}, c.IDs())

	sc, err := c.Lookup("select_by_user")
	require.NoError(t, err)
	assert.Equal(t, "MySQL,Oracle", sc.DatabaseTypes)
}

func TestBuild_MissingCategory(t *testing.T) {
	src := &DirSource{Root: t.TempDir()}
	c, err := Build(src, SupportedCategory, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
}

func TestBuild_Idempotent(t *testing.T) {
	src := &DirSource{Root: fixtureTree(t)}
	first, err := Build(src, SupportedCategory, nil)
	require.NoError(t, err)
	second, err := Build(src, SupportedCategory, nil)
	require.NoError(t, err)

	require.Equal(t, first.IDs(), second.IDs())
	for _, id := range first.IDs() {
		a, err := first.Lookup(id)
		require.NoError(t, err)
		b, err := second.Lookup(id)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

func TestBuild_DuplicateID(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "sql", "a.yaml"), "sql-cases:\n  - id: select_one\n    value: SELECT 1\n")
	writeFile(t, filepath.Join(root, "sql", "b.yaml"), "sql-cases:\n  - id: select_one\n    value: SELECT 2\n")

	_, err := Build(&DirSource{Root: root}, SupportedCategory, nil)
	require.Error(t, err)
	var dup *DuplicateCaseError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "select_one", dup.ID)
}

func TestBuild_MalformedDocumentAborts(t *testing.T) {
	root := fixtureTree(t)
	writeFile(t, filepath.Join(root, "sql", "broken.yaml"), "sql-cases: [unclosed")

	_, err := Build(&DirSource{Root: root}, SupportedCategory, nil)
	require.Error(t, err)
}

func TestCorpus_LookupNotFound(t *testing.T) {
	c, err := Build(&DirSource{Root: fixtureTree(t)}, SupportedCategory, nil)
	require.NoError(t, err)

	_, err = c.Lookup("no_such_case")
	var nf *CaseNotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "no_such_case", nf.ID)
}

func TestLoader_ConcurrentFirstAccess(t *testing.T) {
	loader := NewLoader(fixtureTree(t), WithLogger(testutil.NewTestLogger(t)))

	const callers = 16
	results := make([]*Corpus, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := loader.Supported()
			if err != nil {
				t.Error(err)
				return
			}
			results[i] = c
		}(i)
	}
	wg.Wait()

	// Every caller observes the same build.
	for i := 1; i < callers; i++ {
		assert.Same(t, results[0], results[i])
	}
}

func TestLoader_CorporaAreIndependent(t *testing.T) {
	loader := NewLoader(fixtureTree(t))

	supported, err := loader.Supported()
	require.NoError(t, err)
	unsupported, err := loader.Unsupported()
	require.NoError(t, err)

	assert.Equal(t, 3, supported.Len())
	assert.Equal(t, 1, unsupported.Len())

	_, err = supported.Lookup("select_into_outfile")
	require.Error(t, err)
}

func TestBuild_FromArchive(t *testing.T) {
	path := writeArchive(t, map[string]string{
		"sql/dql/select.yaml": "sql-cases:\n  - id: select_one\n    value: SELECT 1\n",
		"sql/dml/insert.yaml": "sql-cases:\n  - id: insert_order\n    value: INSERT INTO t_order VALUES (%s)\n",
	})

	c, err := Build(&ArchiveSource{Path: path}, SupportedCategory, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"insert_order", "select_one"}, c.IDs())
}

package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixtures(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, "sql", "dql")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "select.yaml"), []byte(`
sql-cases:
  - id: select_by_user
    value: SELECT * FROM t_order WHERE user_id = %s
    database-types: MySQL,Oracle
  - id: select_one
    value: SELECT 1
`), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "unsupported_sql"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "unsupported_sql", "u.yaml"), []byte(`
sql-cases:
  - id: select_into_outfile
    value: SELECT * INTO OUTFILE '/tmp/out' FROM t_order
`), 0644))
	return root
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSQLCommand(t *testing.T) {
	root := writeFixtures(t)

	out, err := runCommand(t, "sql", "select_by_user", "42", "--fixtures-dir", root)
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM t_order WHERE user_id = 42\n", out)
}

func TestSQLCommand_Placeholder(t *testing.T) {
	root := writeFixtures(t)

	out, err := runCommand(t, "sql", "select_by_user", "--placeholder", "--fixtures-dir", root)
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM t_order WHERE user_id = ?\n", out)
}

func TestSQLCommand_UnknownID(t *testing.T) {
	root := writeFixtures(t)

	_, err := runCommand(t, "sql", "no_such_case", "--fixtures-dir", root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no_such_case")
}

func TestListCommand_JSON(t *testing.T) {
	root := writeFixtures(t)

	out, err := runCommand(t, "list", "--fixtures-dir", root, "--output", "json")
	require.NoError(t, err)

	var items []map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "select_by_user", items[0]["id"])
	assert.Equal(t, "MySQL,Oracle", items[0]["dialects"])
}

func TestMatrixCommand_JSON(t *testing.T) {
	root := writeFixtures(t)

	out, err := runCommand(t, "matrix", "--fixtures-dir", root, "--output", "json", "--dialects", "MySQL")
	require.NoError(t, err)

	var items []map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	// select_by_user restricted to MySQL,Oracle; select_one defaults to
	// the MySQL-only axis. 3 dialect pairings x 2 variants.
	assert.Len(t, items, 6)
}

func TestMatrixCommand_UnknownDialectAxis(t *testing.T) {
	root := writeFixtures(t)

	_, err := runCommand(t, "matrix", "--fixtures-dir", root, "--dialects", "Fake")
	require.Error(t, err)
}

func TestLintCommand(t *testing.T) {
	root := writeFixtures(t)

	out, err := runCommand(t, "lint", "--fixtures-dir", root)
	require.NoError(t, err)
	assert.Contains(t, out, "2 supported")
	assert.Contains(t, out, "1 unsupported")
}

func TestLintCommand_DuplicateID(t *testing.T) {
	root := writeFixtures(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "sql", "dup.yaml"), []byte(`
sql-cases:
  - id: select_one
    value: SELECT 1
`), 0644))

	_, err := runCommand(t, "lint", "--fixtures-dir", root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

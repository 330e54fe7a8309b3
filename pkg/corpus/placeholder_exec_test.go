package corpus

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Placeholder-resolved SQL must be a valid database/sql statement: every
// value marker one ? bind token, every escape a plain literal.
func TestPlaceholderSQLExecutesThroughDatabaseSQL(t *testing.T) {
	loader := newTestLoader(t)

	sql, err := loader.SupportedPlaceholderSQL("select_by_user")
	require.NoError(t, err)

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(sql).WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"order_id"}).AddRow(1000))

	rows, err := db.Query(sql, 10)
	require.NoError(t, err)
	defer rows.Close()

	require.True(t, rows.Next())
	var orderID int
	require.NoError(t, rows.Scan(&orderID))
	assert.Equal(t, 1000, orderID)
	require.NoError(t, rows.Err())

	assert.NoError(t, mock.ExpectationsWereMet())
}

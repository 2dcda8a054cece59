package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/openmusic/openmusic-api/internal/infrastructure/db"
	"github.com/stretchr/testify/require"
)

func newMockDatabase(t *testing.T) (*db.Database, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = mockDB.Close()
	})
	return &db.Database{DB: sqlx.NewDb(mockDB, "sqlmock")}, mock
}

package session

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockSQL(t *testing.T) (*SQL, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return NewSQL(db), mock
}

func TestSQLGet(t *testing.T) {
	backend, mock := newMockSQL(t)
	raw, err := json.Marshal(demo)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT \\* FROM `session_records` WHERE record_key = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"record_key", "value", "updated_at"}).
			AddRow(DefaultKey, raw, time.Now()))

	got, ok := NewStore(backend, "").Restore(context.Background())
	require.True(t, ok)
	require.Equal(t, demo, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLGetMissing(t *testing.T) {
	backend, mock := newMockSQL(t)
	mock.ExpectQuery("SELECT \\* FROM `session_records`").
		WillReturnRows(sqlmock.NewRows([]string{"record_key", "value", "updated_at"}))

	_, found, err := backend.Get(context.Background(), DefaultKey)
	require.NoError(t, err)
	require.False(t, found)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLGetErrorIsNoSession(t *testing.T) {
	backend, mock := newMockSQL(t)
	mock.ExpectQuery("SELECT \\* FROM `session_records`").WillReturnError(errors.New("connection reset"))

	_, ok := NewStore(backend, "").Restore(context.Background())
	require.False(t, ok)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLSetUpserts(t *testing.T) {
	backend, mock := newMockSQL(t)
	mock.ExpectExec("INSERT INTO `session_records` .* ON DUPLICATE KEY UPDATE").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, NewStore(backend, "").Login(context.Background(), demo))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLDelete(t *testing.T) {
	backend, mock := newMockSQL(t)
	mock.ExpectExec("DELETE FROM `session_records` WHERE record_key = \\?").
		WithArgs(DefaultKey).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, NewStore(backend, "").Logout(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

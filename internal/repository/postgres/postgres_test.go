package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubhub-backend/internal/repository"
	"clubhub-backend/internal/repository/postgres"
)

func TestStore_WithinTx(t *testing.T) {
	t.Run("CommitsOnNilError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		store := postgres.NewStore(db)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE notifications SET is_read = TRUE").
			WithArgs(int32(1), int32(4)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err = store.WithinTx(context.Background(), func(tx repository.Store) error {
			return tx.Notifications().MarkAsRead(context.Background(), 1, 4)
		})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RollsBackOnError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		store := postgres.NewStore(db)

		mock.ExpectBegin()
		mock.ExpectRollback()

		err = store.WithinTx(context.Background(), func(tx repository.Store) error {
			return assert.AnError
		})
		assert.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RollbackFailureKeepsCallbackError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		store := postgres.NewStore(db)

		mock.ExpectBegin()
		mock.ExpectRollback().WillReturnError(errors.New("driver: bad connection"))

		// The callback error must stay matchable even when rollback fails,
		// or the caller maps a conflict to the wrong status code.
		err = store.WithinTx(context.Background(), func(tx repository.Store) error {
			return assert.AnError
		})
		assert.ErrorIs(t, err, assert.AnError)
		assert.Contains(t, err.Error(), "rollback failed")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

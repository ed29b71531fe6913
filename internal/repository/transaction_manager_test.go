package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func TestTransactionManager_CommitAndNested(t *testing.T) {
	db, mock := setupTestDB(t)
	tm := NewTransactionManagerAdapter(db)

	mock.ExpectBegin()
	mock.ExpectCommit()

	var outer, inner DBTX
	err := tm.WithTransaction(context.Background(), func(ctx context.Context) error {
		outer = GetExecutor(ctx, db)
		return tm.WithTransaction(ctx, func(ctx context.Context) error {
			inner = GetExecutor(ctx, db)
			return nil
		})
	})

	assert.NoError(t, err)
	_, isTx := outer.(*sqlx.Tx)
	assert.True(t, isTx)
	assert.Same(t, outer, inner)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_Rollback(t *testing.T) {
	db, mock := setupTestDB(t)
	tm := NewTransactionManagerAdapter(db)
	fnErr := errors.New("fn failed")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := tm.WithTransaction(context.Background(), func(ctx context.Context) error {
		return fnErr
	})
	assert.ErrorIs(t, err, fnErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_CommitFails(t *testing.T) {
	db, mock := setupTestDB(t)
	tm := NewTransactionManagerAdapter(db)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

	err := tm.WithTransaction(context.Background(), func(ctx context.Context) error { return nil })
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetExecutor_WithoutTransaction(t *testing.T) {
	db, _ := setupTestDB(t)
	exec, ok := GetExecutor(context.Background(), db).(*sqlx.DB)
	assert.True(t, ok)
	assert.Same(t, db, exec)
}

func TestTransactionManager_ExecutorRunsNamedExecInTx(t *testing.T) {
	db, mock := setupTestDB(t)
	tm := NewTransactionManagerAdapter(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM assigned_quizzes").WithArgs("Q1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := tm.WithTransaction(context.Background(), func(ctx context.Context) error {
		_, err := GetExecutor(ctx, db).NamedExecContext(ctx, `DELETE FROM assigned_quizzes WHERE id = :id`, map[string]interface{}{"id": "Q1"})
		return err
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTx_Commit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err, "failed to create mock")
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	called := false
	err = WithTx(context.Background(), mock, func(ctx context.Context, q DBTX) error {
		called = true
		require.NotNil(t, q)
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)

	assert.NoError(t, mock.ExpectationsWereMet(), "unfulfilled expectations")
}

func TestWithTx_RollbackOnError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err, "failed to create mock")
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	sentinel := errors.New("boom")
	err = WithTx(context.Background(), mock, func(ctx context.Context, q DBTX) error {
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	assert.NoError(t, mock.ExpectationsWereMet(), "unfulfilled expectations")
}

func TestWithTx_BeginError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err, "failed to create mock")
	defer mock.Close()

	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	err = WithTx(context.Background(), mock, func(ctx context.Context, q DBTX) error {
		t.Fatal("fn must not run when Begin fails")
		return nil
	})
	require.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet(), "unfulfilled expectations")
}

func TestWithTx_RollbackOnPanic(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err, "failed to create mock")
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = WithTx(context.Background(), mock, func(ctx context.Context, q DBTX) error {
			panic("boom")
		})
	})

	assert.NoError(t, mock.ExpectationsWereMet(), "unfulfilled expectations")
}

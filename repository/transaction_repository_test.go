package repository

import (
	"context"
	"math"
	"regexp"
	"simple-bank-api/model"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var transactionColumns = []string{"id", "account_id", "amount", "transaction_type", "timestamp"}

func TestTransactionRepository_CreateTransaction(t *testing.T) {
	db, dbMock := newMockDB(t)
	stamp := time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC)

	dbMock.ExpectBegin()
	dbMock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO transactions (account_id, amount, transaction_type) VALUES ($1, $2, $3) RETURNING id, timestamp`)).
		WithArgs(1, 200.0, model.TransactionTypeTransfer).
		WillReturnRows(sqlmock.NewRows([]string{"id", "timestamp"}).AddRow(40, stamp))
	dbMock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)

	transaction := &model.Transaction{AccountID: 1, Amount: 200, TransactionType: model.TransactionTypeTransfer}
	require.NoError(t, NewTransactionRepository(db).CreateTransaction(context.Background(), tx, transaction))
	require.NoError(t, tx.Commit())

	assert.Equal(t, 40, transaction.ID)
	assert.Equal(t, stamp, transaction.Timestamp)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestTransactionRepository_ListTransactionsForUser(t *testing.T) {
	ctx := context.Background()

	t.Run("no filters", func(t *testing.T) {
		db, dbMock := newMockDB(t)
		dbMock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM transactions t JOIN accounts a ON a.id = t.account_id WHERE a.user_id = $1`)).
			WithArgs(7).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
		dbMock.ExpectQuery(regexp.QuoteMeta(`WHERE a.user_id = $1 ORDER BY t.timestamp DESC, t.id DESC LIMIT $2 OFFSET $3`)).
			WithArgs(7, 10, 10).
			WillReturnRows(sqlmock.NewRows(transactionColumns).
				AddRow(2, 1, 50.0, "transfer", time.Now()).
				AddRow(1, 1, 200.0, "transfer", time.Now().Add(-time.Hour)))

		rows, total, err := NewTransactionRepository(db).ListTransactionsForUser(ctx, 7, model.TransactionFilter{Page: 2, PerPage: 10})

		require.NoError(t, err)
		assert.Equal(t, 12, total)
		require.Len(t, rows, 2)
		assert.Equal(t, 2, rows[0].ID)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("amount and date filters", func(t *testing.T) {
		db, dbMock := newMockDB(t)
		day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
		where := regexp.QuoteMeta(`WHERE a.user_id = $1 AND t.amount = $2 AND t.timestamp >= $3 AND t.timestamp < $4`)
		order := regexp.QuoteMeta(` ORDER BY t.timestamp DESC, t.id DESC LIMIT $5 OFFSET $6`)

		dbMock.ExpectQuery(`SELECT COUNT\(\*\).*`+where).
			WithArgs(7, 200.0, day, day.Add(24*time.Hour)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		dbMock.ExpectQuery(where+order).
			WithArgs(7, 200.0, day, day.Add(24*time.Hour), 5, 0).
			WillReturnRows(sqlmock.NewRows(transactionColumns).AddRow(3, 1, 200.0, "transfer", day.Add(9*time.Hour)))

		afternoon := day.Add(15 * time.Hour)
		rows, total, err := NewTransactionRepository(db).ListTransactionsForUser(ctx, 7, model.TransactionFilter{
			Page:    1,
			PerPage: 5,
			Amount:  200,
			Date:    &afternoon,
		})

		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, rows, 1)
		assert.Equal(t, 200.0, rows[0].Amount)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("offset saturates for a page past the end", func(t *testing.T) {
		db, dbMock := newMockDB(t)
		dbMock.ExpectQuery(`SELECT COUNT`).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
		dbMock.ExpectQuery(`ORDER BY`).
			WithArgs(7, 10, math.MaxInt).
			WillReturnRows(sqlmock.NewRows(transactionColumns))

		rows, total, err := NewTransactionRepository(db).ListTransactionsForUser(ctx, 7, model.TransactionFilter{Page: math.MaxInt / 5, PerPage: 10})

		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Empty(t, rows)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("empty result is an empty slice", func(t *testing.T) {
		db, dbMock := newMockDB(t)
		dbMock.ExpectQuery(`SELECT COUNT`).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		dbMock.ExpectQuery(`ORDER BY`).WillReturnRows(sqlmock.NewRows(transactionColumns))

		rows, total, err := NewTransactionRepository(db).ListTransactionsForUser(ctx, 7, model.TransactionFilter{Page: 1, PerPage: 10})

		require.NoError(t, err)
		assert.Zero(t, total)
		assert.NotNil(t, rows)
		assert.Empty(t, rows)
	})
}

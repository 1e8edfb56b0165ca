package repository

import (
	"context"
	"database/sql"
	"regexp"
	"simple-bank-api/model"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository_CreateAccount(t *testing.T) {
	insert := regexp.QuoteMeta(`INSERT INTO accounts (account_number, account_type, balance, user_id) VALUES ($1, $2, $3, $4) RETURNING id, created_at`)

	t.Run("success", func(t *testing.T) {
		db, dbMock := newMockDB(t)
		dbMock.ExpectQuery(insert).
			WithArgs("ACC-1", "checking", 0.0, 2).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(11, time.Now()))

		account := &model.Account{UserID: 2, AccountNumber: "ACC-1", AccountType: "checking"}
		err := NewAccountRepository(db).CreateAccount(context.Background(), account)

		require.NoError(t, err)
		assert.Equal(t, 11, account.ID)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("duplicate account number", func(t *testing.T) {
		db, dbMock := newMockDB(t)
		dbMock.ExpectQuery(insert).WillReturnError(&pq.Error{Code: "23505"})

		err := NewAccountRepository(db).CreateAccount(context.Background(), &model.Account{AccountNumber: "ACC-1"})

		assert.ErrorIs(t, err, ErrDuplicate)
	})
}

func TestAccountRepository_AccountNumberExists(t *testing.T) {
	db, dbMock := newMockDB(t)
	dbMock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM accounts WHERE account_number = $1)`)).
		WithArgs("ACC-1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := NewAccountRepository(db).AccountNumberExists(context.Background(), "ACC-1")

	require.NoError(t, err)
	assert.True(t, exists)
}

func TestAccountRepository_LockAndAdjust(t *testing.T) {
	db, dbMock := newMockDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	dbMock.ExpectBegin()
	dbMock.ExpectQuery(regexp.QuoteMeta(`FROM accounts WHERE id = $1 FOR UPDATE`)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "account_number", "account_type", "balance", "created_at"}).
			AddRow(1, 2, "ACC-1", "checking", 500.0, time.Now()))
	dbMock.ExpectQuery(regexp.QuoteMeta(`FROM accounts WHERE id = $1 FOR UPDATE`)).
		WithArgs(99).
		WillReturnError(sql.ErrNoRows)
	dbMock.ExpectExec(regexp.QuoteMeta(`UPDATE accounts SET balance = balance + $1 WHERE id = $2`)).
		WithArgs(-201.0, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	dbMock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)

	account, err := repo.GetAccountForUpdate(ctx, tx, 1)
	require.NoError(t, err)
	assert.Equal(t, 500.0, account.Balance)
	assert.Equal(t, 2, account.UserID)

	_, err = repo.GetAccountForUpdate(ctx, tx, 99)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	require.NoError(t, repo.AdjustBalance(ctx, tx, 1, -201))
	require.NoError(t, tx.Commit())
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

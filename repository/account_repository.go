package repository

import (
	"context"
	"database/sql"
	"fmt"
	"simple-bank-api/logger"
	"simple-bank-api/model"

	"github.com/sirupsen/logrus"
)

// IAccountRepository defines the contract for account database operations.
type IAccountRepository interface {
	CreateAccount(ctx context.Context, account *model.Account) error
	AccountNumberExists(ctx context.Context, accountNumber string) (bool, error)
	GetAccountForUpdate(ctx context.Context, tx *sql.Tx, accountID int) (*model.Account, error)
	AdjustBalance(ctx context.Context, tx *sql.Tx, accountID int, delta float64) error
}

type AccountRepository struct {
	DB *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{DB: db}
}

// CreateAccount adds a new account to the database. A taken account number
// yields ErrDuplicate.
func (r *AccountRepository) CreateAccount(ctx context.Context, account *model.Account) error {
	log := logger.Log.WithFields(logrus.Fields{
		"user_id":        account.UserID,
		"account_number": account.AccountNumber,
		"account_type":   account.AccountType,
	})
	log.Info("Executing query to create a new account")

	query := `INSERT INTO accounts (account_number, account_type, balance, user_id) VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	err := r.DB.QueryRowContext(ctx, query, account.AccountNumber, account.AccountType, account.Balance, account.UserID).
		Scan(&account.ID, &account.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			log.Warn("Account number already taken")
			return ErrDuplicate
		}
		log.WithError(err).Error("Failed to execute create account query")
		return fmt.Errorf("create account: %w", err)
	}
	return nil
}

func (r *AccountRepository) AccountNumberExists(ctx context.Context, accountNumber string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM accounts WHERE account_number = $1)`
	if err := r.DB.QueryRowContext(ctx, query, accountNumber).Scan(&exists); err != nil {
		logger.Log.WithError(err).WithField("account_number", accountNumber).Error("Failed to check account number")
		return false, fmt.Errorf("check account number: %w", err)
	}
	return exists, nil
}

// GetAccountForUpdate reads an account and locks its row until tx ends.
// It returns sql.ErrNoRows when the account does not exist.
func (r *AccountRepository) GetAccountForUpdate(ctx context.Context, tx *sql.Tx, accountID int) (*model.Account, error) {
	log := logger.Log.WithField("account_id", accountID)
	log.Debug("Executing query to get account for update")

	account := &model.Account{}
	query := `SELECT id, user_id, account_number, account_type, balance, created_at FROM accounts WHERE id = $1 FOR UPDATE`
	err := tx.QueryRowContext(ctx, query, accountID).
		Scan(&account.ID, &account.UserID, &account.AccountNumber, &account.AccountType, &account.Balance, &account.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Info("Account not found for update")
		} else {
			log.WithError(err).Error("Failed to execute get account for update query")
		}
		return nil, err
	}
	return account, nil
}

// AdjustBalance adds delta (negative to debit) to the account balance.
func (r *AccountRepository) AdjustBalance(ctx context.Context, tx *sql.Tx, accountID int, delta float64) error {
	log := logger.Log.WithFields(logrus.Fields{
		"account_id": accountID,
		"delta":      delta,
	})
	log.Debug("Executing query to adjust account balance")

	query := `UPDATE accounts SET balance = balance + $1 WHERE id = $2`
	if _, err := tx.ExecContext(ctx, query, delta, accountID); err != nil {
		log.WithError(err).Error("Failed to execute adjust account balance query")
		return err
	}
	return nil
}

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"simple-bank-api/logger"
	"simple-bank-api/model"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// ITransactionRepository defines the contract for transaction database operations.
type ITransactionRepository interface {
	CreateTransaction(ctx context.Context, tx *sql.Tx, transaction *model.Transaction) error
	ListTransactionsForUser(ctx context.Context, userID int, filter model.TransactionFilter) ([]*model.Transaction, int, error)
}

// TransactionRepository implements ITransactionRepository.
type TransactionRepository struct {
	DB *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{DB: db}
}

// CreateTransaction appends a ledger entry inside tx and fills in its id and timestamp.
func (r *TransactionRepository) CreateTransaction(ctx context.Context, tx *sql.Tx, transaction *model.Transaction) error {
	log := logger.Log.WithFields(logrus.Fields{
		"account_id":       transaction.AccountID,
		"amount":           transaction.Amount,
		"transaction_type": transaction.TransactionType,
	})
	log.Info("Executing query to create a new transaction")

	query := `INSERT INTO transactions (account_id, amount, transaction_type) VALUES ($1, $2, $3) RETURNING id, timestamp`
	err := tx.QueryRowContext(ctx, query, transaction.AccountID, transaction.Amount, transaction.TransactionType).
		Scan(&transaction.ID, &transaction.Timestamp)
	if err != nil {
		log.WithError(err).Error("Failed to execute create transaction query")
		return err
	}
	return nil
}

// ListTransactionsForUser returns one page of transactions recorded against any
// account owned by userID, newest first, together with the total number of
// matching rows. filter.Page and filter.PerPage must already be positive.
func (r *TransactionRepository) ListTransactionsForUser(ctx context.Context, userID int, filter model.TransactionFilter) ([]*model.Transaction, int, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"user_id":  userID,
		"page":     filter.Page,
		"per_page": filter.PerPage,
	})
	log.Info("Executing query to list transactions for user")

	var where strings.Builder
	where.WriteString(` FROM transactions t JOIN accounts a ON a.id = t.account_id WHERE a.user_id = $1`)
	args := []interface{}{userID}

	if filter.Amount != 0 {
		args = append(args, filter.Amount)
		fmt.Fprintf(&where, ` AND t.amount = $%d`, len(args))
	}
	if filter.Date != nil {
		day := filter.Date.UTC().Truncate(24 * time.Hour)
		args = append(args, day, day.Add(24*time.Hour))
		fmt.Fprintf(&where, ` AND t.timestamp >= $%d AND t.timestamp < $%d`, len(args)-1, len(args))
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*)`+where.String(), args...).Scan(&total); err != nil {
		log.WithError(err).Error("Failed to count transactions for user")
		return nil, 0, fmt.Errorf("count transactions: %w", err)
	}

	pageArgs := append(args, filter.PerPage, filter.Offset())
	query := `SELECT t.id, t.account_id, t.amount, t.transaction_type, t.timestamp` + where.String() +
		fmt.Sprintf(` ORDER BY t.timestamp DESC, t.id DESC LIMIT $%d OFFSET $%d`, len(pageArgs)-1, len(pageArgs))

	rows, err := r.DB.QueryContext(ctx, query, pageArgs...)
	if err != nil {
		log.WithError(err).Error("Failed to execute query for transactions by user")
		return nil, 0, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	transactions := []*model.Transaction{}
	for rows.Next() {
		var t model.Transaction
		if err := rows.Scan(&t.ID, &t.AccountID, &t.Amount, &t.TransactionType, &t.Timestamp); err != nil {
			log.WithError(err).Error("Failed to scan transaction row")
			return nil, 0, err
		}
		transactions = append(transactions, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return transactions, total, nil
}

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"simple-bank-api/logger"
	"simple-bank-api/metrics"
	"simple-bank-api/model"
	"simple-bank-api/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrAccountNotFound     = errors.New("account(s) not found")
	ErrSameAccountTransfer = errors.New("cannot transfer money to the same account")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrInvalidAmount       = errors.New("transfer amount must be greater than zero")
)

const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// feeStep is the amount per which one unit of fee is charged.
var feeStep = decimal.NewFromInt(200)

// TransferFee returns the fee charged on a transfer: floor(amount / 200).
func TransferFee(amount decimal.Decimal) decimal.Decimal {
	return amount.Div(feeStep).Floor()
}

type TransactionService struct {
	db              *sql.DB
	accountRepo     repository.IAccountRepository
	transactionRepo repository.ITransactionRepository
	users           UserChecker
}

func NewTransactionService(db *sql.DB, accountRepo repository.IAccountRepository, transactionRepo repository.ITransactionRepository, users UserChecker) *TransactionService {
	return &TransactionService{
		db:              db,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		users:           users,
	}
}

// TransferMoney moves req.Amount from an account owned by userID to any other
// account. The source is debited amount + fee, the destination is credited
// amount, and a single transaction is recorded against the source.
//
// Funds are checked against the amount alone, so the source balance may end
// up negative by at most the fee.
func (s *TransactionService) TransferMoney(ctx context.Context, userID int, req model.TransferRequest) (*model.TransferResult, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"from_account_id": req.FromAccountID,
		"to_account_id":   req.ToAccountID,
		"amount":          req.Amount,
		"user_id":         userID,
	})

	log.Info("Starting money transfer process")

	result, err := s.transfer(ctx, userID, req)
	switch {
	case err == nil:
		metrics.TransfersTotal.WithLabelValues(metrics.TransferCompleted).Inc()
		metrics.TransferFeesTotal.Add(result.TransactionFee)
		log.WithField("fee", result.TransactionFee).Info("Transfer completed successfully")
	case isTransferRejection(err):
		metrics.TransfersTotal.WithLabelValues(metrics.TransferRejected).Inc()
		log.WithError(err).Info("Transfer rejected")
	default:
		metrics.TransfersTotal.WithLabelValues(metrics.TransferFailed).Inc()
		log.WithError(err).Error("Transfer failed")
	}
	return result, err
}

func isTransferRejection(err error) bool {
	return errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrSameAccountTransfer) ||
		errors.Is(err, ErrInsufficientFunds) ||
		errors.Is(err, ErrInvalidAmount)
}

func (s *TransactionService) transfer(ctx context.Context, userID int, req model.TransferRequest) (*model.TransferResult, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if req.FromAccountID == req.ToAccountID {
		return nil, ErrSameAccountTransfer
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	fromAccount, toAccount, err := s.lockAccounts(ctx, tx, req.FromAccountID, req.ToAccountID)
	if err != nil {
		return nil, err
	}

	if fromAccount.UserID != userID {
		return nil, ErrAccountNotFound
	}
	if fromAccount.Balance < req.Amount {
		return nil, ErrInsufficientFunds
	}

	amount := decimal.NewFromFloat(req.Amount)
	fee := TransferFee(amount)
	totalDeduction := amount.Add(fee)

	if err := s.accountRepo.AdjustBalance(ctx, tx, fromAccount.ID, totalDeduction.Neg().InexactFloat64()); err != nil {
		return nil, fmt.Errorf("could not update sender balance: %w", err)
	}
	if err := s.accountRepo.AdjustBalance(ctx, tx, toAccount.ID, req.Amount); err != nil {
		return nil, fmt.Errorf("could not update receiver balance: %w", err)
	}

	transaction := &model.Transaction{
		AccountID:       fromAccount.ID,
		Amount:          req.Amount,
		TransactionType: model.TransactionTypeTransfer,
	}
	if err := s.transactionRepo.CreateTransaction(ctx, tx, transaction); err != nil {
		return nil, fmt.Errorf("could not create transaction record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("could not commit transaction: %w", err)
	}

	return &model.TransferResult{
		Message:        fmt.Sprintf("Transferred %s successfully.", amount.String()),
		TransactionFee: fee.InexactFloat64(),
	}, nil
}

// lockAccounts locks both rows in ascending id order so that concurrent
// transfers in opposite directions cannot deadlock.
func (s *TransactionService) lockAccounts(ctx context.Context, tx *sql.Tx, fromID, toID int) (*model.Account, *model.Account, error) {
	firstID, secondID := fromID, toID
	if firstID > secondID {
		firstID, secondID = secondID, firstID
	}

	first, err := s.accountRepo.GetAccountForUpdate(ctx, tx, firstID)
	if err != nil {
		return nil, nil, accountLookupError(err)
	}
	second, err := s.accountRepo.GetAccountForUpdate(ctx, tx, secondID)
	if err != nil {
		return nil, nil, accountLookupError(err)
	}

	if first.ID == fromID {
		return first, second, nil
	}
	return second, first, nil
}

func accountLookupError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrAccountNotFound
	}
	return err
}

// ListTransactions returns a page of the user's transaction history. Page and
// per-page values below one fall back to their defaults.
func (s *TransactionService) ListTransactions(ctx context.Context, userID int, filter model.TransactionFilter) (*model.TransactionPage, error) {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	if filter.Page < 1 {
		filter.Page = DefaultPage
	}
	if filter.PerPage < 1 {
		filter.PerPage = DefaultPerPage
	}
	if filter.PerPage > MaxPerPage {
		filter.PerPage = MaxPerPage
	}

	transactions, total, err := s.transactionRepo.ListTransactionsForUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	pages := total / filter.PerPage
	if total%filter.PerPage != 0 {
		pages++
	}

	return &model.TransactionPage{
		Transactions: transactions,
		Total:        total,
		Page:         filter.Page,
		Pages:        pages,
	}, nil
}

// file: service/account_service.go

package service

import (
	"context"
	"errors"
	"simple-bank-api/logger"
	"simple-bank-api/model"
	"simple-bank-api/repository"

	"github.com/sirupsen/logrus"
)

var ErrAccountNumberExists = errors.New("account number already exists")

// UserChecker reports whether a user exists.
type UserChecker interface {
	Exists(ctx context.Context, userID int) (bool, error)
}

type AccountService struct {
	repo  repository.IAccountRepository
	users UserChecker
}

func NewAccountService(repo repository.IAccountRepository, users UserChecker) *AccountService {
	return &AccountService{
		repo:  repo,
		users: users,
	}
}

// CreateNewAccount opens an account for userID with the requested number,
// type and opening balance.
func (s *AccountService) CreateNewAccount(ctx context.Context, userID int, req model.CreateAccountRequest) (*model.Account, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"user_id":        userID,
		"account_number": req.AccountNumber,
	})

	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	taken, err := s.repo.AccountNumberExists(ctx, req.AccountNumber)
	if err != nil {
		return nil, err
	}
	if taken {
		log.Info("Account creation rejected, number already in use")
		return nil, ErrAccountNumberExists
	}

	account := &model.Account{
		UserID:        userID,
		AccountNumber: req.AccountNumber,
		AccountType:   req.AccountType,
		Balance:       req.Balance,
	}
	if err := s.repo.CreateAccount(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAccountNumberExists
		}
		return nil, err
	}

	log.WithField("account_id", account.ID).Info("Account created")
	return account, nil
}

// file: model/request.go

package model

// RegisterRequest defines the payload for creating a new user.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email,max=120"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest defines the payload for user authentication.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateAccountRequest defines the payload for opening a bank account.
// Balance is optional and defaults to zero.
type CreateAccountRequest struct {
	AccountNumber string  `json:"account_number" validate:"required,max=20"`
	AccountType   string  `json:"account_type" validate:"required,max=50"`
	Balance       float64 `json:"balance" validate:"gte=0"`
}

// TransferRequest defines the payload for moving money between two accounts.
type TransferRequest struct {
	FromAccountID int     `json:"from_account_id" validate:"required"`
	ToAccountID   int     `json:"to_account_id" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
}

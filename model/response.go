package model

// MessageResponse is the body of simple acknowledgement responses.
type MessageResponse struct {
	Message string `json:"message"`
}

type LoginResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
}

type CreateAccountResponse struct {
	Message string   `json:"message"`
	Account *Account `json:"account"`
}

// TransferResult is returned by a successful transfer.
type TransferResult struct {
	Message        string  `json:"message"`
	TransactionFee float64 `json:"transaction_fee"`
}

// TransactionView is a transaction as rendered in the history endpoint.
type TransactionView struct {
	ID        int     `json:"id"`
	AccountID int     `json:"account_id"`
	Amount    float64 `json:"amount"`
	Type      string  `json:"type"`
	Timestamp string  `json:"timestamp"`
}

type TransactionHistoryResponse struct {
	Transactions []TransactionView `json:"transactions"`
	Total        int               `json:"total"`
	Page         int               `json:"page"`
	Pages        int               `json:"pages"`
}

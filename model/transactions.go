package model

import (
	"math"
	"time"
)

const TransactionTypeTransfer = "transfer"

// Transaction is a ledger entry. Amount never includes the transfer fee.
type Transaction struct {
	ID              int       `json:"id"`
	AccountID       int       `json:"account_id"`
	Amount          float64   `json:"amount"`
	TransactionType string    `json:"type"`
	Timestamp       time.Time `json:"timestamp"`
}

// TransactionFilter narrows a user's transaction history.
type TransactionFilter struct {
	Page    int
	PerPage int
	// Amount matches exactly; zero disables the filter.
	Amount float64
	// Date selects one UTC calendar day; nil disables the filter.
	Date *time.Time
}

// Offset is the number of rows skipped before the requested page. It
// saturates at math.MaxInt so a page far past the end yields no rows.
func (f TransactionFilter) Offset() int {
	if f.Page <= 1 || f.PerPage <= 0 {
		return 0
	}
	if f.Page-1 > math.MaxInt/f.PerPage {
		return math.MaxInt
	}
	return (f.Page - 1) * f.PerPage
}

// TransactionPage is one page of a user's transaction history.
type TransactionPage struct {
	Transactions []*Transaction
	Total        int
	Page         int
	Pages        int
}

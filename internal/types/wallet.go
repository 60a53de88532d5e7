package types

import (
	"time"

	"github.com/google/uuid"
)

// WalletBalance is the current points and cash balance of the signed-in user.
type WalletBalance struct {
	Points     int     `json:"points"`
	CashAmount float64 `json:"cash_amount"`
	Currency   string  `json:"currency"`
}

// TransactionKind distinguishes credits from debits in the point history.
type TransactionKind string

const (
	TransactionCredit TransactionKind = "credit"
	TransactionDebit  TransactionKind = "debit"
)

// PointTransaction is one entry of the wallet's point history.
type PointTransaction struct {
	ID          uuid.UUID       `json:"id"`
	Kind        TransactionKind `json:"kind"`
	Points      int             `json:"points"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

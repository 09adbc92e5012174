package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType tells earnings and withdrawals apart
type TransactionType string

const (
	TypeEarning    TransactionType = "earning"    // Coins credited for a completed activity
	TypeWithdrawal TransactionType = "withdrawal" // Currency paid out to a payment method
)

// Status of a transaction
type Status string

const (
	StatusCompleted Status = "completed"
	StatusPending   Status = "pending"
	StatusFailed    Status = "failed"
)

// Transaction is one ledger row. Amount is in coins for earnings and in
// currency units for withdrawals; Coins is always the signed balance effect.
type Transaction struct {
	ID          string            `json:"id"`
	Type        TransactionType   `json:"type"`
	Amount      decimal.Decimal   `json:"amount"`
	Coins       int64             `json:"coins"`
	Method      PaymentMethodType `json:"method,omitempty"`
	Details     string            `json:"details,omitempty"`
	Status      Status            `json:"status"`
	Date        time.Time         `json:"date"`
	Description string            `json:"description"`
}

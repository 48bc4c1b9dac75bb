package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind represents the direction of a ledger entry
type TransactionKind string

// Transaction kinds
const (
	Deposit    TransactionKind = "DEPOSIT"
	Withdrawal TransactionKind = "WITHDRAWAL"
)

// Label returns the human readable name used in descriptions
func (k TransactionKind) Label() string {
	switch k {
	case Deposit:
		return "Deposit"
	case Withdrawal:
		return "Withdrawal"
	}
	return string(k)
}

// Transaction represents one ledger entry of an account
type Transaction struct {
	ID          uuid.UUID
	Time        time.Time
	Kind        TransactionKind
	Amount      decimal.Decimal
	Description string
}

// NewTransaction builds a ledger entry whose description is "<Label>: <amount to 2 decimals>"
func NewTransaction(kind TransactionKind, amount decimal.Decimal, at time.Time) Transaction {
	return Transaction{
		ID:          uuid.New(),
		Time:        at,
		Kind:        kind,
		Amount:      amount,
		Description: fmt.Sprintf("%s: %s", kind.Label(), amount.StringFixed(2)),
	}
}

// Amount bounds. Anything larger cannot be a real balance and would be costly to render.
const (
	MaxAmountIntegerDigits = 15
	MaxAmountScale         = 8
)

// IsAmountInRange reports whether amount has at most MaxAmountIntegerDigits integer digits
// and at most MaxAmountScale decimal places as written. It never rescales amount.
func IsAmountInRange(amount decimal.Decimal) bool {
	exp := int64(amount.Exponent())
	if exp < -MaxAmountScale {
		return false
	}
	return int64(amount.NumDigits())+exp <= MaxAmountIntegerDigits
}

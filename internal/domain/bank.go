package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountRegistry defines the interface for registering and locating accounts
type AccountRegistry interface {
	Register(reg Registration) (*Account, error)
	CheckNationalID(nationalID string) error
	LookupByNationalID(nationalID string) (*Account, error)
	Snapshot() ([]Account, error)
}

// TransactionLedger defines the interface for mutating an account's balance
type TransactionLedger interface {
	Deposit(account *Account, amount decimal.Decimal, now time.Time) (Transaction, error)
	Withdraw(account *Account, amount decimal.Decimal, now time.Time) (Transaction, error)
}

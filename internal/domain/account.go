package domain

import "github.com/shopspring/decimal"

// DefaultTransactionLimit is how many ledger entries an account may hold during a session.
// There is no day boundary: the count is never reset while the process runs.
const DefaultTransactionLimit = 10

// Account represents a registered holder together with their balance and ledger
type Account struct {
	FullName      string
	NationalID    string
	BranchCode    string
	AccountNumber string
	Balance       decimal.Decimal
	Transactions  []Transaction // Insertion order is chronological order
}

// NewAccount creates an Account with a zero balance and an empty ledger
func NewAccount(reg Registration) *Account {
	return &Account{
		FullName:      reg.FullName,
		NationalID:    reg.NationalID,
		BranchCode:    reg.BranchCode,
		AccountNumber: reg.AccountNumber,
		Balance:       decimal.Zero,
		Transactions:  make([]Transaction, 0, DefaultTransactionLimit),
	}
}

// TransactionCount returns the number of recorded ledger entries
func (a *Account) TransactionCount() int {
	return len(a.Transactions)
}

// HasReachedLimit reports whether another ledger entry would exceed limit
func (a *Account) HasReachedLimit(limit int) bool {
	return len(a.Transactions) >= limit
}

// Key returns the compound branch/account number key
func (a *Account) Key() AccountKey {
	return AccountKey{BranchCode: a.BranchCode, AccountNumber: a.AccountNumber}
}

// AccountKey is unique across all registered accounts
type AccountKey struct {
	BranchCode    string
	AccountNumber string
}

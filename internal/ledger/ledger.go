package ledger

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tirasundara/banking-session/internal/domain"
)

// Ledger applies deposits and withdrawals to a single account.
// An operation either fully succeeds or leaves the account untouched.
type Ledger struct {
	limit          int
	depositGuards  []Guard
	withdrawGuards []Guard
}

// NewLedger creates a Ledger capping each account at limit entries.
// A non-positive limit falls back to domain.DefaultTransactionLimit.
func NewLedger(limit int) *Ledger {
	if limit <= 0 {
		limit = domain.DefaultTransactionLimit
	}

	// Order decides which error wins when several apply
	return &Ledger{
		limit: limit,
		depositGuards: []Guard{
			NewPositiveAmountGuard(),
			NewAmountRangeGuard(),
			NewTransactionLimitGuard(limit),
		},
		withdrawGuards: []Guard{
			NewPositiveAmountGuard(),
			NewAmountRangeGuard(),
			NewTransactionLimitGuard(limit),
			NewSufficientBalanceGuard(),
		},
	}
}

func (l *Ledger) Limit() int {
	return l.limit
}

// Deposit adds amount to the balance and records a "Deposit: <amount>" entry at now
func (l *Ledger) Deposit(account *domain.Account, amount decimal.Decimal, now time.Time) (domain.Transaction, error) {
	if account == nil {
		return domain.Transaction{}, domain.ErrNotFound
	}

	if err := checkAll(l.depositGuards, account, amount); err != nil {
		return domain.Transaction{}, err
	}

	txn := domain.NewTransaction(domain.Deposit, amount, now)
	account.Balance = account.Balance.Add(amount)
	account.Transactions = append(account.Transactions, txn)

	return txn, nil
}

// Withdraw subtracts amount from the balance and records a "Withdrawal: <amount>" entry at now
func (l *Ledger) Withdraw(account *domain.Account, amount decimal.Decimal, now time.Time) (domain.Transaction, error) {
	if account == nil {
		return domain.Transaction{}, domain.ErrNotFound
	}

	if err := checkAll(l.withdrawGuards, account, amount); err != nil {
		return domain.Transaction{}, err
	}

	txn := domain.NewTransaction(domain.Withdrawal, amount, now)
	account.Balance = account.Balance.Sub(amount)
	account.Transactions = append(account.Transactions, txn)

	return txn, nil
}

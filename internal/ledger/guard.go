package ledger

import (
	"github.com/shopspring/decimal"
	"github.com/tirasundara/banking-session/internal/domain"
)

// Guard checks one precondition of a ledger operation. A non-nil error rejects the operation.
type Guard interface {
	Check(account *domain.Account, amount decimal.Decimal) error
}

// PositiveAmountGuard rejects zero and negative amounts
type PositiveAmountGuard struct{}

// NewPositiveAmountGuard creates a new PositiveAmountGuard
func NewPositiveAmountGuard() *PositiveAmountGuard {
	return &PositiveAmountGuard{}
}

// Check implements the Guard interface
func (g *PositiveAmountGuard) Check(_ *domain.Account, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domain.ErrInvalidAmount
	}
	return nil
}

// AmountRangeGuard rejects amounts outside the bounds of domain.IsAmountInRange
type AmountRangeGuard struct{}

// NewAmountRangeGuard creates a new AmountRangeGuard
func NewAmountRangeGuard() *AmountRangeGuard {
	return &AmountRangeGuard{}
}

// Check implements the Guard interface
func (g *AmountRangeGuard) Check(_ *domain.Account, amount decimal.Decimal) error {
	if !domain.IsAmountInRange(amount) {
		return domain.ErrInvalidAmount
	}
	return nil
}

// TransactionLimitGuard rejects operations once the account holds Limit entries
type TransactionLimitGuard struct {
	Limit int
}

// NewTransactionLimitGuard creates a new TransactionLimitGuard with the given limit
func NewTransactionLimitGuard(limit int) *TransactionLimitGuard {
	return &TransactionLimitGuard{
		Limit: limit,
	}
}

// Check implements the Guard interface
func (g *TransactionLimitGuard) Check(account *domain.Account, _ decimal.Decimal) error {
	if account.HasReachedLimit(g.Limit) {
		return domain.ErrDailyLimitReached
	}
	return nil
}

// SufficientBalanceGuard rejects amounts greater than the current balance
type SufficientBalanceGuard struct{}

// NewSufficientBalanceGuard creates a new SufficientBalanceGuard
func NewSufficientBalanceGuard() *SufficientBalanceGuard {
	return &SufficientBalanceGuard{}
}

// Check implements the Guard interface
func (g *SufficientBalanceGuard) Check(account *domain.Account, amount decimal.Decimal) error {
	if amount.GreaterThan(account.Balance) {
		return domain.ErrInsufficientBalance
	}
	return nil
}

// checkAll runs guards in order and returns the first failure
func checkAll(guards []Guard, account *domain.Account, amount decimal.Decimal) error {
	for _, guard := range guards {
		if err := guard.Check(account, amount); err != nil {
			return err
		}
	}
	return nil
}

package ledger_test

import (
	"testing"

	"github.com/tirasundara/banking-session/internal/domain"
	"github.com/tirasundara/banking-session/internal/ledger"
)

func TestPositiveAmountGuard(t *testing.T) {
	guard := ledger.NewPositiveAmountGuard()

	if err := guard.Check(nil, amount("0.01")); err != nil {
		t.Errorf("Expected 0.01 to pass, got %v", err)
	}

	if err := guard.Check(nil, amount("0")); err != domain.ErrInvalidAmount {
		t.Errorf("Expected ErrInvalidAmount for zero, got %v", err)
	}
}

func TestAmountRangeGuard(t *testing.T) {
	guard := ledger.NewAmountRangeGuard()

	if err := guard.Check(nil, amount("999999999999999.99")); err != nil {
		t.Errorf("Expected the largest amount to pass, got %v", err)
	}

	for _, s := range []string{"1e50000000", "1e-50000000", "0.000000001"} {
		if err := guard.Check(nil, amount(s)); err != domain.ErrInvalidAmount {
			t.Errorf("Expected ErrInvalidAmount for %s, got %v", s, err)
		}
	}
}

func TestTransactionLimitGuard(t *testing.T) {
	guard := ledger.NewTransactionLimitGuard(2)
	acc := newAccount()

	if err := guard.Check(acc, amount("1")); err != nil {
		t.Errorf("Expected empty account to pass, got %v", err)
	}

	acc.Transactions = append(acc.Transactions, domain.Transaction{}, domain.Transaction{})

	if err := guard.Check(acc, amount("1")); err != domain.ErrDailyLimitReached {
		t.Errorf("Expected ErrDailyLimitReached, got %v", err)
	}
}

func TestSufficientBalanceGuard(t *testing.T) {
	guard := ledger.NewSufficientBalanceGuard()
	acc := newAccount()
	acc.Balance = amount("100")

	if err := guard.Check(acc, amount("100")); err != nil {
		t.Errorf("Expected exact balance to pass, got %v", err)
	}

	if err := guard.Check(acc, amount("100.01")); err != domain.ErrInsufficientBalance {
		t.Errorf("Expected ErrInsufficientBalance, got %v", err)
	}
}

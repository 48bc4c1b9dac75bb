package ledger_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tirasundara/banking-session/internal/domain"
	"github.com/tirasundara/banking-session/internal/ledger"
)

func newAccount() *domain.Account {
	return domain.NewAccount(domain.Registration{
		FullName:      "Ana Silva",
		NationalID:    "12345678901",
		BranchCode:    "0001",
		AccountNumber: "000123",
	})
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestLedger_DepositFreshAccount(t *testing.T) {
	l := ledger.NewLedger(domain.DefaultTransactionLimit)
	acc := newAccount()
	now := parseTime(t, "2025-01-15T14:30:00")

	txn, err := l.Deposit(acc, amount("100.00"), now)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !acc.Balance.Equal(amount("100")) {
		t.Errorf("Expected balance to be 100.00, got %s", acc.Balance)
	}

	if acc.TransactionCount() != 1 {
		t.Errorf("Expected 1 transaction, got %d", acc.TransactionCount())
	}

	if txn.Description != "Deposit: 100.00" {
		t.Errorf("Expected description 'Deposit: 100.00', got '%s'", txn.Description)
	}

	if !acc.Transactions[0].Time.Equal(now) {
		t.Errorf("Expected transaction time %v, got %v", now, acc.Transactions[0].Time)
	}
}

func TestLedger_DepositInvalidAmount(t *testing.T) {
	l := ledger.NewLedger(domain.DefaultTransactionLimit)
	acc := newAccount()

	for _, a := range []string{"-5.00", "0.00", "0"} {
		_, err := l.Deposit(acc, amount(a), time.Now())
		if !errors.Is(err, domain.ErrInvalidAmount) {
			t.Errorf("Deposit(%s): expected ErrInvalidAmount, got %v", a, err)
		}
	}

	if !acc.Balance.IsZero() {
		t.Errorf("Expected balance to stay zero, got %s", acc.Balance)
	}

	if acc.TransactionCount() != 0 {
		t.Errorf("Expected no transactions, got %d", acc.TransactionCount())
	}
}

func TestLedger_WithdrawInsufficientBalance(t *testing.T) {
	l := ledger.NewLedger(domain.DefaultTransactionLimit)
	acc := newAccount()

	if _, err := l.Deposit(acc, amount("100.00"), time.Now()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	_, err := l.Withdraw(acc, amount("150.00"), time.Now())
	if !errors.Is(err, domain.ErrInsufficientBalance) {
		t.Errorf("Expected ErrInsufficientBalance, got %v", err)
	}

	if !acc.Balance.Equal(amount("100")) {
		t.Errorf("Expected balance to stay 100.00, got %s", acc.Balance)
	}

	if acc.TransactionCount() != 1 {
		t.Errorf("Expected 1 transaction, got %d", acc.TransactionCount())
	}
}

func TestLedger_WithdrawWholeBalance(t *testing.T) {
	l := ledger.NewLedger(domain.DefaultTransactionLimit)
	acc := newAccount()

	_, _ = l.Deposit(acc, amount("75.25"), time.Now())

	txn, err := l.Withdraw(acc, amount("75.25"), time.Now())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !acc.Balance.IsZero() {
		t.Errorf("Expected zero balance, got %s", acc.Balance)
	}

	if txn.Description != "Withdrawal: 75.25" {
		t.Errorf("Expected description 'Withdrawal: 75.25', got '%s'", txn.Description)
	}
}

func TestLedger_TransactionLimit(t *testing.T) {
	l := ledger.NewLedger(domain.DefaultTransactionLimit)
	acc := newAccount()

	// 10 successful operations, alternating kinds
	for i := 0; i < domain.DefaultTransactionLimit; i++ {
		var err error
		if i%2 == 0 {
			_, err = l.Deposit(acc, amount("10"), time.Now())
		} else {
			_, err = l.Withdraw(acc, amount("5"), time.Now())
		}
		if err != nil {
			t.Fatalf("Operation %d: unexpected error: %v", i+1, err)
		}
	}

	balance := acc.Balance

	if _, err := l.Deposit(acc, amount("1"), time.Now()); !errors.Is(err, domain.ErrDailyLimitReached) {
		t.Errorf("Expected ErrDailyLimitReached on 11th deposit, got %v", err)
	}

	if _, err := l.Withdraw(acc, amount("1"), time.Now()); !errors.Is(err, domain.ErrDailyLimitReached) {
		t.Errorf("Expected ErrDailyLimitReached on 11th withdrawal, got %v", err)
	}

	if !acc.Balance.Equal(balance) {
		t.Errorf("Expected balance to stay %s, got %s", balance, acc.Balance)
	}

	if acc.TransactionCount() != domain.DefaultTransactionLimit {
		t.Errorf("Expected %d transactions, got %d", domain.DefaultTransactionLimit, acc.TransactionCount())
	}
}

func TestLedger_CheckOrder(t *testing.T) {
	l := ledger.NewLedger(1)
	acc := newAccount()

	if _, err := l.Deposit(acc, amount("10"), time.Now()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// At the limit with a negative amount: amount check wins
	if _, err := l.Withdraw(acc, amount("-1"), time.Now()); !errors.Is(err, domain.ErrInvalidAmount) {
		t.Errorf("Expected ErrInvalidAmount, got %v", err)
	}

	// At the limit and over balance: limit check wins
	if _, err := l.Withdraw(acc, amount("1000"), time.Now()); !errors.Is(err, domain.ErrDailyLimitReached) {
		t.Errorf("Expected ErrDailyLimitReached, got %v", err)
	}

	// Below the limit, negative and over balance: amount check wins
	fresh := newAccount()
	if _, err := l.Withdraw(fresh, amount("-1000"), time.Now()); !errors.Is(err, domain.ErrInvalidAmount) {
		t.Errorf("Expected ErrInvalidAmount, got %v", err)
	}
}

func TestLedger_HugeAmountRejected(t *testing.T) {
	l := ledger.NewLedger(domain.DefaultTransactionLimit)
	acc := newAccount()

	if _, err := l.Deposit(acc, amount("1e50000000"), time.Now()); !errors.Is(err, domain.ErrInvalidAmount) {
		t.Errorf("Expected ErrInvalidAmount on deposit, got %v", err)
	}

	if _, err := l.Withdraw(acc, amount("1e50000000"), time.Now()); !errors.Is(err, domain.ErrInvalidAmount) {
		t.Errorf("Expected ErrInvalidAmount on withdrawal, got %v", err)
	}

	if !acc.Balance.IsZero() || acc.TransactionCount() != 0 {
		t.Errorf("Expected account untouched, got balance %s and %d entries", acc.Balance, acc.TransactionCount())
	}
}

func TestLedger_DefaultLimit(t *testing.T) {
	l := ledger.NewLedger(0)

	if l.Limit() != domain.DefaultTransactionLimit {
		t.Errorf("Expected limit %d, got %d", domain.DefaultTransactionLimit, l.Limit())
	}
}

func TestLedger_NilAccount(t *testing.T) {
	l := ledger.NewLedger(0)

	if _, err := l.Deposit(nil, amount("1"), time.Now()); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

// Helper function to parse time strings
func parseTime(t *testing.T, timeStr string) time.Time {
	result, err := time.Parse("2006-01-02T15:04:05", timeStr)
	if err != nil {
		t.Fatalf("Failed to parse time string '%s': %v", timeStr, err)
	}

	return result
}

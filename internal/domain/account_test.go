package domain_test

import (
	"testing"

	"github.com/tirasundara/banking-session/internal/domain"
)

func TestNewAccount(t *testing.T) {
	acc := domain.NewAccount(domain.Registration{
		FullName:      "Ana Silva",
		NationalID:    "12345678901",
		BranchCode:    "0001",
		AccountNumber: "000123",
	})

	if acc.FullName != "Ana Silva" {
		t.Errorf("Expected FullName to be 'Ana Silva', got '%s'", acc.FullName)
	}

	if acc.NationalID != "12345678901" {
		t.Errorf("Expected NationalID to be '12345678901', got '%s'", acc.NationalID)
	}

	if !acc.Balance.IsZero() {
		t.Errorf("Expected a zero balance, got %s", acc.Balance)
	}

	if acc.TransactionCount() != 0 {
		t.Errorf("Expected no transactions, got %d", acc.TransactionCount())
	}

	key := acc.Key()
	if key.BranchCode != "0001" || key.AccountNumber != "000123" {
		t.Errorf("Expected key 0001/000123, got %s/%s", key.BranchCode, key.AccountNumber)
	}
}

func TestAccount_HasReachedLimit(t *testing.T) {
	acc := domain.NewAccount(domain.Registration{NationalID: "12345678901"})

	if acc.HasReachedLimit(domain.DefaultTransactionLimit) {
		t.Errorf("Expected a fresh account to be below the limit")
	}

	for i := 0; i < domain.DefaultTransactionLimit; i++ {
		acc.Transactions = append(acc.Transactions, domain.Transaction{})
	}

	if !acc.HasReachedLimit(domain.DefaultTransactionLimit) {
		t.Errorf("Expected account with %d transactions to be at the limit", domain.DefaultTransactionLimit)
	}
}

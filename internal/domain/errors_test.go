package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/tirasundara/banking-session/internal/domain"
)

func TestValidationError(t *testing.T) {
	err := fmt.Errorf("registering: %w", &domain.ValidationError{Reason: domain.ErrDuplicateNationalID})

	if !errors.Is(err, domain.ErrValidationFailed) {
		t.Errorf("Expected error to match ErrValidationFailed")
	}

	if !errors.Is(err, domain.ErrDuplicateNationalID) {
		t.Errorf("Expected error to match ErrDuplicateNationalID")
	}

	if errors.Is(err, domain.ErrInvalidNationalID) {
		t.Errorf("Expected error not to match ErrInvalidNationalID")
	}

	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("Expected error to unwrap to *ValidationError")
	}

	if vErr.Reason != domain.ErrDuplicateNationalID {
		t.Errorf("Expected reason to be %v, got %v", domain.ErrDuplicateNationalID, vErr.Reason)
	}
}

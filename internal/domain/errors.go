package domain

import (
	"errors"
	"fmt"
)

// ErrValidationFailed matches every *ValidationError returned by registration
var ErrValidationFailed = errors.New("validation failed")

// Registration failure reasons
var (
	ErrInvalidNationalID      = errors.New("national id must be exactly 11 digits")
	ErrDuplicateNationalID    = errors.New("national id already registered")
	ErrInvalidAccountNumber   = errors.New("account number must be exactly 6 digits")
	ErrDuplicateAccountNumber = errors.New("account number already exists in this branch")
)

// Lookup and ledger errors
var (
	ErrNotFound            = errors.New("account not found")
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
	ErrDailyLimitReached   = errors.New("transaction limit reached")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// ValidationError is returned when a registration is rejected.
// Reason is one of the registration failure reasons above.
type ValidationError struct {
	Reason error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", ErrValidationFailed, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Reason
}

// Is lets errors.Is(err, ErrValidationFailed) match any ValidationError
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

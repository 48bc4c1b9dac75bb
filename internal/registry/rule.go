package registry

import "github.com/tirasundara/banking-session/internal/domain"

// RegistrationRule checks one aspect of a registration against the accounts already registered.
// A non-nil error is the failure reason.
type RegistrationRule interface {
	Check(reg domain.Registration, existing []*domain.Account) error
}

// NationalIDRule rejects malformed or already registered national ids
type NationalIDRule struct{}

// NewNationalIDRule creates a new NationalIDRule
func NewNationalIDRule() *NationalIDRule {
	return &NationalIDRule{}
}

// Check implements the RegistrationRule interface
func (r *NationalIDRule) Check(reg domain.Registration, existing []*domain.Account) error {
	if !IsNationalIDFormat(reg.NationalID) {
		return domain.ErrInvalidNationalID
	}

	if nationalIDTaken(reg.NationalID, existing) {
		return domain.ErrDuplicateNationalID
	}

	return nil
}

// AccountNumberRule rejects malformed account numbers and reused (branch, account number) pairs
type AccountNumberRule struct{}

// NewAccountNumberRule creates a new AccountNumberRule
func NewAccountNumberRule() *AccountNumberRule {
	return &AccountNumberRule{}
}

// Check implements the RegistrationRule interface
func (r *AccountNumberRule) Check(reg domain.Registration, existing []*domain.Account) error {
	if !IsAccountNumberFormat(reg.AccountNumber) {
		return domain.ErrInvalidAccountNumber
	}

	key := domain.AccountKey{BranchCode: reg.BranchCode, AccountNumber: reg.AccountNumber}
	if accountKeyTaken(key, existing) {
		return domain.ErrDuplicateAccountNumber
	}

	return nil
}

package registry

import (
	"github.com/go-playground/validator"
	"github.com/tirasundara/banking-session/internal/domain"
)

const (
	nationalIDTag    = "len=11,digits"
	branchCodeTag    = "len=4,digits"
	accountNumberTag = "len=6,digits"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// validator's own "numeric" accepts signs and decimal points
	if err := v.RegisterValidation("digits", isASCIIDigits); err != nil {
		panic(err)
	}

	return v
}

// isASCIIDigits accepts non-empty strings made only of '0'-'9'
func isASCIIDigits(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// IsNationalIDFormat reports whether id is exactly 11 ASCII digits
func IsNationalIDFormat(id string) bool {
	return validate.Var(id, nationalIDTag) == nil
}

// IsBranchCodeFormat reports whether code is exactly 4 ASCII digits
func IsBranchCodeFormat(code string) bool {
	return validate.Var(code, branchCodeTag) == nil
}

// IsAccountNumberFormat reports whether number is exactly 6 ASCII digits
func IsAccountNumberFormat(number string) bool {
	return validate.Var(number, accountNumberTag) == nil
}

// ValidateNationalID reports whether id is well formed and not used by any existing account
func ValidateNationalID(id string, existing []*domain.Account) bool {
	return IsNationalIDFormat(id) && !nationalIDTaken(id, existing)
}

// ValidateAccountNumber reports whether number is well formed and the (branchCode, number)
// pair is not used by any existing account
func ValidateAccountNumber(number, branchCode string, existing []*domain.Account) bool {
	return IsAccountNumberFormat(number) && !accountKeyTaken(domain.AccountKey{
		BranchCode:    branchCode,
		AccountNumber: number,
	}, existing)
}

func nationalIDTaken(id string, existing []*domain.Account) bool {
	for _, acc := range existing {
		if acc.NationalID == id {
			return true
		}
	}
	return false
}

func accountKeyTaken(key domain.AccountKey, existing []*domain.Account) bool {
	for _, acc := range existing {
		if acc.Key() == key {
			return true
		}
	}
	return false
}

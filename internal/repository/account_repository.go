package repository

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/copystructure"
	"github.com/shopspring/decimal"
	"github.com/tirasundara/banking-session/internal/domain"
)

// MemoryAccountRepository implements the AccountRepository interface on an in-process slice.
// Accounts are never removed; they live until the process exits.
type MemoryAccountRepository struct {
	accounts []*domain.Account
	copier   copystructure.Config
}

// NewMemoryAccountRepository creates an empty MemoryAccountRepository
func NewMemoryAccountRepository() *MemoryAccountRepository {
	copiers := make(map[reflect.Type]copystructure.CopierFunc, len(copystructure.Copiers)+1)
	for t, fn := range copystructure.Copiers {
		copiers[t] = fn
	}

	// decimal.Decimal is immutable, sharing its internals is safe
	copiers[reflect.TypeOf(decimal.Decimal{})] = func(v interface{}) (interface{}, error) {
		return v, nil
	}

	return &MemoryAccountRepository{
		accounts: make([]*domain.Account, 0),
		copier:   copystructure.Config{Copiers: copiers},
	}
}

func (r *MemoryAccountRepository) Append(account *domain.Account) {
	r.accounts = append(r.accounts, account)
}

// All returns a fresh slice holding the live account pointers
func (r *MemoryAccountRepository) All() []*domain.Account {
	out := make([]*domain.Account, len(r.accounts))
	copy(out, r.accounts)
	return out
}

func (r *MemoryAccountRepository) FindByNationalID(nationalID string) (*domain.Account, bool) {
	for _, acc := range r.accounts {
		if acc.NationalID == nationalID {
			return acc, true
		}
	}
	return nil, false
}

func (r *MemoryAccountRepository) Len() int {
	return len(r.accounts)
}

func (r *MemoryAccountRepository) Snapshot() ([]domain.Account, error) {
	snapshot := make([]domain.Account, 0, len(r.accounts))

	for _, acc := range r.accounts {
		cp, err := r.copier.Copy(*acc)
		if err != nil {
			return nil, fmt.Errorf("copying account %s: %w", acc.NationalID, err)
		}

		snapshot = append(snapshot, cp.(domain.Account))
	}

	return snapshot, nil
}

package registry

import (
	"fmt"
	"sync"

	"github.com/tirasundara/banking-session/internal/domain"
)

// Registry owns every registered account and enforces national id and
// (branch, account number) uniqueness
type Registry struct {
	mu    sync.Mutex
	repo  domain.AccountRepository
	rules []RegistrationRule
}

// NewRegistry creates a Registry over repo. Rules run in the given order and the
// first failure stops registration. Without rules the national id rule runs before
// the account number rule.
func NewRegistry(repo domain.AccountRepository, rules ...RegistrationRule) *Registry {
	if len(rules) == 0 {
		rules = []RegistrationRule{
			NewNationalIDRule(),
			NewAccountNumberRule(),
		}
	}

	return &Registry{
		repo:  repo,
		rules: rules,
	}
}

// Register validates reg and, when every rule passes, appends a new account with a
// zero balance. On failure nothing is stored and a *domain.ValidationError is returned.
func (r *Registry) Register(reg domain.Registration) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing := r.repo.All()
	for _, rule := range r.rules {
		if err := rule.Check(reg, existing); err != nil {
			return nil, &domain.ValidationError{Reason: err}
		}
	}

	acc := domain.NewAccount(reg)
	r.repo.Append(acc)

	return acc, nil
}

// CheckNationalID runs only the national id rule, letting a caller reject an id
// before collecting the remaining registration fields
func (r *Registry) CheckNationalID(nationalID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := NewNationalIDRule().Check(domain.Registration{NationalID: nationalID}, r.repo.All()); err != nil {
		return &domain.ValidationError{Reason: err}
	}

	return nil
}

// LookupByNationalID returns the live account registered under nationalID
func (r *Registry) LookupByNationalID(nationalID string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	acc, ok := r.repo.FindByNationalID(nationalID)
	if !ok {
		return nil, domain.ErrNotFound
	}

	return acc, nil
}

// Accounts returns the registered accounts in insertion order
func (r *Registry) Accounts() []*domain.Account {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.repo.All()
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.repo.Len()
}

// Snapshot returns detached copies of every registered account
func (r *Registry) Snapshot() ([]domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot, err := r.repo.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("taking registry snapshot: %w", err)
	}

	return snapshot, nil
}

package domain

// AccountRepository defines the interface for storing registered accounts
type AccountRepository interface {
	// Append adds an account after every existing one
	Append(account *Account)

	// All returns the registered accounts in insertion order
	All() []*Account

	// FindByNationalID returns the first account with the given national id
	FindByNationalID(nationalID string) (*Account, bool)

	// Len returns the number of registered accounts
	Len() int

	// Snapshot returns deep copies of every account, detached from the live ones
	Snapshot() ([]Account, error)
}

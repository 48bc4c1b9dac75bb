package domain

// Registration carries the raw fields collected for a new account
type Registration struct {
	FullName      string
	NationalID    string
	BranchCode    string
	AccountNumber string
}

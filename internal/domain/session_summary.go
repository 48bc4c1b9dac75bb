package domain

import "github.com/shopspring/decimal"

// SessionSummary contains totals over every account registered in a session
type SessionSummary struct {
	Accounts     int
	Transactions int
	TotalBalance decimal.Decimal
}

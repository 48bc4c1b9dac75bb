package report

import (
	"fmt"
	"strings"

	"github.com/tirasundara/banking-session/internal/domain"
)

// TextFormatter renders the console statement
type TextFormatter struct{}

func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Format implements the StatementFormatter interface for plain text
func (f *TextFormatter) Format(account *domain.Account) ([]byte, error) {
	return []byte(RenderStatement(account)), nil
}

// RenderStatement returns the statement of account: a header, one line per transaction
// in chronological order (or a notice when there are none) and the current balance.
// It never modifies account.
func RenderStatement(account *domain.Account) string {
	var b strings.Builder

	b.WriteString("=== Statement ===\n")
	fmt.Fprintf(&b, "Branch: %s | Account: %s | Holder: %s\n",
		account.BranchCode, account.AccountNumber, account.FullName)

	if len(account.Transactions) == 0 {
		b.WriteString("No transactions.\n")
	} else {
		for _, txn := range account.Transactions {
			fmt.Fprintf(&b, "%s - %s\n", txn.Time.Format(statementTimeLayout), txn.Description)
		}
	}

	fmt.Fprintf(&b, "\nCurrent balance: %s\n", account.Balance.StringFixed(2))
	b.WriteString("=================\n")

	return b.String()
}

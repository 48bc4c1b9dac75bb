package report

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tirasundara/banking-session/internal/domain"
)

// JSONFormatter formats account statements as JSON
type JSONFormatter struct {
	PrettyPrint bool
}

func NewJSONFormatter(prettyPrint bool) *JSONFormatter {
	return &JSONFormatter{
		PrettyPrint: prettyPrint,
	}
}

type statementJSON struct {
	BranchCode    string            `json:"branch_code"`
	AccountNumber string            `json:"account_number"`
	Holder        string            `json:"holder"`
	Transactions  []transactionJSON `json:"transactions"`
	Balance       string            `json:"balance"`
}

type transactionJSON struct {
	ID          uuid.UUID       `json:"id"`
	Time        time.Time       `json:"time"`
	Kind        string          `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// Format implements the StatementFormatter interface for JSON
func (f *JSONFormatter) Format(account *domain.Account) ([]byte, error) {
	stmt := statementJSON{
		BranchCode:    account.BranchCode,
		AccountNumber: account.AccountNumber,
		Holder:        account.FullName,
		Transactions:  make([]transactionJSON, 0, len(account.Transactions)),
		Balance:       account.Balance.StringFixed(2),
	}

	for _, txn := range account.Transactions {
		stmt.Transactions = append(stmt.Transactions, transactionJSON{
			ID:          txn.ID,
			Time:        txn.Time,
			Kind:        string(txn.Kind),
			Amount:      txn.Amount,
			Description: txn.Description,
		})
	}

	if f.PrettyPrint {
		return json.MarshalIndent(stmt, "", "  ")
	}
	return json.Marshal(stmt)
}

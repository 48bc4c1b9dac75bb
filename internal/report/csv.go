package report

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/tirasundara/banking-session/internal/domain"
)

var csvHeader = []string{"time", "kind", "amount", "description"}

// CSVFormatter formats account transactions as CSV rows, one per transaction
type CSVFormatter struct{}

func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

// Format implements the StatementFormatter interface for CSV
func (f *CSVFormatter) Format(account *domain.Account) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("writing CSV header: %w", err)
	}

	for _, txn := range account.Transactions {
		row := []string{
			txn.Time.Format(statementTimeLayout),
			string(txn.Kind),
			txn.Amount.StringFixed(2),
			txn.Description,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("writing CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing CSV: %w", err)
	}

	return buf.Bytes(), nil
}

package report

import (
	"fmt"

	"github.com/tirasundara/banking-session/internal/domain"
)

const statementTimeLayout = "02/01/2006 15:04:05"

// StatementFormatter defines the interface for rendering an account statement
type StatementFormatter interface {
	Format(account *domain.Account) ([]byte, error)
}

// NewFormatter returns the formatter registered under name: "text", "json" or "csv"
func NewFormatter(name string, prettyPrint bool) (StatementFormatter, error) {
	switch name {
	case "", "text":
		return NewTextFormatter(), nil
	case "json":
		return NewJSONFormatter(prettyPrint), nil
	case "csv":
		return NewCSVFormatter(), nil
	}

	return nil, fmt.Errorf("unsupported statement format: %s", name)
}

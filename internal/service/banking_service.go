package service

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tirasundara/banking-session/internal/domain"
	"github.com/tirasundara/banking-session/internal/metric"
	"github.com/tirasundara/banking-session/internal/report"
	"go.uber.org/zap"
)

// BankingService composes the registry and the ledger for one interactive session
type BankingService struct {
	registry  domain.AccountRegistry
	ledger    domain.TransactionLedger
	formatter report.StatementFormatter
	metrics   *metric.Metrics
	logger    *zap.Logger
	clock     func() time.Time
}

// NewBankingService creates a new BankingService.
// A nil formatter renders text statements, a nil logger discards logs, a nil clock uses time.Now
// and nil metrics records nothing.
func NewBankingService(
	registry domain.AccountRegistry,
	ledger domain.TransactionLedger,
	formatter report.StatementFormatter,
	metrics *metric.Metrics,
	logger *zap.Logger,
	clock func() time.Time,
) *BankingService {
	if formatter == nil {
		formatter = report.NewTextFormatter()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if clock == nil {
		clock = time.Now
	}

	return &BankingService{
		registry:  registry,
		ledger:    ledger,
		formatter: formatter,
		metrics:   metrics,
		logger:    logger,
		clock:     clock,
	}
}

// RegisterUser registers a new account
func (s *BankingService) RegisterUser(reg domain.Registration) (*domain.Account, error) {
	acc, err := s.registry.Register(reg)
	s.metrics.ObserveRegistration(err)

	if err != nil {
		s.logger.Warn("Registration rejected",
			zap.String("branch", reg.BranchCode),
			zap.String("account", reg.AccountNumber),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("Account registered",
		zap.String("branch", acc.BranchCode),
		zap.String("account", acc.AccountNumber))

	return acc, nil
}

// CheckNationalID reports whether nationalID could be registered right now
func (s *BankingService) CheckNationalID(nationalID string) error {
	return s.registry.CheckNationalID(nationalID)
}

// Access finds the account registered under nationalID
func (s *BankingService) Access(nationalID string) (*domain.Account, error) {
	acc, err := s.registry.LookupByNationalID(nationalID)
	s.metrics.ObserveLookup(err)

	if err != nil {
		s.logger.Info("Account lookup failed", zap.Error(err))
		return nil, err
	}

	return acc, nil
}

// Deposit credits amount to account at the current clock time
func (s *BankingService) Deposit(account *domain.Account, amount decimal.Decimal) (domain.Transaction, error) {
	txn, err := s.ledger.Deposit(account, amount, s.clock())
	s.observe(domain.Deposit, account, amount, txn, err)
	return txn, err
}

// Withdraw debits amount from account at the current clock time
func (s *BankingService) Withdraw(account *domain.Account, amount decimal.Decimal) (domain.Transaction, error) {
	txn, err := s.ledger.Withdraw(account, amount, s.clock())
	s.observe(domain.Withdrawal, account, amount, txn, err)
	return txn, err
}

func (s *BankingService) observe(kind domain.TransactionKind, account *domain.Account, amount decimal.Decimal, txn domain.Transaction, err error) {
	s.metrics.ObserveLedgerOperation(kind, err)

	if err != nil {
		s.logger.Warn("Ledger operation rejected",
			zap.String("kind", string(kind)),
			zap.String("amount", amount.String()),
			zap.Error(err))
		return
	}

	s.logger.Info("Ledger operation applied",
		zap.String("kind", string(kind)),
		zap.String("transaction_id", txn.ID.String()),
		zap.String("amount", amount.StringFixed(2)),
		zap.String("balance", account.Balance.StringFixed(2)),
		zap.Int("transactions", account.TransactionCount()))
}

// Statement renders the statement of account with the configured formatter
func (s *BankingService) Statement(account *domain.Account) (string, error) {
	out, err := s.formatter.Format(account)
	if err != nil {
		return "", fmt.Errorf("formatting statement: %w", err)
	}

	return string(out), nil
}

// Summary totals every registered account
func (s *BankingService) Summary() (domain.SessionSummary, error) {
	accounts, err := s.registry.Snapshot()
	if err != nil {
		return domain.SessionSummary{}, fmt.Errorf("summarizing session: %w", err)
	}

	summary := domain.SessionSummary{
		Accounts:     len(accounts),
		TotalBalance: decimal.Zero,
	}

	for _, acc := range accounts {
		summary.Transactions += acc.TransactionCount()
		summary.TotalBalance = summary.TotalBalance.Add(acc.Balance)
	}

	return summary, nil
}

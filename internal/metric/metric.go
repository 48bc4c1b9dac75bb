package metric

import (
	"errors"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/tirasundara/banking-session/internal/domain"
)

const namespace = "banking"

// Outcome labels
const (
	OutcomeOK                     = "ok"
	OutcomeInvalidNationalID      = "invalid_national_id"
	OutcomeDuplicateNationalID    = "duplicate_national_id"
	OutcomeInvalidAccountNumber   = "invalid_account_number"
	OutcomeDuplicateAccountNumber = "duplicate_account_number"
	OutcomeNotFound               = "not_found"
	OutcomeInvalidAmount          = "invalid_amount"
	OutcomeDailyLimitReached      = "daily_limit_reached"
	OutcomeInsufficientBalance    = "insufficient_balance"
	OutcomeError                  = "error"
)

// Metrics holds the session counters on a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	// Registrations registration attempts by outcome
	Registrations *prometheus.CounterVec

	// Lookups account access attempts by outcome
	Lookups *prometheus.CounterVec

	// LedgerOperations deposit/withdrawal attempts by kind and outcome
	LedgerOperations *prometheus.CounterVec
}

// NewMetrics creates the counters and registers them on a fresh registry
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Registrations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "registrations_total",
				Help:      "Account registration attempts",
			}, []string{"outcome"}),
		Lookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "lookups_total",
				Help:      "Account access attempts by national id",
			}, []string{"outcome"}),
		LedgerOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ledger_operations_total",
				Help:      "Deposit and withdrawal attempts",
			}, []string{"kind", "outcome"}),
	}

	m.registry.MustRegister(m.Registrations, m.Lookups, m.LedgerOperations)

	return m
}

func (m *Metrics) ObserveRegistration(err error) {
	if m == nil {
		return
	}
	m.Registrations.WithLabelValues(Outcome(err)).Inc()
}

func (m *Metrics) ObserveLookup(err error) {
	if m == nil {
		return
	}
	m.Lookups.WithLabelValues(Outcome(err)).Inc()
}

func (m *Metrics) ObserveLedgerOperation(kind domain.TransactionKind, err error) {
	if m == nil {
		return
	}
	m.LedgerOperations.WithLabelValues(string(kind), Outcome(err)).Inc()
}

// Gatherer exposes the private registry; WriteText reads through it
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteText writes every metric family in the Prometheus text exposition format
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.Gatherer().Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}

	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("writing metric family %s: %w", mf.GetName(), err)
		}
	}

	return nil
}

// Outcome maps an operation error to its label value
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, domain.ErrInvalidNationalID):
		return OutcomeInvalidNationalID
	case errors.Is(err, domain.ErrDuplicateNationalID):
		return OutcomeDuplicateNationalID
	case errors.Is(err, domain.ErrInvalidAccountNumber):
		return OutcomeInvalidAccountNumber
	case errors.Is(err, domain.ErrDuplicateAccountNumber):
		return OutcomeDuplicateAccountNumber
	case errors.Is(err, domain.ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, domain.ErrInvalidAmount):
		return OutcomeInvalidAmount
	case errors.Is(err, domain.ErrDailyLimitReached):
		return OutcomeDailyLimitReached
	case errors.Is(err, domain.ErrInsufficientBalance):
		return OutcomeInsufficientBalance
	}
	return OutcomeError
}

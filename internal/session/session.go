package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tirasundara/banking-session/internal/domain"
	"github.com/tirasundara/banking-session/internal/registry"
	"go.uber.org/zap"
)

// Service is what the menu needs from the banking layer
type Service interface {
	RegisterUser(reg domain.Registration) (*domain.Account, error)
	CheckNationalID(nationalID string) error
	Access(nationalID string) (*domain.Account, error)
	Deposit(account *domain.Account, amount decimal.Decimal) (domain.Transaction, error)
	Withdraw(account *domain.Account, amount decimal.Decimal) (domain.Transaction, error)
	Statement(account *domain.Account) (string, error)
}

// Session drives the line-oriented menu: it reads one answer per line from in and
// writes prompts and results to out
type Session struct {
	svc    Service
	in     *bufio.Scanner
	out    io.Writer
	logger *zap.Logger
}

// New creates a Session reading from in and writing to out
func New(svc Service, in io.Reader, out io.Writer, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Session{
		svc:    svc,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger,
	}
}

// Run shows the main menu until the user exits, input ends or ctx is cancelled
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.print(mainMenu)
		option, ok := s.readLine(promptOption)
		if !ok {
			return s.inputErr()
		}

		switch option {
		case "1":
			s.register()
		case "2":
			if err := s.access(ctx); err != nil {
				return err
			}
		case "3":
			s.println(msgGoodbye)
			return nil
		default:
			s.println(msgInvalidOption)
		}
	}
}

// register collects the registration fields. The national id is checked as soon as it is
// entered so an unusable id stops the dialog before the remaining prompts.
func (s *Session) register() {
	s.println(registerHeader)

	name, ok := s.readLine(promptFullName)
	if !ok {
		return
	}

	nationalID, ok := s.readLine(promptNationalID)
	if !ok {
		return
	}
	if err := s.svc.CheckNationalID(nationalID); err != nil {
		s.println(message(err))
		return
	}

	branch, ok := s.readLine(promptBranch)
	if !ok {
		return
	}
	if !registry.IsBranchCodeFormat(branch) {
		s.println(msgInvalidBranch)
		return
	}

	number, ok := s.readLine(promptAccountNumber)
	if !ok {
		return
	}

	_, err := s.svc.RegisterUser(domain.Registration{
		FullName:      name,
		NationalID:    nationalID,
		BranchCode:    branch,
		AccountNumber: number,
	})
	if err != nil {
		s.println(message(err))
		return
	}

	s.println(msgRegistered)
}

func (s *Session) access(ctx context.Context) error {
	nationalID, ok := s.readLine(promptAccessID)
	if !ok {
		return nil
	}

	acc, err := s.svc.Access(nationalID)
	if err != nil {
		s.println(message(err))
		return nil
	}

	return s.accountMenu(ctx, acc)
}

func (s *Session) accountMenu(ctx context.Context, acc *domain.Account) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printf(accountMenu, acc.FullName)
		option, ok := s.readLine(promptOption)
		if !ok {
			return nil
		}

		switch option {
		case "1":
			s.deposit(acc)
		case "2":
			s.withdraw(acc)
		case "3":
			s.statement(acc)
		case "4":
			s.println(msgBackToMain)
			return nil
		default:
			s.println(msgInvalidOption)
		}
	}
}

func (s *Session) deposit(acc *domain.Account) {
	amount, ok := s.readAmount(promptDeposit)
	if !ok {
		return
	}

	if _, err := s.svc.Deposit(acc, amount); err != nil {
		s.println(depositMessage(err))
		return
	}

	s.printf(msgDeposited, amount.StringFixed(2))
}

func (s *Session) withdraw(acc *domain.Account) {
	amount, ok := s.readAmount(promptWithdraw)
	if !ok {
		return
	}

	if _, err := s.svc.Withdraw(acc, amount); err != nil {
		s.println(withdrawMessage(err))
		return
	}

	s.printf(msgWithdrawn, amount.StringFixed(2))
}

func (s *Session) statement(acc *domain.Account) {
	text, err := s.svc.Statement(acc)
	if err != nil {
		s.logger.Error("Failed to render statement", zap.Error(err))
		s.println(msgStatementFailed)
		return
	}

	s.print("\n" + text)
	if !strings.HasSuffix(text, "\n") {
		s.print("\n")
	}
}

// readAmount reads a decimal amount; unparsable or out-of-range input is reported and yields ok=false
func (s *Session) readAmount(prompt string) (decimal.Decimal, bool) {
	line, ok := s.readLine(prompt)
	if !ok {
		return decimal.Zero, false
	}

	amount, err := decimal.NewFromString(strings.ReplaceAll(line, ",", "."))
	if err != nil || !domain.IsAmountInRange(amount) {
		s.println(msgUnparsableAmount)
		return decimal.Zero, false
	}

	return amount, true
}

// readLine prints prompt and returns the next trimmed input line.
// ok is false once input is exhausted.
func (s *Session) readLine(prompt string) (string, bool) {
	s.print(prompt)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Session) inputErr() error {
	if err := s.in.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

func (s *Session) print(text string) {
	fmt.Fprint(s.out, text)
}

func (s *Session) println(text string) {
	fmt.Fprintln(s.out, text)
}

func (s *Session) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}

// message maps registration and lookup errors to the text shown to the user
func message(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidNationalID), errors.Is(err, domain.ErrDuplicateNationalID):
		return msgBadNationalID
	case errors.Is(err, domain.ErrInvalidAccountNumber), errors.Is(err, domain.ErrDuplicateAccountNumber):
		return msgBadAccountNumber
	case errors.Is(err, domain.ErrNotFound):
		return msgUserNotFound
	}
	return msgUnexpected
}

func depositMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		return msgInvalidDeposit
	case errors.Is(err, domain.ErrDailyLimitReached):
		return msgLimitReached
	}
	return msgUnexpected
}

func withdrawMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		return msgInvalidWithdraw
	case errors.Is(err, domain.ErrDailyLimitReached):
		return msgLimitReached
	case errors.Is(err, domain.ErrInsufficientBalance):
		return msgInsufficient
	}
	return msgUnexpected
}

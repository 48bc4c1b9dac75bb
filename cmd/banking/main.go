package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/tirasundara/banking-session/internal/config"
	"github.com/tirasundara/banking-session/internal/ledger"
	"github.com/tirasundara/banking-session/internal/metric"
	"github.com/tirasundara/banking-session/internal/registry"
	"github.com/tirasundara/banking-session/internal/report"
	"github.com/tirasundara/banking-session/internal/repository"
	"github.com/tirasundara/banking-session/internal/service"
	"github.com/tirasundara/banking-session/internal/session"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

const (
	flagCfg = "cfg"
	flagEnv = "env"
)

func cmdRun(c *cli.Context) error {
	return runSession(c.String(flagCfg), c.String(flagEnv), os.Stdin, os.Stdout, os.Stderr)
}

// runSession wires the banking stack from configuration and runs one session over in and out.
// The metrics dump, when enabled, goes to errOut.
func runSession(cfgPath, envPath string, in io.Reader, out, errOut io.Writer) error {
	// A missing .env file is not an error
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("loading env file: %w", err)
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("error parsing flags and config: %w", err)
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	formatter, err := report.NewFormatter(cfg.Statement.Format, cfg.Statement.Pretty)
	if err != nil {
		return err
	}

	metrics := metric.NewMetrics()
	bankingService := service.NewBankingService(
		registry.NewRegistry(repository.NewMemoryAccountRepository()),
		ledger.NewLedger(cfg.Ledger.TransactionLimit),
		formatter,
		metrics,
		logger,
		nil,
	)

	logger.Info("Session started",
		zap.Int("transaction_limit", cfg.Ledger.TransactionLimit),
		zap.String("statement_format", cfg.Statement.Format))

	if err := session.New(bankingService, in, out, logger).Run(context.Background()); err != nil {
		return fmt.Errorf("session failed: %w", err)
	}

	summary, err := bankingService.Summary()
	if err != nil {
		logger.Error("Failed to summarize session", zap.Error(err))
	} else {
		logger.Info("Session finished",
			zap.Int("accounts", summary.Accounts),
			zap.Int("transactions", summary.Transactions),
			zap.String("total_balance", summary.TotalBalance.StringFixed(2)))
	}

	if cfg.Metrics.DumpOnExit {
		if err := metrics.WriteText(errOut); err != nil {
			logger.Error("Failed to dump metrics", zap.Error(err))
		}
	}

	return nil
}

func main() {
	app := cli.NewApp()
	app.Name = "banking"
	app.Usage = "Interactive in-memory banking session"
	app.Version = "v1"

	flags := []cli.Flag{
		cli.StringFlag{
			Name:  flagCfg,
			Usage: "Session configuration `FILE` (.toml, .yaml or .yml)",
		},
		cli.StringFlag{
			Name:  flagEnv,
			Value: ".env",
			Usage: "Environment `FILE` loaded before reading BANKING_* variables",
		},
	}

	app.Flags = flags
	app.Action = cmdRun
	app.Commands = []cli.Command{
		{
			Name:   "run",
			Usage:  "Start an interactive banking session",
			Action: cmdRun,
			Flags:  flags,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

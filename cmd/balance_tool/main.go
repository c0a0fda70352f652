package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/swarnaledger/swarna_erp_app/internal/core/domain"
	portssvc "github.com/swarnaledger/swarna_erp_app/internal/core/ports/services"
	"github.com/swarnaledger/swarna_erp_app/internal/core/services"
	"github.com/swarnaledger/swarna_erp_app/internal/dto"
	"github.com/swarnaledger/swarna_erp_app/internal/platform/config"
	"github.com/swarnaledger/swarna_erp_app/internal/repositories/database/pgsql"
	"github.com/swarnaledger/swarna_erp_app/pkg/database"
)

var cli struct {
	Backfill BackfillCmd `cmd:"" help:"Replay the money journal and fill in per-transaction running balances."`
	Verify   VerifyCmd   `cmd:"" help:"Check stored running balances against a fresh replay, without writing."`
}

// BackfillCmd recomputes running balances account by account. It is a dry run
// unless --execute is given.
type BackfillCmd struct {
	Execute      bool     `help:"Write computed balances back. Without this flag nothing is persisted."`
	AccountTypes []string `help:"Restrict the run to the given account types (ASSET, LIABILITY, INCOME, EXPENSE, EQUITY)." name:"account-types" sep:","`
}

func (cmd *BackfillCmd) Run(svc *portssvc.ServiceContainer) error {
	opts := dto.BackfillOptions{DryRun: !cmd.Execute}
	for _, t := range cmd.AccountTypes {
		at := domain.AccountType(t)
		if !at.IsValid() {
			return fmt.Errorf("unknown account type %q", t)
		}
		opts.AccountTypes = append(opts.AccountTypes, at)
	}

	report, err := svc.BalanceHistory.Backfill(context.Background(), opts)
	if err != nil {
		return err
	}

	mode := "EXECUTE"
	if report.DryRun {
		mode = "DRY RUN"
	}
	fmt.Printf("Backfill (%s): %d accounts, %d failed, %d balances set\n",
		mode, report.AccountsTotal, report.AccountsFailed, report.TransactionsSet)
	for _, acc := range report.Accounts {
		if acc.Err != "" {
			fmt.Printf("  %-30s %-10s FAILED: %s\n", acc.AccountName, acc.AccountType, acc.Err)
			continue
		}
		fmt.Printf("  %-30s %-10s seen=%d set=%d skipped=%d final=%s drift=%s\n",
			acc.AccountName, acc.AccountType,
			acc.TransactionsSeen, acc.TransactionsSet, acc.TransactionsSkipped,
			acc.FinalBalance.StringFixed(2), acc.Drift.StringFixed(2))
	}
	if report.AccountsFailed > 0 {
		return fmt.Errorf("%d accounts failed", report.AccountsFailed)
	}
	return nil
}

// VerifyCmd replays the journal read-only and reports inconsistencies.
type VerifyCmd struct{}

func (cmd *VerifyCmd) Run(svc *portssvc.ServiceContainer) error {
	report, err := svc.BalanceHistory.Verify(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Verify: %d accounts, %d transactions checked, %d issues\n",
		report.AccountsChecked, report.TransactionsChecked, len(report.Issues))
	for _, issue := range report.Issues {
		fmt.Printf("  [%s] account=%s (%s) txn=%s expected=%s actual=%s %s\n",
			issue.Kind, issue.AccountName, issue.AccountID, issue.TransactionID,
			issue.Expected.StringFixed(2), issue.Actual.StringFixed(2), issue.Detail)
	}
	if !report.Clean() {
		return fmt.Errorf("%d issues found", len(report.Issues))
	}
	fmt.Println("OK")
	return nil
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	ctx := kong.Parse(&cli,
		kong.Name("balance_tool"),
		kong.Description("Balance history backfill and verification for the money journal."),
		kong.UsageOnError(),
	)

	cfg, err := config.LoadConfig()
	ctx.FatalIfErrorf(err)

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, true)
	ctx.FatalIfErrorf(err)
	defer dbPool.Close()

	repos := pgsql.NewRepositoryProvider(dbPool)
	deps := services.NewServiceContainer(repos)

	err = ctx.Run(deps)
	ctx.FatalIfErrorf(err)
}

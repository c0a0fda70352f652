package services

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/swarnaledger/swarna_erp_app/internal/core/domain"
	portsrepo "github.com/swarnaledger/swarna_erp_app/internal/core/ports/repositories"
	portssvc "github.com/swarnaledger/swarna_erp_app/internal/core/ports/services"
	"github.com/swarnaledger/swarna_erp_app/internal/dto"
	"github.com/swarnaledger/swarna_erp_app/internal/utils/accounting"
)

// balanceEpsilon is the tolerance used when comparing replayed balances
// against stored ones. Values are 2dp money, so a cent of drift is the
// smallest meaningful discrepancy.
var balanceEpsilon = decimal.NewFromFloat(0.01)

// balanceHistoryServiceImpl implements the BalanceHistorySvcFacade interface.
// Backfill replays each account's journal from its opening balance and writes
// balance_before/balance_after onto rows that lack them. Verify performs the
// same replay read-only and reports inconsistencies.
type balanceHistoryServiceImpl struct {
	BaseService
	accountRepo     portsrepo.AccountRepositoryFacade
	transactionRepo portsrepo.TransactionRepositoryFacade
}

// NewBalanceHistoryService creates a new balance history service.
func NewBalanceHistoryService(accountRepo portsrepo.AccountRepositoryFacade, transactionRepo portsrepo.TransactionRepositoryFacade) portssvc.BalanceHistorySvcFacade {
	return &balanceHistoryServiceImpl{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

var _ portssvc.BalanceHistorySvcFacade = (*balanceHistoryServiceImpl)(nil)

// Backfill replays every selected account in priority order. A row that
// already has balance history is trusted: the replay adopts its balance_after
// and moves on, which makes the whole run idempotent.
func (s *balanceHistoryServiceImpl) Backfill(ctx context.Context, opts dto.BackfillOptions) (*dto.BackfillReport, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}

	report := &dto.BackfillReport{DryRun: opts.DryRun}
	for i := range accounts {
		account := &accounts[i]
		if !typeSelected(account.AccountType, opts.AccountTypes) {
			continue
		}
		report.AccountsTotal++

		result := s.backfillAccount(ctx, account, opts.DryRun)
		if result.Err != "" {
			report.AccountsFailed++
		}
		report.TransactionsSet += result.TransactionsSet
		report.Accounts = append(report.Accounts, result)
	}

	s.LogInfo(ctx, "Balance history backfill finished",
		slog.Bool("dry_run", opts.DryRun),
		slog.Int("accounts", report.AccountsTotal),
		slog.Int("failed", report.AccountsFailed),
		slog.Int("transactions_set", report.TransactionsSet))
	return report, nil
}

func (s *balanceHistoryServiceImpl) backfillAccount(ctx context.Context, account *domain.Account, dryRun bool) dto.AccountBackfillResult {
	result := dto.AccountBackfillResult{
		AccountID:      account.AccountID,
		AccountName:    account.Name,
		AccountType:    string(account.AccountType),
		CurrentBalance: account.CurrentBalance,
	}

	txns, err := s.transactionRepo.ListTransactionsByAccountAsc(ctx, account.AccountID)
	if err != nil {
		result.Err = err.Error()
		return result
	}

	running := account.OpeningBalance
	for i := range txns {
		txn := &txns[i]
		result.TransactionsSeen++

		if txn.HasBalance && txn.BalanceAfter != nil {
			running = *txn.BalanceAfter
			result.TransactionsSkipped++
			continue
		}

		delta, err := accounting.BalanceDelta(account.AccountType, txn.TransactionType, txn.Amount)
		if err != nil {
			result.Err = err.Error()
			return result
		}

		before := running
		after := running.Add(delta)
		if !dryRun {
			if err := s.transactionRepo.SetBalanceFields(ctx, txn.TransactionID, before, after); err != nil {
				result.Err = err.Error()
				return result
			}
		}
		running = after
		result.TransactionsSet++
	}

	result.FinalBalance = running
	result.Drift = running.Sub(account.CurrentBalance)
	if result.Drift.Abs().GreaterThan(balanceEpsilon) {
		s.LogWarn(ctx, "Replayed balance does not match cached balance",
			slog.String("account_id", account.AccountID),
			slog.String("replayed", running.String()),
			slog.String("cached", account.CurrentBalance.String()))
	}
	return result
}

// Verify replays every account read-only and reports three kinds of issues:
// a stored balance_before that breaks the chain, a balance_after that does not
// equal balance_before plus the computed delta, and a final replayed balance
// that drifts from the cached current_balance.
func (s *balanceHistoryServiceImpl) Verify(ctx context.Context) (*dto.VerifyReport, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}

	report := &dto.VerifyReport{}
	for i := range accounts {
		account := &accounts[i]
		report.AccountsChecked++

		txns, err := s.transactionRepo.ListTransactionsByAccountAsc(ctx, account.AccountID)
		if err != nil {
			return nil, err
		}

		running := account.OpeningBalance
		for j := range txns {
			txn := &txns[j]
			report.TransactionsChecked++

			delta, err := accounting.BalanceDelta(account.AccountType, txn.TransactionType, txn.Amount)
			if err != nil {
				report.Issues = append(report.Issues, dto.VerifyIssue{
					AccountID:     account.AccountID,
					AccountName:   account.Name,
					TransactionID: txn.TransactionID,
					Kind:          "delta_mismatch",
					Detail:        err.Error(),
				})
				continue
			}

			if txn.HasBalance && txn.BalanceBefore != nil && txn.BalanceAfter != nil {
				if txn.BalanceBefore.Sub(running).Abs().GreaterThan(balanceEpsilon) {
					report.Issues = append(report.Issues, dto.VerifyIssue{
						AccountID:     account.AccountID,
						AccountName:   account.Name,
						TransactionID: txn.TransactionID,
						Kind:          "chain_break",
						Expected:      running,
						Actual:        *txn.BalanceBefore,
					})
				}
				expectedAfter := txn.BalanceBefore.Add(delta)
				if txn.BalanceAfter.Sub(expectedAfter).Abs().GreaterThan(balanceEpsilon) {
					report.Issues = append(report.Issues, dto.VerifyIssue{
						AccountID:     account.AccountID,
						AccountName:   account.Name,
						TransactionID: txn.TransactionID,
						Kind:          "delta_mismatch",
						Expected:      expectedAfter,
						Actual:        *txn.BalanceAfter,
					})
				}
				running = *txn.BalanceAfter
			} else {
				running = running.Add(delta)
			}
		}

		if running.Sub(account.CurrentBalance).Abs().GreaterThan(balanceEpsilon) {
			report.Issues = append(report.Issues, dto.VerifyIssue{
				AccountID:   account.AccountID,
				AccountName: account.Name,
				Kind:        "final_drift",
				Expected:    running,
				Actual:      account.CurrentBalance,
			})
		}
	}

	s.LogInfo(ctx, "Balance history verification finished",
		slog.Int("accounts", report.AccountsChecked),
		slog.Int("transactions", report.TransactionsChecked),
		slog.Int("issues", len(report.Issues)))
	return report, nil
}

func typeSelected(t domain.AccountType, selected []domain.AccountType) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if s == t {
			return true
		}
	}
	return false
}

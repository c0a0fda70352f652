package accounting

import (
	"fmt"

	"github.com/swarnaledger/swarna_erp_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceDelta maps (account type, transaction direction, amount) to the
// signed change it causes on the account's balance. This is the single source
// of truth for every balance mutation, reversal and replay in the system.
//
// DEBIT to ASSET/EXPENSE -> +amount
// CREDIT to ASSET/EXPENSE -> -amount
// DEBIT to INCOME/LIABILITY/EQUITY -> -amount
// CREDIT to INCOME/LIABILITY/EQUITY -> +amount
//
// Amount must be a non-negative magnitude; direction is carried entirely by
// the transaction type.
func BalanceDelta(accountType domain.AccountType, txnType domain.TransactionType, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount must be a non-negative magnitude, got %s", amount.String())
	}
	if txnType != domain.Debit && txnType != domain.Credit {
		return decimal.Zero, fmt.Errorf("unknown transaction type %q", txnType)
	}

	isDebit := txnType == domain.Debit
	switch accountType {
	case domain.Asset, domain.Expense:
		if isDebit {
			return amount, nil
		}
		return amount.Neg(), nil
	case domain.Income, domain.Liability, domain.Equity:
		if isDebit {
			return amount.Neg(), nil
		}
		return amount, nil
	default:
		return decimal.Zero, fmt.Errorf("unknown account type %q", accountType)
	}
}

// RoundMoney quantizes a money value to 2 decimal places, half-up. Applied at
// persistence boundaries only, never at intermediate arithmetic steps.
func RoundMoney(v decimal.Decimal) decimal.Decimal {
	return v.Round(2)
}

// RoundWeight quantizes a gold weight to 3 decimal places, half-up.
func RoundWeight(v decimal.Decimal) decimal.Decimal {
	return v.Round(3)
}

// FormatTransactionNumber builds the display number TXN-<year>-<seq>, with the
// sequence zero-padded to four digits. The sequence must come from an atomic
// counter; it is never derived from row counts.
func FormatTransactionNumber(year int, seq int64) string {
	return fmt.Sprintf("TXN-%d-%04d", year, seq)
}

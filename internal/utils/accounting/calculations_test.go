package accounting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swarnaledger/swarna_erp_app/internal/core/domain"
	"github.com/swarnaledger/swarna_erp_app/internal/utils/accounting"
)

func TestBalanceDelta_SignRule(t *testing.T) {
	amount := decimal.RequireFromString("123.45")

	testCases := []struct {
		name        string
		accountType domain.AccountType
		txnType     domain.TransactionType
		want        string
	}{
		{"debit asset increases", domain.Asset, domain.Debit, "123.45"},
		{"credit asset decreases", domain.Asset, domain.Credit, "-123.45"},
		{"debit expense increases", domain.Expense, domain.Debit, "123.45"},
		{"credit expense decreases", domain.Expense, domain.Credit, "-123.45"},
		{"credit income increases", domain.Income, domain.Credit, "123.45"},
		{"debit income decreases", domain.Income, domain.Debit, "-123.45"},
		{"credit liability increases", domain.Liability, domain.Credit, "123.45"},
		{"debit liability decreases", domain.Liability, domain.Debit, "-123.45"},
		{"credit equity increases", domain.Equity, domain.Credit, "123.45"},
		{"debit equity decreases", domain.Equity, domain.Debit, "-123.45"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := accounting.BalanceDelta(tc.accountType, tc.txnType, amount)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestBalanceDelta_ZeroAmount(t *testing.T) {
	for _, at := range []domain.AccountType{domain.Asset, domain.Liability, domain.Income, domain.Expense, domain.Equity} {
		for _, tt := range []domain.TransactionType{domain.Debit, domain.Credit} {
			got, err := accounting.BalanceDelta(at, tt, decimal.Zero)
			require.NoError(t, err)
			assert.True(t, got.IsZero())
		}
	}
}

func TestBalanceDelta_RejectsNegativeAmount(t *testing.T) {
	_, err := accounting.BalanceDelta(domain.Asset, domain.Debit, decimal.RequireFromString("-1.00"))
	assert.Error(t, err)
}

func TestBalanceDelta_RejectsUnknownTypes(t *testing.T) {
	_, err := accounting.BalanceDelta(domain.AccountType("SUSPENSE"), domain.Debit, decimal.NewFromInt(1))
	assert.Error(t, err)

	_, err = accounting.BalanceDelta(domain.Asset, domain.TransactionType("TRANSFER"), decimal.NewFromInt(1))
	assert.Error(t, err)
}

func TestRoundMoney_HalfUp(t *testing.T) {
	assert.Equal(t, "10.13", accounting.RoundMoney(decimal.RequireFromString("10.125")).String())
	assert.Equal(t, "10.12", accounting.RoundMoney(decimal.RequireFromString("10.124")).String())
}

func TestRoundWeight_HalfUp(t *testing.T) {
	assert.Equal(t, "5.124", accounting.RoundWeight(decimal.RequireFromString("5.1235")).String())
	assert.Equal(t, "5.123", accounting.RoundWeight(decimal.RequireFromString("5.1234")).String())
}

package mapping

import (
	"github.com/swarnaledger/swarna_erp_app/internal/core/domain"
	"github.com/swarnaledger/swarna_erp_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:     d.TransactionID,
		TransactionNumber: d.TransactionNumber,
		Date:              d.Date,
		TransactionType:   models.TransactionType(d.TransactionType),
		Mode:              d.Mode,
		AccountID:         d.AccountID,
		AccountName:       d.AccountName,
		PartyID:           d.PartyID,
		PartyName:         d.PartyName,
		Amount:            d.Amount,
		Category:          d.Category,
		Notes:             d.Notes,
		ReferenceType:     string(d.Reference.Kind),
		ReferenceID:       d.Reference.ID,
		BalanceBefore:     d.BalanceBefore,
		BalanceAfter:      d.BalanceAfter,
		HasBalance:        d.HasBalance,
		IsDeleted:         d.IsDeleted,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:     m.TransactionID,
		TransactionNumber: m.TransactionNumber,
		Date:              m.Date,
		TransactionType:   domain.TransactionType(m.TransactionType),
		Mode:              m.Mode,
		AccountID:         m.AccountID,
		AccountName:       m.AccountName,
		PartyID:           m.PartyID,
		PartyName:         m.PartyName,
		Amount:            m.Amount,
		Category:          m.Category,
		Notes:             m.Notes,
		Reference: domain.DocumentRef{
			Kind: domain.DocumentKind(m.ReferenceType),
			ID:   m.ReferenceID,
		},
		BalanceBefore: m.BalanceBefore,
		BalanceAfter:  m.BalanceAfter,
		HasBalance:    m.HasBalance,
		IsDeleted:     m.IsDeleted,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		out[i] = ToDomainTransaction(m)
	}
	return out
}

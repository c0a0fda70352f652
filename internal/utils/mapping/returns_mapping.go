package mapping

import (
	"github.com/swarnaledger/swarna_erp_app/internal/core/domain"
	"github.com/swarnaledger/swarna_erp_app/internal/models"
)

// ToModelReturn converts a domain Return to a model Return
func ToModelReturn(d domain.Return) models.Return {
	return models.Return{
		ReturnID:                d.ReturnID,
		ReturnNumber:            d.ReturnNumber,
		ReturnType:              string(d.ReturnType),
		PartyID:                 d.PartyID,
		PartyName:               d.PartyName,
		PaymentMode:             d.PaymentMode,
		ReferenceType:           string(d.Reference.Kind),
		ReferenceID:             d.Reference.ID,
		RefundMode:              string(d.RefundMode),
		RefundMoneyAmount:       d.RefundMoneyAmount,
		RefundGoldGrams:         d.RefundGoldGrams,
		RefundGoldPurity:        d.RefundGoldPurity,
		AccountID:               d.AccountID,
		ItemCount:               d.ItemCount,
		Status:                  string(d.Status),
		ProcessingStartedAt:     d.ProcessingStartedAt,
		FinalizedAt:             d.FinalizedAt,
		FinalizedBy:             d.FinalizedBy,
		TransactionID:           d.TransactionID,
		GoldLedgerID:            d.GoldLedgerID,
		InventoryActionRequired: d.InventoryActionRequired,
		InventoryActionNotes:    d.InventoryActionNotes,
		IsDeleted:               d.IsDeleted,
		AuditFields:             ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainReturn converts a model Return to a domain Return
func ToDomainReturn(m models.Return) domain.Return {
	return domain.Return{
		ReturnID:     m.ReturnID,
		ReturnNumber: m.ReturnNumber,
		ReturnType:   domain.ReturnType(m.ReturnType),
		PartyID:      m.PartyID,
		PartyName:    m.PartyName,
		PaymentMode:  m.PaymentMode,
		Reference: domain.DocumentRef{
			Kind: domain.DocumentKind(m.ReferenceType),
			ID:   m.ReferenceID,
		},
		RefundMode:              domain.RefundMode(m.RefundMode),
		RefundMoneyAmount:       m.RefundMoneyAmount,
		RefundGoldGrams:         m.RefundGoldGrams,
		RefundGoldPurity:        m.RefundGoldPurity,
		AccountID:               m.AccountID,
		ItemCount:               m.ItemCount,
		Status:                  domain.DocumentStatus(m.Status),
		ProcessingStartedAt:     m.ProcessingStartedAt,
		FinalizedAt:             m.FinalizedAt,
		FinalizedBy:             m.FinalizedBy,
		TransactionID:           m.TransactionID,
		GoldLedgerID:            m.GoldLedgerID,
		InventoryActionRequired: m.InventoryActionRequired,
		InventoryActionNotes:    m.InventoryActionNotes,
		IsDeleted:               m.IsDeleted,
		AuditFields:             ToDomainAuditFields(m.AuditFields),
	}
}

package mapping

import (
	"github.com/swarnaledger/swarna_erp_app/internal/core/domain"
	"github.com/swarnaledger/swarna_erp_app/internal/models"
)

// ToModelGoldLedgerEntry converts a domain GoldLedgerEntry to its model
func ToModelGoldLedgerEntry(d domain.GoldLedgerEntry) models.GoldLedgerEntry {
	return models.GoldLedgerEntry{
		EntryID:       d.EntryID,
		PartyID:       d.PartyID,
		Date:          d.Date,
		Direction:     string(d.Direction),
		WeightGrams:   d.WeightGrams,
		PurityEntered: d.PurityEntered,
		Purpose:       d.Purpose,
		ReferenceType: string(d.Reference.Kind),
		ReferenceID:   d.Reference.ID,
		Notes:         d.Notes,
		IsDeleted:     d.IsDeleted,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainGoldLedgerEntry converts a model GoldLedgerEntry to its domain form
func ToDomainGoldLedgerEntry(m models.GoldLedgerEntry) domain.GoldLedgerEntry {
	return domain.GoldLedgerEntry{
		EntryID:       m.EntryID,
		PartyID:       m.PartyID,
		Date:          m.Date,
		Direction:     domain.GoldDirection(m.Direction),
		WeightGrams:   m.WeightGrams,
		PurityEntered: m.PurityEntered,
		Purpose:       m.Purpose,
		Reference: domain.DocumentRef{
			Kind: domain.DocumentKind(m.ReferenceType),
			ID:   m.ReferenceID,
		},
		Notes:       m.Notes,
		IsDeleted:   m.IsDeleted,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

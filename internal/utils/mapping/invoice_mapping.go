package mapping

import (
	"github.com/swarnaledger/swarna_erp_app/internal/core/domain"
	"github.com/swarnaledger/swarna_erp_app/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:           d.InvoiceID,
		InvoiceNumber:       d.InvoiceNumber,
		CustomerID:          d.CustomerID,
		CustomerName:        d.CustomerName,
		GrandTotal:          d.GrandTotal,
		PaidAmount:          d.PaidAmount,
		BalanceDue:          d.BalanceDue,
		PaymentStatus:       string(d.PaymentStatus),
		Status:              string(d.Status),
		ProcessingStartedAt: d.ProcessingStartedAt,
		FinalizedAt:         d.FinalizedAt,
		FinalizedBy:         d.FinalizedBy,
		IsDeleted:           d.IsDeleted,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvoice converts a model Invoice to a domain Invoice
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:           m.InvoiceID,
		InvoiceNumber:       m.InvoiceNumber,
		CustomerID:          m.CustomerID,
		CustomerName:        m.CustomerName,
		GrandTotal:          m.GrandTotal,
		PaidAmount:          m.PaidAmount,
		BalanceDue:          m.BalanceDue,
		PaymentStatus:       domain.PaymentStatus(m.PaymentStatus),
		Status:              domain.DocumentStatus(m.Status),
		ProcessingStartedAt: m.ProcessingStartedAt,
		FinalizedAt:         m.FinalizedAt,
		FinalizedBy:         m.FinalizedBy,
		IsDeleted:           m.IsDeleted,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelPurchase converts a domain Purchase to a model Purchase
func ToModelPurchase(d domain.Purchase) models.Purchase {
	return models.Purchase{
		PurchaseID:          d.PurchaseID,
		PurchaseNumber:      d.PurchaseNumber,
		VendorID:            d.VendorID,
		VendorName:          d.VendorName,
		TotalMoney:          d.TotalMoney,
		BalanceDueMoney:     d.BalanceDueMoney,
		Status:              string(d.Status),
		ProcessingStartedAt: d.ProcessingStartedAt,
		FinalizedAt:         d.FinalizedAt,
		FinalizedBy:         d.FinalizedBy,
		IsDeleted:           d.IsDeleted,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPurchase converts a model Purchase to a domain Purchase
func ToDomainPurchase(m models.Purchase) domain.Purchase {
	return domain.Purchase{
		PurchaseID:          m.PurchaseID,
		PurchaseNumber:      m.PurchaseNumber,
		VendorID:            m.VendorID,
		VendorName:          m.VendorName,
		TotalMoney:          m.TotalMoney,
		BalanceDueMoney:     m.BalanceDueMoney,
		Status:              domain.DocumentStatus(m.Status),
		ProcessingStartedAt: m.ProcessingStartedAt,
		FinalizedAt:         m.FinalizedAt,
		FinalizedBy:         m.FinalizedBy,
		IsDeleted:           m.IsDeleted,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainParty converts a model Party to a domain Party
func ToDomainParty(m models.Party) domain.Party {
	return domain.Party{
		PartyID:            m.PartyID,
		Name:               m.Name,
		PartyType:          domain.PartyType(m.PartyType),
		Phone:              m.Phone,
		OutstandingBalance: m.OutstandingBalance,
		IsDeleted:          m.IsDeleted,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

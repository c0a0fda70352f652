package mapping

import (
	"github.com/swarnaledger/swarna_erp_app/internal/core/domain"
	"github.com/swarnaledger/swarna_erp_app/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:      d.AccountID,
		Name:           d.Name,
		AccountType:    models.AccountType(d.AccountType),
		OpeningBalance: d.OpeningBalance,
		CurrentBalance: d.CurrentBalance,
		IsDeleted:      d.IsDeleted,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:      m.AccountID,
		Name:           m.Name,
		AccountType:    domain.AccountType(m.AccountType),
		OpeningBalance: m.OpeningBalance,
		CurrentBalance: m.CurrentBalance,
		IsDeleted:      m.IsDeleted,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

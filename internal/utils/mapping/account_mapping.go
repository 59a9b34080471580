package mapping

import (
	"github.com/SscSPs/general_ledger/internal/core/domain"
	"github.com/SscSPs/general_ledger/internal/models"
)

// ToModelChartOfAccount converts a domain ChartOfAccount to its row model.
func ToModelChartOfAccount(d domain.ChartOfAccount) models.ChartOfAccount {
	return models.ChartOfAccount{
		TenantID:      d.TenantID,
		AccountID:     d.AccountID,
		AccountCode:   d.AccountCode,
		Name:          d.Name,
		AccountType:   models.AccountType(d.AccountType),
		NormalBalance: string(d.NormalBalance),
		IsActive:      d.IsActive,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainChartOfAccount converts a chart_of_accounts row to the domain type.
// The normal balance is taken as stored; the account service normalizes it.
func ToDomainChartOfAccount(m models.ChartOfAccount) domain.ChartOfAccount {
	return domain.ChartOfAccount{
		TenantID:      m.TenantID,
		AccountID:     m.AccountID,
		AccountCode:   m.AccountCode,
		Name:          m.Name,
		AccountType:   domain.AccountType(m.AccountType),
		NormalBalance: domain.Side(m.NormalBalance),
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

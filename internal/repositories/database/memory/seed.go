package memory

import (
	"fmt"

	"github.com/SscSPs/general_ledger/internal/core/domain"
	"github.com/spf13/viper"
)

type seedAccount struct {
	TenantID      string `mapstructure:"tenantId"`
	AccountID     string `mapstructure:"accountId"`
	AccountCode   string `mapstructure:"accountCode"`
	Name          string `mapstructure:"name"`
	AccountType   string `mapstructure:"accountType"`
	NormalBalance string `mapstructure:"normalBalance"`
	IsActive      *bool  `mapstructure:"isActive"` // Defaults to true
}

// LoadChartOfAccounts reads accounts from a YAML, JSON or TOML file with a top-level
// "accounts" list. The format is inferred from the file extension.
func LoadChartOfAccounts(path string) ([]domain.ChartOfAccount, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read chart of accounts seed %s: %w", path, err)
	}

	var seed struct {
		Accounts []seedAccount `mapstructure:"accounts"`
	}
	if err := v.Unmarshal(&seed); err != nil {
		return nil, fmt.Errorf("failed to decode chart of accounts seed %s: %w", path, err)
	}

	accounts := make([]domain.ChartOfAccount, 0, len(seed.Accounts))
	for i, a := range seed.Accounts {
		if a.TenantID == "" || a.AccountID == "" {
			return nil, fmt.Errorf("seed account %d: tenantId and accountId are required", i)
		}
		accountType := domain.AccountType(a.AccountType)
		if _, ok := accountType.NormalBalance(); !ok {
			return nil, fmt.Errorf("seed account %s: unknown accountType %q", a.AccountID, a.AccountType)
		}
		isActive := true
		if a.IsActive != nil {
			isActive = *a.IsActive
		}
		accounts = append(accounts, domain.ChartOfAccount{
			TenantID:      a.TenantID,
			AccountID:     a.AccountID,
			AccountCode:   a.AccountCode,
			Name:          a.Name,
			AccountType:   accountType,
			NormalBalance: domain.Side(a.NormalBalance),
			IsActive:      isActive,
		})
	}
	return accounts, nil
}

package types

import (
	"fmt"

	"github.com/samber/lo"
)

// AccountType is the chart-of-accounts classification
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeIncome    AccountType = "income"
	AccountTypeExpense   AccountType = "expense"
)

func (t AccountType) String() string {
	return string(t)
}

func (t AccountType) Validate() error {
	allowed := []AccountType{
		AccountTypeAsset,
		AccountTypeLiability,
		AccountTypeEquity,
		AccountTypeIncome,
		AccountTypeExpense,
	}
	if !lo.Contains(allowed, t) {
		return fmt.Errorf("invalid account type: %s", t)
	}
	return nil
}

func (t AccountType) BadgeVariant() BadgeVariant {
	switch t {
	case AccountTypeIncome:
		return BadgeSuccess
	case AccountTypeExpense:
		return BadgeDestructive
	case AccountTypeAsset:
		return BadgeDefault
	default:
		return BadgeSecondary
	}
}

type AccountFilter struct {
	*QueryFilter
	*TimeRangeFilter

	AccountIDs   []string    `form:"account_ids" json:"account_ids"`
	AccountType  AccountType `form:"account_type" json:"account_type"`
	CodePrefix   string      `form:"code_prefix" json:"code_prefix"`
	ParentID     string      `form:"parent_id" json:"parent_id"`
}

func NewDefaultAccountFilter() *AccountFilter {
	return &AccountFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

func NewNoLimitAccountFilter() *AccountFilter {
	return &AccountFilter{
		QueryFilter: NewNoLimitQueryFilter(),
	}
}

func (f *AccountFilter) Validate() error {
	if f == nil {
		return nil
	}
	if f.QueryFilter == nil {
		f.QueryFilter = NewDefaultQueryFilter()
	}
	if err := f.QueryFilter.Validate(); err != nil {
		return err
	}
	if err := f.TimeRangeFilter.Validate(); err != nil {
		return err
	}
	if f.AccountType != "" {
		if err := f.AccountType.Validate(); err != nil {
			return err
		}
	}
	return nil
}

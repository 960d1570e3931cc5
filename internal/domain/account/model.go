package account

import (
	"github.com/siteledger/siteledger/internal/types"
)

// Account is a single entry in the chart of accounts.
type Account struct {
	ID              string            `json:"id" gorm:"primaryKey;column:id"`
	Code            string            `json:"code" gorm:"column:code;index"`
	Name            string            `json:"name" gorm:"column:name"`
	AccountType     types.AccountType `json:"account_type" gorm:"column:account_type"`
	ParentAccountID *string           `json:"parent_account_id,omitempty" gorm:"column:parent_account_id;index"`
	Description     string            `json:"description,omitempty" gorm:"column:description"`
	types.BaseModel
}

func (Account) TableName() string {
	return "accounts"
}

func (a *Account) GetID() string {
	return a.ID
}

func (a *Account) GetBaseModel() *types.BaseModel {
	return &a.BaseModel
}

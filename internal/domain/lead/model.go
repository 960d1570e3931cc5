package lead

import (
	"github.com/siteledger/siteledger/internal/types"
)

// Lead is an inbound marketing contact captured from the public site.
type Lead struct {
	ID         string           `json:"id" gorm:"primaryKey;column:id"`
	Name       string           `json:"name" gorm:"column:name"`
	Email      string           `json:"email" gorm:"column:email;index"`
	Phone      string           `json:"phone,omitempty" gorm:"column:phone"`
	Company    string           `json:"company,omitempty" gorm:"column:company"`
	Source     string           `json:"source,omitempty" gorm:"column:source"`
	Message    string           `json:"message,omitempty" gorm:"column:message"`
	LeadStatus types.LeadStatus `json:"lead_status" gorm:"column:lead_status"`
	types.BaseModel
}

func (Lead) TableName() string {
	return "leads"
}

func (l *Lead) GetID() string {
	return l.ID
}

func (l *Lead) GetBaseModel() *types.BaseModel {
	return &l.BaseModel
}

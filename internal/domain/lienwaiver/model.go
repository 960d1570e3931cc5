package lienwaiver

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/siteledger/siteledger/internal/types"
)

type LienWaiver struct {
	ID               string                 `json:"id" gorm:"primaryKey;column:id"`
	JobID            string                 `json:"job_id" gorm:"column:job_id;index"`
	VendorID         string                 `json:"vendor_id" gorm:"column:vendor_id;index"`
	WaiverType       types.LienWaiverType   `json:"waiver_type" gorm:"column:waiver_type"`
	ThroughDate      *time.Time             `json:"through_date,omitempty" gorm:"column:through_date"`
	Amount           *decimal.Decimal       `json:"amount,omitempty" gorm:"column:amount;type:numeric"`
	SignedAt         *time.Time             `json:"signed_at,omitempty" gorm:"column:signed_at"`
	LienWaiverStatus types.LienWaiverStatus `json:"lien_waiver_status" gorm:"column:lien_waiver_status"`
	types.BaseModel
}

func (LienWaiver) TableName() string {
	return "lien_waivers"
}

func (l *LienWaiver) GetID() string {
	return l.ID
}

func (l *LienWaiver) GetBaseModel() *types.BaseModel {
	return &l.BaseModel
}

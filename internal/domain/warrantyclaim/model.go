package warrantyclaim

import (
	"time"

	"github.com/siteledger/siteledger/internal/types"
)

type WarrantyClaim struct {
	ID                  string                    `json:"id" gorm:"primaryKey;column:id"`
	JobID               string                    `json:"job_id" gorm:"column:job_id;index"`
	Title               string                    `json:"title" gorm:"column:title"`
	Description         string                    `json:"description" gorm:"column:description"`
	ReportedBy          string                    `json:"reported_by" gorm:"column:reported_by"`
	ScheduledFor        *time.Time                `json:"scheduled_for,omitempty" gorm:"column:scheduled_for"`
	ResolvedAt          *time.Time                `json:"resolved_at,omitempty" gorm:"column:resolved_at"`
	WarrantyClaimStatus types.WarrantyClaimStatus `json:"warranty_claim_status" gorm:"column:warranty_claim_status"`
	types.BaseModel
}

func (WarrantyClaim) TableName() string {
	return "warranty_claims"
}

func (w *WarrantyClaim) GetID() string {
	return w.ID
}

func (w *WarrantyClaim) GetBaseModel() *types.BaseModel {
	return &w.BaseModel
}

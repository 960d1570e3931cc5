package submittal

import (
	"time"

	"github.com/siteledger/siteledger/internal/types"
)

type Submittal struct {
	ID              string                `json:"id" gorm:"primaryKey;column:id"`
	JobID           string                `json:"job_id" gorm:"column:job_id;index"`
	Number          string                `json:"number" gorm:"column:number"`
	Title           string                `json:"title" gorm:"column:title"`
	SpecSection     string                `json:"spec_section" gorm:"column:spec_section"`
	Description     string                `json:"description" gorm:"column:description"`
	SubmittedAt     *time.Time            `json:"submitted_at,omitempty" gorm:"column:submitted_at"`
	ReviewedAt      *time.Time            `json:"reviewed_at,omitempty" gorm:"column:reviewed_at"`
	SubmittalStatus types.SubmittalStatus `json:"submittal_status" gorm:"column:submittal_status"`
	types.BaseModel
}

func (Submittal) TableName() string {
	return "submittals"
}

func (s *Submittal) GetID() string {
	return s.ID
}

func (s *Submittal) GetBaseModel() *types.BaseModel {
	return &s.BaseModel
}

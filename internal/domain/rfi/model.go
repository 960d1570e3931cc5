package rfi

import (
	"time"

	"github.com/siteledger/siteledger/internal/types"
)

type RFI struct {
	ID         string          `json:"id" gorm:"primaryKey;column:id"`
	JobID      string          `json:"job_id" gorm:"column:job_id;index"`
	Number     string          `json:"number" gorm:"column:number"`
	Subject    string          `json:"subject" gorm:"column:subject"`
	Question   string          `json:"question" gorm:"column:question"`
	Answer     string          `json:"answer" gorm:"column:answer"`
	DueDate    *time.Time      `json:"due_date,omitempty" gorm:"column:due_date"`
	AnsweredAt *time.Time      `json:"answered_at,omitempty" gorm:"column:answered_at"`
	RFIStatus  types.RFIStatus `json:"rfi_status" gorm:"column:rfi_status"`
	types.BaseModel
}

func (RFI) TableName() string {
	return "rfis"
}

func (r *RFI) GetID() string {
	return r.ID
}

func (r *RFI) GetBaseModel() *types.BaseModel {
	return &r.BaseModel
}

package job

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/siteledger/siteledger/internal/types"
)

// Job is the project every child record hangs off. Child reads verify the
// job belongs to the caller's tenant before touching the child row.
type Job struct {
	ID             string          `json:"id" gorm:"primaryKey;column:id"`
	Name           string          `json:"name" gorm:"column:name"`
	Number         string          `json:"number" gorm:"column:number"`
	ClientID       string          `json:"client_id" gorm:"column:client_id;index"`
	Address        string          `json:"address" gorm:"column:address"`
	Description    string          `json:"description" gorm:"column:description"`
	ContractAmount decimal.Decimal `json:"contract_amount" gorm:"column:contract_amount;type:numeric"`
	StartDate      *time.Time      `json:"start_date,omitempty" gorm:"column:start_date"`
	EndDate        *time.Time      `json:"end_date,omitempty" gorm:"column:end_date"`
	JobStatus      types.JobStatus `json:"job_status" gorm:"column:job_status"`
	types.BaseModel
}

func (Job) TableName() string {
	return "jobs"
}

func (j *Job) GetID() string {
	return j.ID
}

func (j *Job) GetBaseModel() *types.BaseModel {
	return &j.BaseModel
}

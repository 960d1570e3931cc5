package drawrequest

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/siteledger/siteledger/internal/types"
)

// DrawRequest is a periodic payment application against a job's contract.
// CurrentPaymentDue is always derived from the other amounts; clients never
// set it directly.
type DrawRequest struct {
	ID                   string                  `json:"id" gorm:"primaryKey;column:id"`
	JobID                string                  `json:"job_id" gorm:"column:job_id;index"`
	Number               string                  `json:"number" gorm:"column:number"`
	PeriodEnd            *time.Time              `json:"period_end,omitempty" gorm:"column:period_end"`
	WorkCompleted        decimal.Decimal         `json:"work_completed" gorm:"column:work_completed;type:numeric"`
	MaterialsStored      decimal.Decimal         `json:"materials_stored" gorm:"column:materials_stored;type:numeric"`
	RetainagePercent     decimal.Decimal         `json:"retainage_percent" gorm:"column:retainage_percent;type:numeric"`
	PreviousCertificates decimal.Decimal         `json:"previous_certificates" gorm:"column:previous_certificates;type:numeric"`
	CurrentPaymentDue    decimal.Decimal         `json:"current_payment_due" gorm:"column:current_payment_due;type:numeric"`
	DrawRequestStatus    types.DrawRequestStatus `json:"draw_request_status" gorm:"column:draw_request_status"`
	types.BaseModel
}

func (DrawRequest) TableName() string {
	return "draw_requests"
}

func (d *DrawRequest) GetID() string {
	return d.ID
}

func (d *DrawRequest) GetBaseModel() *types.BaseModel {
	return &d.BaseModel
}

// Retainage returns the amount withheld from this draw.
func (d *DrawRequest) Retainage() decimal.Decimal {
	gross := d.WorkCompleted.Add(d.MaterialsStored)
	return gross.Mul(d.RetainagePercent).Div(decimal.NewFromInt(100))
}

// Recalculate derives the current payment due:
// completed and stored work, less retainage, less everything already
// certified on previous draws.
func (d *DrawRequest) Recalculate() {
	gross := d.WorkCompleted.Add(d.MaterialsStored)
	retainage := gross.Mul(d.RetainagePercent).Div(decimal.NewFromInt(100))
	d.CurrentPaymentDue = gross.Sub(retainage).Sub(d.PreviousCertificates)
}

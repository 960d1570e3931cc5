package invoice

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/siteledger/siteledger/internal/types"
)

type Invoice struct {
	ID            string              `json:"id" gorm:"primaryKey;column:id"`
	JobID         string              `json:"job_id" gorm:"column:job_id;index"`
	VendorID      string              `json:"vendor_id" gorm:"column:vendor_id;index"`
	Number        string              `json:"number" gorm:"column:number"`
	Amount        decimal.Decimal     `json:"amount" gorm:"column:amount;type:numeric"`
	AmountPaid    decimal.Decimal     `json:"amount_paid" gorm:"column:amount_paid;type:numeric"`
	DueDate       *time.Time          `json:"due_date,omitempty" gorm:"column:due_date"`
	PaidAt        *time.Time          `json:"paid_at,omitempty" gorm:"column:paid_at"`
	Notes         string              `json:"notes" gorm:"column:notes"`
	InvoiceStatus types.InvoiceStatus `json:"invoice_status" gorm:"column:invoice_status"`
	types.BaseModel
}

func (Invoice) TableName() string {
	return "invoices"
}

func (i *Invoice) GetID() string {
	return i.ID
}

func (i *Invoice) GetBaseModel() *types.BaseModel {
	return &i.BaseModel
}

// IsOverdue reports whether the invoice is unpaid past its due date
func (i *Invoice) IsOverdue(now time.Time) bool {
	return i.InvoiceStatus.IsOpen() && i.DueDate != nil && i.DueDate.Before(now)
}

// BalanceDue is the outstanding amount
func (i *Invoice) BalanceDue() decimal.Decimal {
	return i.Amount.Sub(i.AmountPaid)
}

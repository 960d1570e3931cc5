package purchaseorder

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/siteledger/siteledger/internal/types"
)

type PurchaseOrder struct {
	ID                  string                    `json:"id" gorm:"primaryKey;column:id"`
	JobID               string                    `json:"job_id" gorm:"column:job_id;index"`
	VendorID            string                    `json:"vendor_id" gorm:"column:vendor_id;index"`
	Number              string                    `json:"number" gorm:"column:number"`
	Description         string                    `json:"description" gorm:"column:description"`
	Amount              decimal.Decimal           `json:"amount" gorm:"column:amount;type:numeric"`
	IssuedAt            *time.Time                `json:"issued_at,omitempty" gorm:"column:issued_at"`
	PurchaseOrderStatus types.PurchaseOrderStatus `json:"purchase_order_status" gorm:"column:purchase_order_status"`
	types.BaseModel
}

func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

func (p *PurchaseOrder) GetID() string {
	return p.ID
}

func (p *PurchaseOrder) GetBaseModel() *types.BaseModel {
	return &p.BaseModel
}

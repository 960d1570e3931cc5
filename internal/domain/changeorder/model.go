package changeorder

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/siteledger/siteledger/internal/types"
)

type ChangeOrder struct {
	ID                  string                  `json:"id" gorm:"primaryKey;column:id"`
	JobID               string                  `json:"job_id" gorm:"column:job_id;index"`
	Number              string                  `json:"number" gorm:"column:number"`
	Title               string                  `json:"title" gorm:"column:title"`
	Description         string                  `json:"description" gorm:"column:description"`
	Reason              string                  `json:"reason" gorm:"column:reason"`
	Amount              decimal.Decimal         `json:"amount" gorm:"column:amount;type:numeric"`
	CostImpact          *decimal.Decimal        `json:"cost_impact,omitempty" gorm:"column:cost_impact;type:numeric"`
	ScheduleImpactDays  *int                    `json:"schedule_impact_days,omitempty" gorm:"column:schedule_impact_days"`
	ApprovedAt          *time.Time              `json:"approved_at,omitempty" gorm:"column:approved_at"`
	ChangeOrderStatus   types.ChangeOrderStatus `json:"change_order_status" gorm:"column:change_order_status"`
	types.BaseModel
}

func (ChangeOrder) TableName() string {
	return "change_orders"
}

func (c *ChangeOrder) GetID() string {
	return c.ID
}

func (c *ChangeOrder) GetBaseModel() *types.BaseModel {
	return &c.BaseModel
}

package punchitem

import (
	"time"

	"github.com/siteledger/siteledger/internal/types"
)

type PunchItem struct {
	ID              string                `json:"id" gorm:"primaryKey;column:id"`
	JobID           string                `json:"job_id" gorm:"column:job_id;index"`
	Title           string                `json:"title" gorm:"column:title"`
	Description     string                `json:"description" gorm:"column:description"`
	Location        string                `json:"location" gorm:"column:location"`
	Trade           string                `json:"trade" gorm:"column:trade"`
	AssignedVendorID string               `json:"assigned_vendor_id" gorm:"column:assigned_vendor_id"`
	DueDate         *time.Time            `json:"due_date,omitempty" gorm:"column:due_date"`
	CompletedAt     *time.Time            `json:"completed_at,omitempty" gorm:"column:completed_at"`
	PunchItemStatus types.PunchItemStatus `json:"punch_item_status" gorm:"column:punch_item_status"`
	types.BaseModel
}

func (PunchItem) TableName() string {
	return "punch_items"
}

func (p *PunchItem) GetID() string {
	return p.ID
}

func (p *PunchItem) GetBaseModel() *types.BaseModel {
	return &p.BaseModel
}

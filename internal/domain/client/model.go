package client

import (
	"github.com/siteledger/siteledger/internal/types"
)

type Client struct {
	ID          string `json:"id" gorm:"primaryKey;column:id"`
	Name        string `json:"name" gorm:"column:name"`
	ContactName string `json:"contact_name,omitempty" gorm:"column:contact_name"`
	Email       string `json:"email,omitempty" gorm:"column:email"`
	Phone       string `json:"phone,omitempty" gorm:"column:phone"`
	Address     string `json:"address,omitempty" gorm:"column:address"`
	Notes       string `json:"notes,omitempty" gorm:"column:notes"`
	types.BaseModel
}

func (Client) TableName() string {
	return "clients"
}

func (c *Client) GetID() string {
	return c.ID
}

func (c *Client) GetBaseModel() *types.BaseModel {
	return &c.BaseModel
}

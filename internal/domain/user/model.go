package user

import (
	"github.com/siteledger/siteledger/internal/types"
)

type User struct {
	ID           string `json:"id" gorm:"primaryKey;column:id"`
	Email        string `json:"email" gorm:"column:email;index"`
	Name         string `json:"name,omitempty" gorm:"column:name"`
	PasswordHash string `json:"-" gorm:"column:password_hash"`
	types.BaseModel
}

func (User) TableName() string {
	return "users"
}

func (u *User) GetID() string {
	return u.ID
}

func (u *User) GetBaseModel() *types.BaseModel {
	return &u.BaseModel
}

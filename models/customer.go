package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Customer struct {
	gorm.Model

	Phone         string          `gorm:"uniqueIndex;size:16" json:"phone"`
	Name          string          `gorm:"size:64" json:"name"`
	PasswordHash  string          `gorm:"size:72" json:"-"`
	WalletBalance decimal.Decimal `gorm:"type:numeric(14,2);default:0" json:"wallet_balance"`
	BonusBalance  decimal.Decimal `gorm:"type:numeric(14,2);default:0" json:"bonus_balance"`
	IsActive      bool            `gorm:"default:true" json:"is_active"`

	Orders       []Order             `gorm:"foreignKey:CustomerID"`
	Transactions []WalletTransaction `gorm:"foreignKey:CustomerID"`
}

package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Withdrawal struct {
	gorm.Model

	CustomerID   uint            `gorm:"index" json:"customer_id"`
	BankDetailID uint            `gorm:"index" json:"bank_detail_id"`
	Amount       decimal.Decimal `gorm:"type:numeric(14,2)" json:"amount"`
	Status       string          `gorm:"size:16;default:pending;index" json:"status"`
	RefID        string          `gorm:"size:64" json:"ref_id"`
	Note         string          `gorm:"size:255" json:"note"`
}

type BankDetail struct {
	gorm.Model

	CustomerID    uint   `gorm:"uniqueIndex" json:"customer_id"`
	AccountHolder string `gorm:"size:64" json:"account_holder"`
	AccountNumber string `gorm:"size:32" json:"account_number"`
	BankName      string `gorm:"size:64" json:"bank_name"`
	IFSC          string `gorm:"size:16" json:"ifsc"`
}

package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type WalletTransaction struct {
	gorm.Model

	CustomerID    uint            `gorm:"index" json:"customer_id"`
	TrxType       string          `gorm:"size:16" json:"trx_type"`
	Amount        decimal.Decimal `gorm:"type:numeric(14,2)" json:"amount"`
	BalanceBefore decimal.Decimal `gorm:"type:numeric(14,2)" json:"balance_before"`
	BalanceAfter  decimal.Decimal `gorm:"type:numeric(14,2)" json:"balance_after"`
	BonusBefore   decimal.Decimal `gorm:"type:numeric(14,2)" json:"bonus_before"`
	BonusAfter    decimal.Decimal `gorm:"type:numeric(14,2)" json:"bonus_after"`
	Note          string          `gorm:"size:255" json:"note"`
	RefID         string          `gorm:"size:64;index" json:"ref_id"`
}

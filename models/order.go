package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model

	RefID       string          `gorm:"size:64;uniqueIndex" json:"ref_id"`
	CustomerID  uint            `gorm:"index" json:"customer_id"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(14,2)" json:"total_amount"`
	WalletPaid  decimal.Decimal `gorm:"type:numeric(14,2)" json:"wallet_paid"`
	BonusPaid   decimal.Decimal `gorm:"type:numeric(14,2)" json:"bonus_paid"`
	Status      string          `gorm:"size:16;index" json:"status"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

type OrderItem struct {
	gorm.Model

	OrderID    uint            `gorm:"index" json:"order_id"`
	GameID     uint            `gorm:"index" json:"game_id"`
	GameName   string          `gorm:"size:128" json:"game_name"`
	Provider   string          `gorm:"size:64" json:"provider"`
	SlotTimeID uint            `json:"slot_time_id"`
	SlotTime   string          `gorm:"size:16" json:"slot_time"`
	Digits     string          `gorm:"size:16" json:"digits"`
	Price      decimal.Decimal `gorm:"type:numeric(14,2)" json:"price"`
	Quantity   int             `json:"quantity"`
	WinAmount  decimal.Decimal `gorm:"type:numeric(14,2)" json:"win_amount"`
}

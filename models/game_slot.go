package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GameSlot is one playable game inside one slot window, as flattened from a
// provider schedule. GroupKey carries the upstream "label_price_winAmount"
// composite key the games are grouped under.
type GameSlot struct {
	gorm.Model

	ProviderID uint            `gorm:"index" json:"provider_id"`
	GroupKey   string          `gorm:"size:128;index" json:"group_key"`
	GameID     uint            `gorm:"index" json:"game_id"`
	GameName   string          `gorm:"size:128" json:"game_name"`
	SlotTimeID uint            `gorm:"index" json:"slot_time_id"`
	SlotTime   string          `gorm:"size:16" json:"slot_time"`
	Price      decimal.Decimal `gorm:"type:numeric(14,2)" json:"price"`
	WinAmount  decimal.Decimal `gorm:"type:numeric(14,2)" json:"win_amount"`
	GameDate   datatypes.Date  `gorm:"index" json:"game_date"`
}

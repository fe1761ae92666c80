package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type DrawResult struct {
	gorm.Model

	ProviderID    uint           `gorm:"index:idx_draw,unique" json:"provider_id"`
	SlotTimeID    uint           `gorm:"index:idx_draw,unique" json:"slot_time_id"`
	GameDate      datatypes.Date `gorm:"index:idx_draw,unique" json:"game_date"`
	SlotTime      string         `gorm:"size:16" json:"slot_time"`
	WinningDigits string         `gorm:"size:16" json:"winning_digits"`
}

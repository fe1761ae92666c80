package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Provider struct {
	gorm.Model

	Code         string `gorm:"uniqueIndex;size:32" json:"code"`
	Name         string `gorm:"size:64" json:"name"`
	BaseURL      string `gorm:"size:255" json:"-"`
	CloseMinutes int    `gorm:"default:10" json:"close_minutes"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`

	Slots []GameSlot `gorm:"foreignKey:ProviderID"`
}

// ScheduleSnapshot keeps the last raw upstream payload per provider fetch,
// so a bad grouping or pricing row can be traced back to what the operator
// actually sent.
type ScheduleSnapshot struct {
	gorm.Model

	ProviderID uint           `gorm:"index"`
	Payload    datatypes.JSON `json:"payload"`
	FetchedAt  time.Time      `gorm:"index" json:"fetched_at"`
}

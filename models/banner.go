package models

import "gorm.io/gorm"

type Banner struct {
	gorm.Model

	Title    string `gorm:"size:64" json:"title"`
	ImageURL string `gorm:"size:255" json:"image_url"`
	Position int    `gorm:"default:0" json:"position"`
	IsActive bool   `gorm:"default:true" json:"is_active"`
}

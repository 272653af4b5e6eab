package models

import "time"

// Item is a catalog entry. Line items copy its name, description and price
// when an estimate is written, so catalog edits never touch existing estimates.
type Item struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"not null;index"`
	Description string  `gorm:"not null;default:''"`
	Price       float64 `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

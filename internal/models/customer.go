package models

import "time"

type Customer struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null;index"`
	Email     string `gorm:"not null;default:''"`
	Phone     string `gorm:"not null;default:''"`
	FirstName string `gorm:"not null;default:''"`
	LastName  string `gorm:"not null;default:''"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

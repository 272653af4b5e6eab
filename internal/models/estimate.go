package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusDraft = "Draft"
	StatusSaved = "Saved"

	TypeDraft  = "draft"
	TypeActive = "active"
)

type Estimate struct {
	ID         uint       `gorm:"primaryKey"`
	Number     string     `gorm:"uniqueIndex;not null"`
	Date       string     `gorm:"not null;index"`
	ValidUntil string     `gorm:"not null;default:''"`
	Status     string     `gorm:"not null;index"`
	Type       string     `gorm:"not null;index"`
	Notes      string     `gorm:"not null;default:''"`
	CustomerID *uint      `gorm:"index"`
	Customer   *Customer  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	LineItems  []LineItem `gorm:"foreignKey:EstimateID;constraint:OnDelete:CASCADE;"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type LineItem struct {
	ID          uint    `gorm:"primaryKey"`
	EstimateID  uint    `gorm:"not null;index"`
	ItemID      *uint   `gorm:"index"`
	Item        *Item   `gorm:"constraint:OnDelete:SET NULL;"`
	Name        string  `gorm:"not null"`
	Description string  `gorm:"not null;default:''"`
	Quantity    int     `gorm:"not null"`
	Price       float64 `gorm:"type:decimal(12,2);not null;default:0"`
}

// TypeForStatus returns the type paired with a status by the status transition.
func TypeForStatus(status string) string {
	if status == StatusDraft {
		return TypeDraft
	}
	return TypeActive
}

// Subtotal is price × quantity.
func (li LineItem) Subtotal() decimal.Decimal {
	return decimal.NewFromFloat(li.Price).Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Total sums the subtotals of the loaded line items. It is never persisted.
func (e Estimate) Total() decimal.Decimal {
	total := decimal.Zero
	for _, li := range e.LineItems {
		total = total.Add(li.Subtotal())
	}
	return total
}

// CustomerName is the denormalized name shown in listings, empty when no
// customer is linked.
func (e Estimate) CustomerName() string {
	if e.Customer == nil {
		return ""
	}
	return e.Customer.Name
}

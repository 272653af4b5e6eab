package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	EventCreated       = "created"
	EventUpdated       = "updated"
	EventStatusChanged = "status_changed"
	EventDeleted       = "deleted"
)

// EstimateEvent is an append-only audit row. It carries no foreign key so the
// trail survives deletion of the estimate it describes.
type EstimateEvent struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	EstimateID     uint      `gorm:"not null;index"`
	EstimateNumber string    `gorm:"not null;index"`
	Action         string    `gorm:"not null"`
	Details        datatypes.JSON
	RequestID      string
	CreatedAt      time.Time
}

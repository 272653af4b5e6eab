package repository

import (
	"context"

	"wave-estimates-backend/internal/models"

	"github.com/google/uuid"
)

// AddEvent appends an audit row. Call it on the transaction-bound repository
// so the event commits or rolls back with the change it records.
func (r *EstimateRepository) AddEvent(ctx context.Context, ev *models.EstimateEvent) error {
	if ev.ID == uuid.Nil {
		ev.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(ev).Error
}

// ListEvents returns the audit trail of an estimate, oldest first.
func (r *EstimateRepository) ListEvents(ctx context.Context, estimateID uint) ([]models.EstimateEvent, error) {
	var events []models.EstimateEvent
	err := r.db.WithContext(ctx).
		Where("estimate_id = ?", estimateID).
		Order("created_at ASC").
		Find(&events).Error
	return events, err
}

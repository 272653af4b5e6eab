package estimate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"wave-estimates-backend/internal/dto/request"
	"wave-estimates-backend/internal/middleware"
	"wave-estimates-backend/internal/models"
	"wave-estimates-backend/internal/repository"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	dateLayout   = "2006-01-02"
	validityDays = 30
)

type Service struct {
	repo *repository.EstimateRepository
	now  func() time.Time
}

func NewService(repo *repository.EstimateRepository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) List(ctx context.Context, q request.EstimateListQuery) ([]models.Estimate, error) {
	estimates, err := s.repo.List(ctx, repository.EstimateFilter{
		Status:   q.Status,
		Type:     q.Type,
		Customer: q.Customer,
		Search:   q.Search,
		DateFrom: q.DateFrom,
		DateTo:   q.DateTo,
	})
	if err != nil {
		return nil, fmt.Errorf("list estimates: %w", err)
	}
	return estimates, nil
}

// Get resolves idOrNumber as a numeric id first and falls back to the
// business number.
func (s *Service) Get(ctx context.Context, idOrNumber string) (*models.Estimate, error) {
	return resolve(ctx, s.repo, idOrNumber)
}

func resolve(ctx context.Context, repo *repository.EstimateRepository, idOrNumber string) (*models.Estimate, error) {
	if id, err := strconv.ParseUint(idOrNumber, 10, 64); err == nil {
		est, err := repo.GetByID(ctx, uint(id))
		if err == nil {
			return est, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	est, err := repo.GetByNumber(ctx, idOrNumber)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEstimateNotFound
	}
	if err != nil {
		return nil, err
	}
	return est, nil
}

func (s *Service) Create(ctx context.Context, req request.EstimateCreateRequest) (*models.Estimate, error) {
	today := s.now()

	est := models.Estimate{
		Date:       today.Format(dateLayout),
		ValidUntil: today.AddDate(0, 0, validityDays).Format(dateLayout),
		Status:     req.ResolveStatus(),
		Type:       req.ResolveType(),
		CustomerID: req.CustomerID,
		Notes:      req.Notes,
		LineItems:  request.ToLineItems(req.Items),
	}
	if req.Date != nil && *req.Date != "" {
		est.Date = *req.Date
	}
	if req.ValidUntil != nil && *req.ValidUntil != "" {
		est.ValidUntil = *req.ValidUntil
	}

	err := s.repo.Transaction(ctx, func(tx *repository.EstimateRepository) error {
		if req.Number != nil && *req.Number != "" {
			est.Number = *req.Number
		} else {
			number, err := NextNumber(ctx, tx)
			if err != nil {
				return err
			}
			est.Number = number
		}

		if err := tx.Create(ctx, &est); err != nil {
			return err
		}
		return record(ctx, tx, &est, models.EventCreated, map[string]interface{}{
			"status":     est.Status,
			"type":       est.Type,
			"line_items": len(est.LineItems),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("create estimate: %w", err)
	}

	log.Printf("[estimate][service] created id=%d number=%s lines=%d", est.ID, est.Number, len(est.LineItems))
	return s.reload(ctx, est.ID)
}

// Update applies the non-nil fields of req to the estimate with the given id.
// A present items list replaces every line.
func (s *Service) Update(ctx context.Context, id uint, req request.EstimateUpdateRequest) (*models.Estimate, error) {
	changes := req.Changes()

	err := s.repo.Transaction(ctx, func(tx *repository.EstimateRepository) error {
		est, err := tx.FindByID(ctx, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEstimateNotFound
		}
		if err != nil {
			return err
		}

		if err := tx.Update(ctx, id, changes); err != nil {
			return err
		}

		details := map[string]interface{}{"fields": fieldNames(changes)}
		if req.ReplacesItems() {
			lines := request.ToLineItems(req.Items)
			if err := tx.ReplaceLineItems(ctx, id, lines); err != nil {
				return err
			}
			details["line_items"] = len(lines)
		}
		return record(ctx, tx, est, models.EventUpdated, details)
	})
	if err != nil {
		if errors.Is(err, ErrEstimateNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update estimate %d: %w", id, err)
	}

	log.Printf("[estimate][service] updated id=%d fields=%d items_replaced=%t", id, len(changes), req.ReplacesItems())
	return s.reload(ctx, id)
}

// UpdateStatus sets the status and derives the type from it: "Draft" keeps
// the estimate a draft, anything else makes it active.
func (s *Service) UpdateStatus(ctx context.Context, idOrNumber string, req request.StatusUpdateRequest) (*models.Estimate, error) {
	var id uint

	err := s.repo.Transaction(ctx, func(tx *repository.EstimateRepository) error {
		est, err := resolve(ctx, tx, idOrNumber)
		if err != nil {
			return err
		}
		id = est.ID

		previous := est.Status
		kind := models.TypeForStatus(req.Status)
		if err := tx.Update(ctx, est.ID, map[string]interface{}{"status": req.Status, "type": kind}); err != nil {
			return err
		}
		return record(ctx, tx, est, models.EventStatusChanged, map[string]interface{}{
			"from": previous,
			"to":   req.Status,
			"type": kind,
		})
	})
	if err != nil {
		if errors.Is(err, ErrEstimateNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update estimate status %s: %w", idOrNumber, err)
	}

	log.Printf("[estimate][service] status id=%d status=%s", id, req.Status)
	return s.reload(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	err := s.repo.Transaction(ctx, func(tx *repository.EstimateRepository) error {
		est, err := tx.FindByID(ctx, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEstimateNotFound
		}
		if err != nil {
			return err
		}

		lines, err := tx.CountLineItems(ctx, id)
		if err != nil {
			return err
		}
		if err := tx.Delete(ctx, id); err != nil {
			return err
		}
		return record(ctx, tx, est, models.EventDeleted, map[string]interface{}{"line_items": lines})
	})
	if err != nil {
		if errors.Is(err, ErrEstimateNotFound) {
			return err
		}
		return fmt.Errorf("delete estimate %d: %w", id, err)
	}

	log.Printf("[estimate][service] deleted id=%d", id)
	return nil
}

// Events returns the audit trail of an estimate, oldest first.
func (s *Service) Events(ctx context.Context, idOrNumber string) ([]models.EstimateEvent, error) {
	est, err := resolve(ctx, s.repo, idOrNumber)
	if err != nil {
		return nil, err
	}
	events, err := s.repo.ListEvents(ctx, est.ID)
	if err != nil {
		return nil, fmt.Errorf("list events for estimate %d: %w", est.ID, err)
	}
	return events, nil
}

func (s *Service) reload(ctx context.Context, id uint) (*models.Estimate, error) {
	est, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEstimateNotFound
	}
	return est, err
}

func record(ctx context.Context, tx *repository.EstimateRepository, est *models.Estimate, action string, details map[string]interface{}) error {
	raw, err := json.Marshal(details)
	if err != nil {
		return err
	}
	return tx.AddEvent(ctx, &models.EstimateEvent{
		EstimateID:     est.ID,
		EstimateNumber: est.Number,
		Action:         action,
		Details:        datatypes.JSON(raw),
		RequestID:      middleware.RequestIDFromContext(ctx),
	})
}

func fieldNames(changes map[string]interface{}) []string {
	names := make([]string, 0, len(changes))
	for _, f := range []string{"date", "valid_until", "status", "type", "customer_id", "notes"} {
		if _, ok := changes[f]; ok {
			names = append(names, f)
		}
	}
	return names
}

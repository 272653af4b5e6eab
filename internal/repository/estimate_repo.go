package repository

import (
	"context"
	"database/sql"

	"wave-estimates-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EstimateFilter narrows List. Empty fields are ignored; the rest are ANDed.
type EstimateFilter struct {
	Status   string
	Type     string
	Customer string // exact customer name
	Search   string // substring of number or customer name
	DateFrom string
	DateTo   string
}

type EstimateRepository struct {
	db *gorm.DB
}

func NewEstimateRepository(db *gorm.DB) *EstimateRepository {
	return &EstimateRepository{db: db}
}

// Transaction runs fn with a repository bound to a single database
// transaction. Returning an error from fn rolls everything back.
func (r *EstimateRepository) Transaction(ctx context.Context, fn func(tx *EstimateRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&EstimateRepository{db: tx})
	})
}

func withDetails(q *gorm.DB) *gorm.DB {
	return q.Preload("Customer").
		Preload("LineItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("line_items.id ASC")
		})
}

func (r *EstimateRepository) List(ctx context.Context, f EstimateFilter) ([]models.Estimate, error) {
	var estimates []models.Estimate

	q := r.db.WithContext(ctx).Model(&models.Estimate{}).Select("estimates.*")

	if f.Status != "" {
		q = q.Where("estimates.status = ?", f.Status)
	}
	if f.Type != "" {
		q = q.Where("estimates.type = ?", f.Type)
	}

	// A customer filter needs the inner join and drops customer-less
	// estimates; search alone keeps them through the outer join.
	switch {
	case f.Customer != "":
		q = q.Joins("JOIN customers ON customers.id = estimates.customer_id").
			Where("customers.name = ?", f.Customer)
	case f.Search != "":
		q = q.Joins("LEFT JOIN customers ON customers.id = estimates.customer_id")
	}
	if f.Search != "" {
		like := containsPattern(f.Search)
		q = q.Where("(LOWER(estimates.number) LIKE ? OR LOWER(customers.name) LIKE ?)", like, like)
	}

	if f.DateFrom != "" {
		q = q.Where("estimates.date >= ?", f.DateFrom)
	}
	if f.DateTo != "" {
		q = q.Where("estimates.date <= ?", f.DateTo)
	}

	err := withDetails(q).
		Order("estimates.date DESC").
		Order("estimates.id DESC").
		Find(&estimates).Error
	return estimates, err
}

// GetByID loads an estimate with its customer and line items.
func (r *EstimateRepository) GetByID(ctx context.Context, id uint) (*models.Estimate, error) {
	var est models.Estimate
	if err := withDetails(r.db.WithContext(ctx)).First(&est, "estimates.id = ?", id).Error; err != nil {
		return nil, err
	}
	return &est, nil
}

// GetByNumber loads an estimate by its business number.
func (r *EstimateRepository) GetByNumber(ctx context.Context, number string) (*models.Estimate, error) {
	var est models.Estimate
	if err := withDetails(r.db.WithContext(ctx)).First(&est, "estimates.number = ?", number).Error; err != nil {
		return nil, err
	}
	return &est, nil
}

// FindByID loads the bare estimate row without relations.
func (r *EstimateRepository) FindByID(ctx context.Context, id uint) (*models.Estimate, error) {
	var est models.Estimate
	if err := r.db.WithContext(ctx).First(&est, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &est, nil
}

// MaxNumber returns the store's MAX(number), which for text columns is the
// lexicographic maximum. It is empty when no estimates exist.
func (r *EstimateRepository) MaxNumber(ctx context.Context) (string, error) {
	var maxNumber sql.NullString
	row := r.db.WithContext(ctx).Model(&models.Estimate{}).Select("MAX(number)").Row()
	if err := row.Scan(&maxNumber); err != nil {
		return "", err
	}
	return maxNumber.String, nil
}

// Create inserts the estimate row and then its line items.
func (r *EstimateRepository) Create(ctx context.Context, est *models.Estimate) error {
	lines := est.LineItems
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(est).Error; err != nil {
		return err
	}
	return r.insertLines(ctx, est.ID, lines)
}

// Update writes the given columns, including zero values.
func (r *EstimateRepository) Update(ctx context.Context, id uint, changes map[string]interface{}) error {
	if len(changes) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.Estimate{ID: id}).Updates(changes).Error
}

// ReplaceLineItems deletes every line of the estimate and inserts lines in
// their place. Line ids are not preserved.
func (r *EstimateRepository) ReplaceLineItems(ctx context.Context, estimateID uint, lines []models.LineItem) error {
	if err := r.db.WithContext(ctx).Where("estimate_id = ?", estimateID).Delete(&models.LineItem{}).Error; err != nil {
		return err
	}
	return r.insertLines(ctx, estimateID, lines)
}

// Delete removes the estimate and its line items.
func (r *EstimateRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Where("estimate_id = ?", id).Delete(&models.LineItem{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&models.Estimate{}, id).Error
}

// CountLineItems counts the stored lines of an estimate.
func (r *EstimateRepository) CountLineItems(ctx context.Context, estimateID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.LineItem{}).Where("estimate_id = ?", estimateID).Count(&n).Error
	return n, err
}

func (r *EstimateRepository) insertLines(ctx context.Context, estimateID uint, lines []models.LineItem) error {
	if len(lines) == 0 {
		return nil
	}
	for i := range lines {
		lines[i].ID = 0
		lines[i].EstimateID = estimateID
	}
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(&lines).Error
}

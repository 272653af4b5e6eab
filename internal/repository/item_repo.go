package repository

import (
	"context"

	"wave-estimates-backend/internal/models"

	"gorm.io/gorm"
)

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// List returns catalog items ordered by id, optionally filtered by a name substring.
func (r *ItemRepository) List(ctx context.Context, search string) ([]models.Item, error) {
	var items []models.Item
	q := r.db.WithContext(ctx).Model(&models.Item{})
	if search != "" {
		q = q.Where("LOWER(name) LIKE ?", containsPattern(search))
	}
	err := q.Order("id ASC").Find(&items).Error
	return items, err
}

func (r *ItemRepository) GetByID(ctx context.Context, id uint) (*models.Item, error) {
	var item models.Item
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepository) Create(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

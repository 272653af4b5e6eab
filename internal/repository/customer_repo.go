package repository

import (
	"context"

	"wave-estimates-backend/internal/models"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// List returns customers ordered by id, optionally filtered by a name substring.
func (r *CustomerRepository) List(ctx context.Context, search string) ([]models.Customer, error) {
	var customers []models.Customer
	q := r.db.WithContext(ctx).Model(&models.Customer{})
	if search != "" {
		q = q.Where("LOWER(name) LIKE ?", containsPattern(search))
	}
	err := q.Order("id ASC").Find(&customers).Error
	return customers, err
}

func (r *CustomerRepository) GetByID(ctx context.Context, id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

package catalog

import (
	"context"
	"errors"
	"fmt"
	"log"

	"wave-estimates-backend/internal/dto/request"
	"wave-estimates-backend/internal/models"
	"wave-estimates-backend/internal/repository"

	"gorm.io/gorm"
)

type CustomerService struct {
	repo *repository.CustomerRepository
}

func NewCustomerService(repo *repository.CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

func (s *CustomerService) List(ctx context.Context, search string) ([]models.Customer, error) {
	customers, err := s.repo.List(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

func (s *CustomerService) Get(ctx context.Context, id uint) (*models.Customer, error) {
	customer, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get customer %d: %w", id, err)
	}
	return customer, nil
}

func (s *CustomerService) Create(ctx context.Context, req request.CustomerCreateRequest) (*models.Customer, error) {
	customer := &models.Customer{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}

	log.Printf("[customer][service] created id=%d", customer.ID)
	return customer, nil
}

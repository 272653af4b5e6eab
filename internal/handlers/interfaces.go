package handler

import (
	"context"

	"wave-estimates-backend/internal/dto/request"
	"wave-estimates-backend/internal/models"
	"wave-estimates-backend/internal/services/catalog"
	"wave-estimates-backend/internal/services/estimate"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_services.go -package=mocks

type IEstimateService interface {
	List(ctx context.Context, q request.EstimateListQuery) ([]models.Estimate, error)
	Get(ctx context.Context, idOrNumber string) (*models.Estimate, error)
	Create(ctx context.Context, req request.EstimateCreateRequest) (*models.Estimate, error)
	Update(ctx context.Context, id uint, req request.EstimateUpdateRequest) (*models.Estimate, error)
	UpdateStatus(ctx context.Context, idOrNumber string, req request.StatusUpdateRequest) (*models.Estimate, error)
	Delete(ctx context.Context, id uint) error
	Events(ctx context.Context, idOrNumber string) ([]models.EstimateEvent, error)
}

type ICustomerService interface {
	List(ctx context.Context, search string) ([]models.Customer, error)
	Get(ctx context.Context, id uint) (*models.Customer, error)
	Create(ctx context.Context, req request.CustomerCreateRequest) (*models.Customer, error)
}

type IItemService interface {
	List(ctx context.Context, search string) ([]models.Item, error)
	Get(ctx context.Context, id uint) (*models.Item, error)
	Create(ctx context.Context, req request.ItemCreateRequest) (*models.Item, error)
}

var (
	_ IEstimateService = (*estimate.Service)(nil)
	_ ICustomerService = (*catalog.CustomerService)(nil)
	_ IItemService     = (*catalog.ItemService)(nil)
)

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

type ItemService struct {
	repo *repository.ItemRepository
}

func NewItemService(repo *repository.ItemRepository) *ItemService {
	return &ItemService{repo: repo}
}

func (s *ItemService) List(ctx context.Context, search string) ([]models.Item, error) {
	items, err := s.repo.List(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

func (s *ItemService) Get(ctx context.Context, id uint) (*models.Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get item %d: %w", id, err)
	}
	return item, nil
}

func (s *ItemService) Create(ctx context.Context, req request.ItemCreateRequest) (*models.Item, error) {
	item := &models.Item{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	log.Printf("[item][service] created id=%d", item.ID)
	return item, nil
}

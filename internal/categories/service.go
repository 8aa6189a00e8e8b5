package categories

import (
	"context"
	"time"

	"github.com/stockpilot-erp/stockpilot-erp/internal/shared"
)

// Service coordinates category operations.
type Service struct {
	repo *Repository
	now  func() time.Time
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]Category, error) {
	return s.repo.List(), nil
}

func (s *Service) Get(ctx context.Context, id int64) (Category, error) {
	cat, ok := s.repo.Get(id)
	if !ok {
		return Category{}, &shared.NotFoundError{Resource: "Category"}
	}
	return cat, nil
}

func (s *Service) Create(ctx context.Context, req CreateCategoryRequest) (Category, error) {
	cat := s.repo.Insert(func(id int64) Category {
		return Category{
			ID:          id,
			Name:        req.Name,
			Description: req.Description,
			CreatedAt:   s.now(),
		}
	})
	return cat, nil
}

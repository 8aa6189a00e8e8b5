package inventory

import (
	"context"
	"time"

	"github.com/stockpilot-erp/stockpilot-erp/internal/shared"
)

// ErrNegativeStock is returned when a movement would drive a row's quantity
// below zero and the service is configured to reject that.
var ErrNegativeStock = &shared.ValidationError{Message: "insufficient stock: quantity would go negative"}

// ServiceConfig groups optional settings.
type ServiceConfig struct {
	// AllowNegativeStock keeps the historical behaviour of letting a sale
	// drive quantity below zero. Off means such movements fail.
	AllowNegativeStock bool
}

// Service coordinates inventory operations.
type Service struct {
	repo     *Repository
	allowNeg bool
	now      func() time.Time
}

// NewService builds Service.
func NewService(repo *Repository, cfg ServiceConfig) *Service {
	return &Service{repo: repo, allowNeg: cfg.AllowNegativeStock, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]Item, error) {
	return s.repo.List(), nil
}

func (s *Service) ListByLocation(ctx context.Context, locationID int64) ([]Item, error) {
	return s.repo.ListByLocation(locationID), nil
}

func (s *Service) ListByProduct(ctx context.Context, productID int64) ([]Item, error) {
	return s.repo.ListByProduct(productID), nil
}

func (s *Service) Get(ctx context.Context, id int64) (Item, error) {
	it, ok := s.repo.Get(id)
	if !ok {
		return Item{}, &shared.NotFoundError{Resource: "Inventory"}
	}
	return it, nil
}

// GetItem returns the row for a (product, location) pair.
func (s *Service) GetItem(ctx context.Context, productID, locationID int64) (Item, error) {
	it, ok := s.repo.FindItem(productID, locationID)
	if !ok {
		return Item{}, &shared.NotFoundError{Resource: "Inventory"}
	}
	return it, nil
}

// Create inserts a new row without checking for an existing pair.
func (s *Service) Create(ctx context.Context, req CreateItemRequest) (Item, error) {
	it := s.repo.Insert(func(id int64) Item {
		return Item{
			ID:         id,
			ProductID:  req.ProductID,
			LocationID: req.LocationID,
			Quantity:   req.Quantity,
			UpdatedAt:  s.now(),
		}
	})
	return it, nil
}

// Upsert adds the submitted quantity to an existing (product, location) row,
// or creates the row when none exists. The second return reports whether a
// new row was created.
func (s *Service) Upsert(ctx context.Context, req CreateItemRequest) (Item, bool, error) {
	if existing, ok := s.repo.FindItem(req.ProductID, req.LocationID); ok {
		it, err := s.AdjustQuantity(ctx, existing.ID, req.Quantity)
		if err != nil {
			return Item{}, false, err
		}
		return it, false, nil
	}
	it, err := s.Create(ctx, req)
	if err != nil {
		return Item{}, false, err
	}
	return it, true, nil
}

// Update merges provided fields over the stored row and re-stamps updatedAt.
func (s *Service) Update(ctx context.Context, id int64, req UpdateItemRequest) (Item, error) {
	it, ok := s.repo.Update(id, func(row Item) Item {
		if req.ProductID != nil {
			row.ProductID = *req.ProductID
		}
		if req.LocationID != nil {
			row.LocationID = *req.LocationID
		}
		if req.Quantity != nil {
			row.Quantity = *req.Quantity
		}
		row.UpdatedAt = s.now()
		return row
	})
	if !ok {
		return Item{}, &shared.NotFoundError{Resource: "Inventory"}
	}
	return it, nil
}

// AdjustQuantity applies a signed delta to the row's quantity.
func (s *Service) AdjustQuantity(ctx context.Context, id int64, delta int) (Item, error) {
	current, ok := s.repo.Get(id)
	if !ok {
		return Item{}, &shared.NotFoundError{Resource: "Inventory"}
	}
	if !s.allowNeg && current.Quantity+delta < 0 {
		return Item{}, ErrNegativeStock
	}
	it, ok := s.repo.Update(id, func(row Item) Item {
		row.Quantity += delta
		row.UpdatedAt = s.now()
		return row
	})
	if !ok {
		return Item{}, &shared.NotFoundError{Resource: "Inventory"}
	}
	return it, nil
}

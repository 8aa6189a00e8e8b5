package products

import (
	"context"
	"time"

	"github.com/stockpilot-erp/stockpilot-erp/internal/shared"
)

// Service coordinates product operations.
type Service struct {
	repo *Repository
	now  func() time.Time
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.repo.List(), nil
}

func (s *Service) Get(ctx context.Context, id int64) (Product, error) {
	p, ok := s.repo.Get(id)
	if !ok {
		return Product{}, &shared.NotFoundError{Resource: "Product"}
	}
	return p, nil
}

func (s *Service) GetBySku(ctx context.Context, sku string) (Product, error) {
	p, ok := s.repo.FindBySku(sku)
	if !ok {
		return Product{}, &shared.NotFoundError{Resource: "Product"}
	}
	return p, nil
}

func (s *Service) Create(ctx context.Context, req CreateProductRequest) (Product, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	now := s.now()
	p := s.repo.Insert(func(id int64) Product {
		return Product{
			ID:            id,
			Name:          req.Name,
			Sku:           req.Sku,
			Description:   req.Description,
			CategoryID:    req.CategoryID,
			PurchasePrice: req.PurchasePrice,
			SellingPrice:  req.SellingPrice,
			GstRate:       req.GstRate,
			Hsn:           req.Hsn,
			MinStockLevel: req.MinStockLevel,
			ImageURL:      req.ImageURL,
			IsActive:      isActive,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
	})
	return p, nil
}

// Update merges provided fields over the stored record and re-stamps
// updatedAt on every call.
func (s *Service) Update(ctx context.Context, id int64, req UpdateProductRequest) (Product, error) {
	p, ok := s.repo.Update(id, func(pr Product) Product {
		if req.Name != nil {
			pr.Name = *req.Name
		}
		if req.Sku != nil {
			pr.Sku = *req.Sku
		}
		if req.Description != nil {
			pr.Description = req.Description
		}
		if req.CategoryID != nil {
			pr.CategoryID = *req.CategoryID
		}
		if req.PurchasePrice != nil {
			pr.PurchasePrice = *req.PurchasePrice
		}
		if req.SellingPrice != nil {
			pr.SellingPrice = *req.SellingPrice
		}
		if req.GstRate != nil {
			pr.GstRate = *req.GstRate
		}
		if req.Hsn != nil {
			pr.Hsn = req.Hsn
		}
		if req.MinStockLevel != nil {
			pr.MinStockLevel = *req.MinStockLevel
		}
		if req.ImageURL != nil {
			pr.ImageURL = req.ImageURL
		}
		if req.IsActive != nil {
			pr.IsActive = *req.IsActive
		}
		pr.UpdatedAt = s.now()
		return pr
	})
	if !ok {
		return Product{}, &shared.NotFoundError{Resource: "Product"}
	}
	return p, nil
}

package suppliers

import (
	"context"
	"time"

	"github.com/stockpilot-erp/stockpilot-erp/internal/shared"
)

// Service coordinates supplier operations.
type Service struct {
	repo *Repository
	now  func() time.Time
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]Supplier, error) {
	return s.repo.List(), nil
}

func (s *Service) Get(ctx context.Context, id int64) (Supplier, error) {
	sup, ok := s.repo.Get(id)
	if !ok {
		return Supplier{}, &shared.NotFoundError{Resource: "Supplier"}
	}
	return sup, nil
}

func (s *Service) Create(ctx context.Context, req CreateSupplierRequest) (Supplier, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	sup := s.repo.Insert(func(id int64) Supplier {
		return Supplier{
			ID:            id,
			Name:          req.Name,
			ContactPerson: req.ContactPerson,
			Email:         req.Email,
			Phone:         req.Phone,
			Address:       req.Address,
			GstIn:         req.GstIn,
			IsActive:      isActive,
			CreatedAt:     s.now(),
		}
	})
	return sup, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateSupplierRequest) (Supplier, error) {
	sup, ok := s.repo.Update(id, func(sp Supplier) Supplier {
		if req.Name != nil {
			sp.Name = *req.Name
		}
		if req.ContactPerson != nil {
			sp.ContactPerson = req.ContactPerson
		}
		if req.Email != nil {
			sp.Email = req.Email
		}
		if req.Phone != nil {
			sp.Phone = *req.Phone
		}
		if req.Address != nil {
			sp.Address = req.Address
		}
		if req.GstIn != nil {
			sp.GstIn = req.GstIn
		}
		if req.IsActive != nil {
			sp.IsActive = *req.IsActive
		}
		return sp
	})
	if !ok {
		return Supplier{}, &shared.NotFoundError{Resource: "Supplier"}
	}
	return sup, nil
}

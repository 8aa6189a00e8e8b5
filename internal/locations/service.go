package locations

import (
	"context"
	"time"

	"github.com/stockpilot-erp/stockpilot-erp/internal/shared"
)

// Service coordinates location operations.
type Service struct {
	repo *Repository
	now  func() time.Time
}

// NewService builds Service.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]Location, error) {
	return s.repo.List(), nil
}

func (s *Service) Get(ctx context.Context, id int64) (Location, error) {
	loc, ok := s.repo.Get(id)
	if !ok {
		return Location{}, &shared.NotFoundError{Resource: "Location"}
	}
	return loc, nil
}

func (s *Service) Create(ctx context.Context, req CreateLocationRequest) (Location, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	loc := s.repo.Insert(func(id int64) Location {
		return Location{
			ID:        id,
			Name:      req.Name,
			Address:   req.Address,
			City:      req.City,
			State:     req.State,
			Pincode:   req.Pincode,
			IsActive:  isActive,
			CreatedAt: s.now(),
		}
	})
	return loc, nil
}

// Update merges the provided fields over the stored record. Absent fields are
// retained; explicit nulls are treated the same as absent.
func (s *Service) Update(ctx context.Context, id int64, req UpdateLocationRequest) (Location, error) {
	loc, ok := s.repo.Update(id, func(l Location) Location {
		if req.Name != nil {
			l.Name = *req.Name
		}
		if req.Address != nil {
			l.Address = *req.Address
		}
		if req.City != nil {
			l.City = *req.City
		}
		if req.State != nil {
			l.State = *req.State
		}
		if req.Pincode != nil {
			l.Pincode = *req.Pincode
		}
		if req.IsActive != nil {
			l.IsActive = *req.IsActive
		}
		return l
	})
	if !ok {
		return Location{}, &shared.NotFoundError{Resource: "Location"}
	}
	return loc, nil
}

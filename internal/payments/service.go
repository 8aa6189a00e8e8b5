package payments

import (
	"context"
	"time"

	"github.com/stockpilot-erp/stockpilot-erp/internal/shared"
)

// Service coordinates payment operations. Recording a payment never
// transitions the parent transaction's status.
type Service struct {
	repo *Repository
	now  func() time.Time
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]Payment, error) {
	return s.repo.List(), nil
}

func (s *Service) ListByTransaction(ctx context.Context, transactionID int64) ([]Payment, error) {
	return s.repo.ListByTransaction(transactionID), nil
}

func (s *Service) Create(ctx context.Context, req CreatePaymentRequest) (Payment, error) {
	date := s.now()
	if req.Date != nil {
		date = *req.Date
	}
	p := s.repo.Insert(func(id int64) Payment {
		return Payment{
			ID:            id,
			TransactionID: req.TransactionID,
			Date:          date,
			Amount:        req.Amount,
			Method:        req.Method,
			Reference:     req.Reference,
			Notes:         req.Notes,
			Status:        req.Status,
			CreatedAt:     s.now(),
		}
	})
	return p, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdatePaymentRequest) (Payment, error) {
	p, ok := s.repo.Update(id, func(pay Payment) Payment {
		if req.TransactionID != nil {
			pay.TransactionID = *req.TransactionID
		}
		if req.Date != nil {
			pay.Date = *req.Date
		}
		if req.Amount != nil {
			pay.Amount = *req.Amount
		}
		if req.Method != nil {
			pay.Method = *req.Method
		}
		if req.Reference != nil {
			pay.Reference = req.Reference
		}
		if req.Notes != nil {
			pay.Notes = req.Notes
		}
		if req.Status != nil {
			pay.Status = *req.Status
		}
		return pay
	})
	if !ok {
		return Payment{}, &shared.NotFoundError{Resource: "Payment"}
	}
	return p, nil
}

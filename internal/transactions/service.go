package transactions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stockpilot-erp/stockpilot-erp/internal/inventory"
	"github.com/stockpilot-erp/stockpilot-erp/internal/shared"
)

// InventoryPort abstracts the stock mutations the orchestration performs.
type InventoryPort interface {
	GetItem(ctx context.Context, productID, locationID int64) (inventory.Item, error)
	AdjustQuantity(ctx context.Context, id int64, delta int) (inventory.Item, error)
	Create(ctx context.Context, req inventory.CreateItemRequest) (inventory.Item, error)
}

// Service coordinates transaction operations, including the composite
// create that touches headers, lines and inventory in one request.
type Service struct {
	repo      *Repository
	stock     InventoryPort
	validator *shared.Validator
	now       func() time.Time
}

// NewService builds Service.
func NewService(repo *Repository, stock InventoryPort, validator *shared.Validator) *Service {
	return &Service{repo: repo, stock: stock, validator: validator, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]Transaction, error) {
	return s.repo.List(), nil
}

// Get returns the header together with its lines.
func (s *Service) Get(ctx context.Context, id int64) (TransactionWithItems, error) {
	txn, ok := s.repo.Get(id)
	if !ok {
		return TransactionWithItems{}, &shared.NotFoundError{Resource: "Transaction"}
	}
	return TransactionWithItems{Transaction: txn, Items: s.repo.ListItems(id)}, nil
}

// Create persists the header, then each submitted item in order, applying
// stock deltas as it goes. Processing is sequential and not atomic: a
// failure partway through leaves earlier items and inventory updates
// committed. Callers see the error; there is no rollback.
func (s *Service) Create(ctx context.Context, req CreateTransactionRequest, items []CreateTransactionItemRequest) (TransactionWithItems, error) {
	date := s.now()
	if req.Date != nil {
		date = *req.Date
	}
	refNumber := ""
	if req.RefNumber != nil {
		refNumber = *req.RefNumber
	}
	if refNumber == "" {
		refNumber = fmt.Sprintf("TXN-%s", uuid.NewString())
	}
	txn := s.repo.Insert(func(id int64) Transaction {
		return Transaction{
			ID:          id,
			Type:        Type(req.Type),
			Date:        date,
			LocationID:  req.LocationID,
			RefNumber:   refNumber,
			SupplierID:  req.SupplierID,
			TotalAmount: req.TotalAmount,
			GstAmount:   req.GstAmount,
			Status:      Status(req.Status),
			DueDate:     req.DueDate,
			Notes:       req.Notes,
			CreatedAt:   s.now(),
		}
	})

	created := make([]TransactionItem, 0, len(items))
	for _, itemReq := range items {
		itemReq.TransactionID = txn.ID
		if err := s.validator.Struct(itemReq); err != nil {
			return TransactionWithItems{}, err
		}
		item := s.repo.InsertItem(func(id int64) TransactionItem {
			return TransactionItem{
				ID:            id,
				TransactionID: itemReq.TransactionID,
				ProductID:     itemReq.ProductID,
				Quantity:      itemReq.Quantity,
				UnitPrice:     itemReq.UnitPrice,
				GstRate:       itemReq.GstRate,
				GstAmount:     itemReq.GstAmount,
				TotalAmount:   itemReq.TotalAmount,
			}
		})
		created = append(created, item)

		if err := s.applyStockDelta(ctx, txn, item); err != nil {
			return TransactionWithItems{}, err
		}
	}

	return TransactionWithItems{Transaction: txn, Items: created}, nil
}

// applyStockDelta mutates inventory for purchase and sale lines. A return
// transaction moves no stock. A sale against a missing (product, location)
// row is silently dropped; only a purchase creates the row.
func (s *Service) applyStockDelta(ctx context.Context, txn Transaction, item TransactionItem) error {
	if txn.Type != TypePurchase && txn.Type != TypeSale {
		return nil
	}
	delta := item.Quantity
	if txn.Type == TypeSale {
		delta = -item.Quantity
	}
	existing, err := s.stock.GetItem(ctx, item.ProductID, txn.LocationID)
	switch {
	case err == nil:
		_, err = s.stock.AdjustQuantity(ctx, existing.ID, delta)
		return err
	case errors.Is(err, shared.ErrNotFound):
		if txn.Type != TypePurchase {
			return nil
		}
		_, err = s.stock.Create(ctx, inventory.CreateItemRequest{
			ProductID:  item.ProductID,
			LocationID: txn.LocationID,
			Quantity:   item.Quantity,
		})
		return err
	default:
		return err
	}
}

// Update merges provided header fields. Lines and inventory are untouched.
func (s *Service) Update(ctx context.Context, id int64, req UpdateTransactionRequest) (Transaction, error) {
	txn, ok := s.repo.Update(id, func(t Transaction) Transaction {
		if req.Type != nil {
			t.Type = Type(*req.Type)
		}
		if req.Date != nil {
			t.Date = *req.Date
		}
		if req.LocationID != nil {
			t.LocationID = *req.LocationID
		}
		if req.RefNumber != nil {
			t.RefNumber = *req.RefNumber
		}
		if req.SupplierID != nil {
			t.SupplierID = req.SupplierID
		}
		if req.TotalAmount != nil {
			t.TotalAmount = *req.TotalAmount
		}
		if req.GstAmount != nil {
			t.GstAmount = *req.GstAmount
		}
		if req.Status != nil {
			t.Status = Status(*req.Status)
		}
		if req.DueDate != nil {
			t.DueDate = req.DueDate
		}
		if req.Notes != nil {
			t.Notes = req.Notes
		}
		return t
	})
	if !ok {
		return Transaction{}, &shared.NotFoundError{Resource: "Transaction"}
	}
	return txn, nil
}

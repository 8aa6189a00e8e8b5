package analytics

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/stockpilot-erp/stockpilot-erp/internal/activity"
	"github.com/stockpilot-erp/stockpilot-erp/internal/inventory"
	"github.com/stockpilot-erp/stockpilot-erp/internal/products"
)

// ProductPort reads the product catalogue.
type ProductPort interface {
	List(ctx context.Context) ([]products.Product, error)
	Get(ctx context.Context, id int64) (products.Product, error)
}

// InventoryPort reads stock rows.
type InventoryPort interface {
	List(ctx context.Context) ([]inventory.Item, error)
	ListByLocation(ctx context.Context, locationID int64) ([]inventory.Item, error)
}

// ActivityPort reads the recent feed.
type ActivityPort interface {
	Recent(ctx context.Context, limit int) ([]activity.Entry, error)
}

// LowStockItem pairs a product with the stock row at or below its
// minimum level.
type LowStockItem struct {
	Product   products.Product `json:"product"`
	Inventory inventory.Item   `json:"inventory"`
}

// InventoryValue is the total selling value of stock on hand.
type InventoryValue struct {
	Value float64 `json:"value"`
}

// InventoryCount is the total units on hand.
type InventoryCount struct {
	Count int `json:"count"`
}

// Dashboard aggregates the landing-page widgets in one response.
type Dashboard struct {
	LowStock       []LowStockItem   `json:"lowStock"`
	InventoryValue InventoryValue   `json:"inventoryValue"`
	InventoryCount InventoryCount   `json:"inventoryCount"`
	RecentActivity []activity.Entry `json:"recentActivity"`
}

// Service computes read-only analytics over the live state.
type Service struct {
	products  ProductPort
	inventory InventoryPort
	activity  ActivityPort
}

// NewService builds Service.
func NewService(products ProductPort, inventory InventoryPort, activity ActivityPort) *Service {
	return &Service{products: products, inventory: inventory, activity: activity}
}

// LowStock returns every stock row whose quantity is at or below the
// product's minimum level, in stock-row insertion order.
func (s *Service) LowStock(ctx context.Context) ([]LowStockItem, error) {
	items, err := s.inventory.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]LowStockItem, 0)
	for _, item := range items {
		product, err := s.products.Get(ctx, item.ProductID)
		if err != nil {
			continue
		}
		if item.Quantity <= product.MinStockLevel {
			out = append(out, LowStockItem{Product: product, Inventory: item})
		}
	}
	return out, nil
}

// Value sums sellingPrice times quantity over stock rows. Rows whose product
// cannot be resolved contribute nothing. A locationID of zero means all
// locations.
func (s *Service) Value(ctx context.Context, locationID int64) (InventoryValue, error) {
	items, err := s.stockRows(ctx, locationID)
	if err != nil {
		return InventoryValue{}, err
	}
	var total float64
	for _, item := range items {
		product, err := s.products.Get(ctx, item.ProductID)
		if err != nil {
			continue
		}
		total += product.SellingPrice * float64(item.Quantity)
	}
	return InventoryValue{Value: total}, nil
}

// Count sums units on hand across stock rows. A locationID of zero means
// all locations.
func (s *Service) Count(ctx context.Context, locationID int64) (InventoryCount, error) {
	items, err := s.stockRows(ctx, locationID)
	if err != nil {
		return InventoryCount{}, err
	}
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return InventoryCount{Count: total}, nil
}

// Dashboard fans the widget queries out concurrently.
func (s *Service) Dashboard(ctx context.Context) (Dashboard, error) {
	var dash Dashboard
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		lowStock, err := s.LowStock(gctx)
		if err != nil {
			return err
		}
		dash.LowStock = lowStock
		return nil
	})
	g.Go(func() error {
		value, err := s.Value(gctx, 0)
		if err != nil {
			return err
		}
		dash.InventoryValue = value
		return nil
	})
	g.Go(func() error {
		count, err := s.Count(gctx, 0)
		if err != nil {
			return err
		}
		dash.InventoryCount = count
		return nil
	})
	g.Go(func() error {
		recent, err := s.activity.Recent(gctx, activity.DefaultRecentLimit)
		if err != nil {
			return err
		}
		dash.RecentActivity = recent
		return nil
	})
	if err := g.Wait(); err != nil {
		return Dashboard{}, err
	}
	return dash, nil
}

func (s *Service) stockRows(ctx context.Context, locationID int64) ([]inventory.Item, error) {
	if locationID > 0 {
		return s.inventory.ListByLocation(ctx, locationID)
	}
	return s.inventory.List(ctx)
}

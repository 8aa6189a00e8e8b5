package analytics

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/stockpilot-erp/stockpilot-erp/internal/activity"
	"github.com/stockpilot-erp/stockpilot-erp/internal/inventory"
	"github.com/stockpilot-erp/stockpilot-erp/internal/products"
)

type fixture struct {
	analytics *Service
	products  *products.Service
	inventory *inventory.Service
	activity  *activity.Service
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	productsSvc := products.NewService(products.NewRepository())
	inventorySvc := inventory.NewService(inventory.NewRepository(), inventory.ServiceConfig{AllowNegativeStock: true})
	activitySvc := activity.NewService(activity.NewStore(client))
	return fixture{
		analytics: NewService(productsSvc, inventorySvc, activitySvc),
		products:  productsSvc,
		inventory: inventorySvc,
		activity:  activitySvc,
	}
}

func (f fixture) addProduct(t *testing.T, sku string, sellingPrice float64, minStock int) products.Product {
	t.Helper()
	product, err := f.products.Create(context.Background(), products.CreateProductRequest{
		Name:          "Product " + sku,
		Sku:           sku,
		CategoryID:    1,
		PurchasePrice: sellingPrice,
		SellingPrice:  sellingPrice,
		GstRate:       18,
		MinStockLevel: minStock,
	})
	require.NoError(t, err)
	return product
}

func (f fixture) addStock(t *testing.T, productID, locationID int64, qty int) {
	t.Helper()
	_, err := f.inventory.Create(context.Background(), inventory.CreateItemRequest{
		ProductID: productID, LocationID: locationID, Quantity: qty,
	})
	require.NoError(t, err)
}

func TestLowStockThresholdIsInclusive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	atLevel := f.addProduct(t, "AT-LEVEL", 100, 10)
	below := f.addProduct(t, "BELOW", 100, 10)
	healthy := f.addProduct(t, "HEALTHY", 100, 10)
	f.addStock(t, atLevel.ID, 1, 10)
	f.addStock(t, below.ID, 1, 2)
	f.addStock(t, healthy.ID, 1, 50)

	low, err := f.analytics.LowStock(ctx)
	require.NoError(t, err)
	require.Len(t, low, 2)
	require.Equal(t, atLevel.ID, low[0].Product.ID)
	require.Equal(t, below.ID, low[1].Product.ID)
	require.Equal(t, 2, low[1].Inventory.Quantity)
}

func TestValueSumsSellingPriceTimesQuantity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	product := f.addProduct(t, "X1", 100, 10)
	f.addStock(t, product.ID, 1, 5)

	value, err := f.analytics.Value(ctx, 0)
	require.NoError(t, err)
	require.InDelta(t, 500, value.Value, 0.001)
}

func TestValueSkipsUnresolvedProducts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	product := f.addProduct(t, "X1", 100, 10)
	f.addStock(t, product.ID, 1, 5)
	// stock row pointing at a product that does not exist
	f.addStock(t, 999, 1, 50)

	value, err := f.analytics.Value(ctx, 0)
	require.NoError(t, err)
	require.InDelta(t, 500, value.Value, 0.001)
}

func TestValueFiltersByLocation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	product := f.addProduct(t, "X1", 100, 10)
	f.addStock(t, product.ID, 1, 5)
	f.addStock(t, product.ID, 2, 3)

	value, err := f.analytics.Value(ctx, 2)
	require.NoError(t, err)
	require.InDelta(t, 300, value.Value, 0.001)
}

func TestCountSumsUnitsOnHand(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	product := f.addProduct(t, "X1", 100, 10)
	f.addStock(t, product.ID, 1, 5)
	f.addStock(t, product.ID, 2, 3)

	count, err := f.analytics.Count(ctx, 0)
	require.NoError(t, err)
	require.Equal(t, 8, count.Count)

	count, err = f.analytics.Count(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 5, count.Count)
}

func TestDashboardAggregatesAllWidgets(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	product := f.addProduct(t, "X1", 100, 10)
	f.addStock(t, product.ID, 1, 5)
	_, err := f.activity.Append(ctx, activity.CreateEntryRequest{UserID: 1, Action: "EVENT", Entity: "product"})
	require.NoError(t, err)

	dash, err := f.analytics.Dashboard(ctx)
	require.NoError(t, err)
	require.Len(t, dash.LowStock, 1)
	require.InDelta(t, 500, dash.InventoryValue.Value, 0.001)
	require.Equal(t, 5, dash.InventoryCount.Count)
	require.Len(t, dash.RecentActivity, 1)
}

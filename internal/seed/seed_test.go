package seed

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/stockpilot-erp/stockpilot-erp/internal/activity"
	"github.com/stockpilot-erp/stockpilot-erp/internal/categories"
	"github.com/stockpilot-erp/stockpilot-erp/internal/inventory"
	"github.com/stockpilot-erp/stockpilot-erp/internal/locations"
	"github.com/stockpilot-erp/stockpilot-erp/internal/products"
	"github.com/stockpilot-erp/stockpilot-erp/internal/suppliers"
	"github.com/stockpilot-erp/stockpilot-erp/internal/users"
)

func TestDemoDataPopulatesAllStores(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	svc := Services{
		Users:      users.NewService(users.NewRepository()),
		Locations:  locations.NewService(locations.NewRepository()),
		Categories: categories.NewService(categories.NewRepository()),
		Products:   products.NewService(products.NewRepository()),
		Inventory:  inventory.NewService(inventory.NewRepository(), inventory.ServiceConfig{AllowNegativeStock: true}),
		Suppliers:  suppliers.NewService(suppliers.NewRepository()),
		Activity:   activity.NewService(activity.NewStore(client)),
	}

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, DemoData(ctx, logger, svc))

	admin, err := svc.Users.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	require.Equal(t, "Administrator", admin.FullName)

	locs, err := svc.Locations.List(ctx)
	require.NoError(t, err)
	require.Len(t, locs, 3)

	cats, err := svc.Categories.List(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 3)

	prods, err := svc.Products.List(ctx)
	require.NoError(t, err)
	require.Len(t, prods, 8)

	tv, err := svc.Products.GetBySku(ctx, "SM-TV43-4K")
	require.NoError(t, err)
	require.InDelta(t, 36999, tv.SellingPrice, 0.001)

	stock, err := svc.Inventory.List(ctx)
	require.NoError(t, err)
	require.Len(t, stock, 9)

	sups, err := svc.Suppliers.List(ctx)
	require.NoError(t, err)
	require.Len(t, sups, 2)

	feed, err := svc.Activity.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, feed, 3)
}

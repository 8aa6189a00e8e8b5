package products

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stockpilot-erp/stockpilot-erp/internal/shared"
)

func newTestService() *Service {
	return NewService(NewRepository())
}

func createProduct(t *testing.T, svc *Service, sku string) Product {
	t.Helper()
	product, err := svc.Create(context.Background(), CreateProductRequest{
		Name:          "Product " + sku,
		Sku:           sku,
		CategoryID:    1,
		PurchasePrice: 80,
		SellingPrice:  100,
		GstRate:       18,
		MinStockLevel: 10,
	})
	require.NoError(t, err)
	return product
}

func TestCreateDefaultsActiveAndStampsTimes(t *testing.T) {
	svc := newTestService()

	product := createProduct(t, svc, "X1")
	require.True(t, product.IsActive)
	require.False(t, product.CreatedAt.IsZero())
	require.False(t, product.UpdatedAt.IsZero())
}

func TestGetBySkuFindsFirstMatch(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	first := createProduct(t, svc, "DUP")
	createProduct(t, svc, "DUP")

	found, err := svc.GetBySku(ctx, "DUP")
	require.NoError(t, err)
	require.Equal(t, first.ID, found.ID)

	_, err = svc.GetBySku(ctx, "MISSING")
	require.True(t, errors.Is(err, shared.ErrNotFound))
}

func TestUpdateMergesOnlyProvidedFields(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	product := createProduct(t, svc, "X1")

	price := 120.0
	updated, err := svc.Update(ctx, product.ID, UpdateProductRequest{SellingPrice: &price})
	require.NoError(t, err)
	require.InDelta(t, 120, updated.SellingPrice, 0.001)
	require.Equal(t, product.Name, updated.Name)
	require.Equal(t, product.Sku, updated.Sku)
	require.True(t, updated.UpdatedAt.After(product.UpdatedAt) || updated.UpdatedAt.Equal(product.UpdatedAt))
}

func TestUpdateMissingProduct(t *testing.T) {
	svc := newTestService()

	name := "renamed"
	_, err := svc.Update(context.Background(), 42, UpdateProductRequest{Name: &name})
	require.True(t, errors.Is(err, shared.ErrNotFound))
}

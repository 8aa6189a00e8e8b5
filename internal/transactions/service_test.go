package transactions

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stockpilot-erp/stockpilot-erp/internal/inventory"
	"github.com/stockpilot-erp/stockpilot-erp/internal/shared"
)

func newTestService(t *testing.T) (*Service, *inventory.Service) {
	t.Helper()
	stock := inventory.NewService(inventory.NewRepository(), inventory.ServiceConfig{AllowNegativeStock: true})
	svc := NewService(NewRepository(), stock, shared.NewValidator())
	return svc, stock
}

func purchaseHeader(locationID int64) CreateTransactionRequest {
	return CreateTransactionRequest{
		Type:        string(TypePurchase),
		LocationID:  locationID,
		TotalAmount: 500,
		GstAmount:   0,
		Status:      string(StatusCompleted),
	}
}

func TestCreateGeneratesRefNumberWhenAbsent(t *testing.T) {
	svc, _ := newTestService(t)

	result, err := svc.Create(context.Background(), purchaseHeader(1), nil)
	require.NoError(t, err)
	require.NotEmpty(t, result.Transaction.RefNumber)
	require.Contains(t, result.Transaction.RefNumber, "TXN-")
	require.False(t, result.Transaction.Date.IsZero())
	require.Empty(t, result.Items)
}

func TestPurchaseCreatesMissingStockRow(t *testing.T) {
	svc, stock := newTestService(t)
	ctx := context.Background()

	result, err := svc.Create(ctx, purchaseHeader(1), []CreateTransactionItemRequest{
		{ProductID: 7, Quantity: 5, UnitPrice: 100, GstRate: 18, GstAmount: 90, TotalAmount: 590},
	})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)

	row, err := stock.GetItem(ctx, 7, 1)
	require.NoError(t, err)
	require.Equal(t, 5, row.Quantity)
}

func TestPurchaseTopsUpExistingStockRow(t *testing.T) {
	svc, stock := newTestService(t)
	ctx := context.Background()

	_, err := stock.Create(ctx, inventory.CreateItemRequest{ProductID: 7, LocationID: 1, Quantity: 10})
	require.NoError(t, err)

	_, err = svc.Create(ctx, purchaseHeader(1), []CreateTransactionItemRequest{
		{ProductID: 7, Quantity: 5},
	})
	require.NoError(t, err)

	row, err := stock.GetItem(ctx, 7, 1)
	require.NoError(t, err)
	require.Equal(t, 15, row.Quantity)
}

func TestSaleDecreasesStockAndMayGoNegative(t *testing.T) {
	svc, stock := newTestService(t)
	ctx := context.Background()

	_, err := stock.Create(ctx, inventory.CreateItemRequest{ProductID: 7, LocationID: 1, Quantity: 3})
	require.NoError(t, err)

	header := purchaseHeader(1)
	header.Type = string(TypeSale)
	_, err = svc.Create(ctx, header, []CreateTransactionItemRequest{
		{ProductID: 7, Quantity: 5},
	})
	require.NoError(t, err)

	row, err := stock.GetItem(ctx, 7, 1)
	require.NoError(t, err)
	require.Equal(t, -2, row.Quantity)
}

func TestSaleAgainstMissingRowMovesNothing(t *testing.T) {
	svc, stock := newTestService(t)
	ctx := context.Background()

	header := purchaseHeader(1)
	header.Type = string(TypeSale)
	result, err := svc.Create(ctx, header, []CreateTransactionItemRequest{
		{ProductID: 7, Quantity: 5},
	})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)

	_, err = stock.GetItem(ctx, 7, 1)
	require.True(t, errors.Is(err, shared.ErrNotFound))
}

func TestReturnMovesNoStock(t *testing.T) {
	svc, stock := newTestService(t)
	ctx := context.Background()

	_, err := stock.Create(ctx, inventory.CreateItemRequest{ProductID: 7, LocationID: 1, Quantity: 3})
	require.NoError(t, err)

	header := purchaseHeader(1)
	header.Type = string(TypeReturn)
	_, err = svc.Create(ctx, header, []CreateTransactionItemRequest{
		{ProductID: 7, Quantity: 2},
	})
	require.NoError(t, err)

	row, err := stock.GetItem(ctx, 7, 1)
	require.NoError(t, err)
	require.Equal(t, 3, row.Quantity)
}

func TestCreateInvalidItemLeavesEarlierItemsCommitted(t *testing.T) {
	svc, stock := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, purchaseHeader(1), []CreateTransactionItemRequest{
		{ProductID: 7, Quantity: 5},
		{ProductID: 0, Quantity: 1},
	})
	require.Error(t, err)
	require.True(t, errors.Is(err, shared.ErrValidation))

	// header and first line survive the failure
	headers, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, headers, 1)

	stored, err := svc.Get(ctx, headers[0].ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 1)

	row, err := stock.GetItem(ctx, 7, 1)
	require.NoError(t, err)
	require.Equal(t, 5, row.Quantity)
}

func TestGetReturnsHeaderWithItems(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, purchaseHeader(1), []CreateTransactionItemRequest{
		{ProductID: 7, Quantity: 5},
		{ProductID: 8, Quantity: 2},
	})
	require.NoError(t, err)

	stored, err := svc.Get(ctx, created.Transaction.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 2)
	require.Equal(t, created.Transaction.ID, stored.Items[0].TransactionID)
}

func TestUpdateMergesHeaderOnly(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, purchaseHeader(1), nil)
	require.NoError(t, err)

	status := string(StatusCancelled)
	updated, err := svc.Update(ctx, created.Transaction.ID, UpdateTransactionRequest{Status: &status})
	require.NoError(t, err)
	require.Equal(t, StatusCancelled, updated.Status)
	require.Equal(t, created.Transaction.RefNumber, updated.RefNumber)

	_, err = svc.Update(ctx, 99, UpdateTransactionRequest{Status: &status})
	require.True(t, errors.Is(err, shared.ErrNotFound))
}

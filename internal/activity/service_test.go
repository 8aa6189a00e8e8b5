package activity

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/stockpilot-erp/stockpilot-erp/internal/shared"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewService(NewStore(client))
}

func mustRaw(t *testing.T, v any) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func TestAppendAssignsSequentialIDs(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.Append(ctx, CreateEntryRequest{UserID: 1, Action: "LOGIN", Entity: "user"})
	require.NoError(t, err)
	second, err := svc.Append(ctx, CreateEntryRequest{UserID: 1, Action: "LOGIN", Entity: "user"})
	require.NoError(t, err)

	require.Equal(t, int64(1), first.ID)
	require.Equal(t, int64(2), second.ID)
	require.False(t, first.Timestamp.IsZero())
}

func TestAppendDecodesKnownDetails(t *testing.T) {
	svc := newTestService(t)

	entry, err := svc.Append(context.Background(), CreateEntryRequest{
		UserID:  1,
		Action:  ActionStockReceived,
		Entity:  "product",
		Details: mustRaw(t, StockReceivedDetails{Quantity: 24, ProductName: "LED Bulbs"}),
	})
	require.NoError(t, err)

	var details StockReceivedDetails
	require.NoError(t, json.Unmarshal(entry.Details, &details))
	require.Equal(t, 24, details.Quantity)
	require.Equal(t, "LED Bulbs", details.ProductName)
}

func TestAppendRejectsMalformedDetails(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Append(context.Background(), CreateEntryRequest{
		UserID:  1,
		Action:  ActionPriceUpdate,
		Entity:  "product",
		Details: json.RawMessage(`{"oldPrice":"not a number"}`),
	})
	require.Error(t, err)
	require.True(t, errors.Is(err, shared.ErrValidation))
}

func TestAppendKeepsUnknownActionPayload(t *testing.T) {
	svc := newTestService(t)

	entry, err := svc.Append(context.Background(), CreateEntryRequest{
		UserID:  1,
		Action:  "CUSTOM_EVENT",
		Entity:  "product",
		Details: json.RawMessage(`{"anything":"goes","n":3}`),
	})
	require.NoError(t, err)

	var generic GenericDetails
	require.NoError(t, json.Unmarshal(entry.Details, &generic))
	require.Equal(t, "goes", generic["anything"])
}

func TestRecentReturnsNewestFirstWithLimit(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	actions := []string{"FIRST", "SECOND", "THIRD"}
	for _, action := range actions {
		_, err := svc.Append(ctx, CreateEntryRequest{UserID: 1, Action: action, Entity: "product"})
		require.NoError(t, err)
	}

	entries, err := svc.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, int64(3), entries[0].ID)
	require.Equal(t, int64(2), entries[1].ID)
}

func TestRecentDefaultsLimit(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for i := 0; i < DefaultRecentLimit+5; i++ {
		_, err := svc.Append(ctx, CreateEntryRequest{UserID: 1, Action: "EVENT", Entity: "product"})
		require.NoError(t, err)
	}

	entries, err := svc.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, DefaultRecentLimit)
}

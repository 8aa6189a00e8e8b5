package inventory

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/stockpilot-erp/stockpilot-erp/internal/shared"
)

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(NewRepository(), ServiceConfig{AllowNegativeStock: true})
	handler := NewHandler(logger, svc, shared.NewValidator())
	r := chi.NewRouter()
	handler.MountRoutes(r)
	return r
}

func post(t *testing.T, r chi.Router, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestUpsertCreatesThenTopsUp(t *testing.T) {
	r := newTestRouter(t)

	rec := post(t, r, "/inventory", `{"productId":1,"locationId":1,"quantity":5}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Equal(t, 5, created.Quantity)

	rec = post(t, r, "/inventory", `{"productId":1,"locationId":1,"quantity":3}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var toppedUp Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &toppedUp))
	require.Equal(t, created.ID, toppedUp.ID)
	require.Equal(t, 8, toppedUp.Quantity)
}

func TestUpsertRejectsMissingIDs(t *testing.T) {
	r := newTestRouter(t)

	rec := post(t, r, "/inventory", `{"quantity":5}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListByLocationFilters(t *testing.T) {
	r := newTestRouter(t)

	post(t, r, "/inventory", `{"productId":1,"locationId":1,"quantity":5}`)
	post(t, r, "/inventory", `{"productId":1,"locationId":2,"quantity":3}`)

	req := httptest.NewRequest(http.MethodGet, "/inventory/location/2", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	require.Equal(t, int64(2), items[0].LocationID)
}

func TestListEmptyReturnsArray(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/inventory", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "[]\n", rec.Body.String())
}

package locations

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
	handler := NewHandler(logger, NewService(NewRepository()), shared.NewValidator())
	r := chi.NewRouter()
	handler.MountRoutes(r)
	return r
}

func doJSON(t *testing.T, r chi.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCreateAndShowLocation(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/locations",
		`{"name":"Mumbai Store","address":"123 Main Street","city":"Mumbai","state":"Maharashtra","pincode":"400001"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created Location
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Equal(t, int64(1), created.ID)
	require.True(t, created.IsActive)

	rec = doJSON(t, r, http.MethodGet, "/locations/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestShowMissingLocationReturnsErrorBody(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/locations/42", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "Location not found", body["error"])
}

func TestShowNonNumericIDIsBadRequest(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/locations/abc", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateMissingFieldsIsBadRequest(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/locations", `{"name":"No Address"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Contains(t, body["error"], "validation failed")
}

func TestUpdateAppliesOnlyProvidedFields(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/locations",
		`{"name":"Delhi Store","address":"456 Market Road","city":"Delhi","state":"Delhi","pincode":"110001"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, r, http.MethodPut, "/locations/1", `{"city":"New Delhi"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated Location
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	require.Equal(t, "New Delhi", updated.City)
	require.Equal(t, "Delhi Store", updated.Name)
	require.Equal(t, "110001", updated.Pincode)
}

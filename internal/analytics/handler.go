package analytics

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/stockpilot-erp/stockpilot-erp/internal/platform/httpx"
)

// Handler wires HTTP endpoints for the analytics module.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers analytics routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/analytics/low-stock", h.LowStock)
	r.Get("/analytics/inventory-value", h.Value)
	r.Get("/analytics/inventory-count", h.Count)
	r.Get("/analytics/dashboard", h.Dashboard)
}

func (h *Handler) LowStock(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.LowStock(r.Context())
	if err != nil {
		h.logger.Error("low stock query failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, items)
}

func (h *Handler) Value(w http.ResponseWriter, r *http.Request) {
	locationID, ok := h.locationFilter(w, r)
	if !ok {
		return
	}
	value, err := h.service.Value(r.Context(), locationID)
	if err != nil {
		h.logger.Error("inventory value query failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, value)
}

func (h *Handler) Count(w http.ResponseWriter, r *http.Request) {
	locationID, ok := h.locationFilter(w, r)
	if !ok {
		return
	}
	count, err := h.service.Count(r.Context(), locationID)
	if err != nil {
		h.logger.Error("inventory count query failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, count)
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dash, err := h.service.Dashboard(r.Context())
	if err != nil {
		h.logger.Error("dashboard query failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, dash)
}

func (h *Handler) locationFilter(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.URL.Query().Get("locationId")
	if raw == "" {
		return 0, true
	}
	locationID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid location id")
		return 0, false
	}
	return locationID, true
}

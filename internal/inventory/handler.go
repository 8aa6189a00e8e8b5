package inventory

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/stockpilot-erp/stockpilot-erp/internal/platform/httpx"
	"github.com/stockpilot-erp/stockpilot-erp/internal/shared"
)

// Handler wires HTTP endpoints for the inventory module.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *shared.Validator
}

func NewHandler(logger *slog.Logger, service *Service, validator *shared.Validator) *Handler {
	return &Handler{logger: logger, service: service, validator: validator}
}

// MountRoutes registers inventory routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/inventory", h.List)
	r.Get("/inventory/location/{locationId}", h.ListByLocation)
	r.Get("/inventory/product/{productId}", h.ListByProduct)
	r.Post("/inventory", h.Upsert)
	r.Put("/inventory/{id}", h.Update)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list inventory failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, list)
}

func (h *Handler) ListByLocation(w http.ResponseWriter, r *http.Request) {
	locationID, err := strconv.ParseInt(chi.URLParam(r, "locationId"), 10, 64)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid location id")
		return
	}
	list, err := h.service.ListByLocation(r.Context(), locationID)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, list)
}

func (h *Handler) ListByProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "productId"), 10, 64)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid product id")
		return
	}
	list, err := h.service.ListByProduct(r.Context(), productID)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, list)
}

// Upsert adds to the existing (product, location) row or creates it.
// Responds 200 when an existing row was topped up, 201 on first create.
func (h *Handler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	it, created, err := h.service.Upsert(r.Context(), req)
	if err != nil {
		h.logger.Error("upsert inventory failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	httpx.JSON(w, status, it)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid inventory id")
		return
	}
	var req UpdateItemRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	it, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, it)
}

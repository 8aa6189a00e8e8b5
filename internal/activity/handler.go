package activity

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/stockpilot-erp/stockpilot-erp/internal/platform/httpx"
	"github.com/stockpilot-erp/stockpilot-erp/internal/shared"
)

// Handler wires HTTP endpoints for the activity module.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *shared.Validator
}

func NewHandler(logger *slog.Logger, service *Service, validator *shared.Validator) *Handler {
	return &Handler{logger: logger, service: service, validator: validator}
}

// MountRoutes registers activity routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/activity", h.Recent)
	r.Post("/activity", h.Append)
}

func (h *Handler) Recent(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}
	entries, err := h.service.Recent(r.Context(), limit)
	if err != nil {
		h.logger.Error("read activity feed failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, entries)
}

func (h *Handler) Append(w http.ResponseWriter, r *http.Request) {
	var req CreateEntryRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	entry, err := h.service.Append(r.Context(), req)
	if err != nil {
		h.logger.Error("append activity failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, entry)
}

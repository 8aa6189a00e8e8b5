package categories

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/stockpilot-erp/stockpilot-erp/internal/platform/httpx"
	"github.com/stockpilot-erp/stockpilot-erp/internal/shared"
)

// Handler wires HTTP endpoints for the categories module.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *shared.Validator
}

func NewHandler(logger *slog.Logger, service *Service, validator *shared.Validator) *Handler {
	return &Handler{logger: logger, service: service, validator: validator}
}

// MountRoutes registers category routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/categories", h.List)
	r.Get("/categories/{id}", h.Show)
	r.Post("/categories", h.Create)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list categories failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, list)
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid category id")
		return
	}
	cat, err := h.service.Get(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, cat)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	cat, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.logger.Error("create category failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, cat)
}

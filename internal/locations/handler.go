package locations

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/stockpilot-erp/stockpilot-erp/internal/platform/httpx"
	"github.com/stockpilot-erp/stockpilot-erp/internal/shared"
)

// Handler wires HTTP endpoints for the locations module.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *shared.Validator
}

// NewHandler constructs the locations handler.
func NewHandler(logger *slog.Logger, service *Service, validator *shared.Validator) *Handler {
	return &Handler{logger: logger, service: service, validator: validator}
}

// MountRoutes registers location routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/locations", h.List)
	r.Get("/locations/{id}", h.Show)
	r.Post("/locations", h.Create)
	r.Put("/locations/{id}", h.Update)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list locations failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, list)
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid location id")
		return
	}
	loc, err := h.service.Get(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, loc)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateLocationRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	loc, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.logger.Error("create location failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, loc)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid location id")
		return
	}
	var req UpdateLocationRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	loc, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, loc)
}

package payments

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/stockpilot-erp/stockpilot-erp/internal/platform/httpx"
	"github.com/stockpilot-erp/stockpilot-erp/internal/shared"
)

// Handler wires HTTP endpoints for the payments module.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *shared.Validator
}

func NewHandler(logger *slog.Logger, service *Service, validator *shared.Validator) *Handler {
	return &Handler{logger: logger, service: service, validator: validator}
}

// MountRoutes registers payment routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/payments", h.List)
	r.Get("/payments/transaction/{transactionId}", h.ListByTransaction)
	r.Post("/payments", h.Create)
	r.Put("/payments/{id}", h.Update)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list payments failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, list)
}

func (h *Handler) ListByTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID, err := strconv.ParseInt(chi.URLParam(r, "transactionId"), 10, 64)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid transaction id")
		return
	}
	list, err := h.service.ListByTransaction(r.Context(), transactionID)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, list)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	p, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.logger.Error("create payment failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, p)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid payment id")
		return
	}
	var req UpdatePaymentRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	p, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, p)
}

package gst

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stockpilot-erp/stockpilot-erp/internal/platform/httpx"
	"github.com/stockpilot-erp/stockpilot-erp/internal/shared"
)

// CalculateRequest asks for a GST split on one amount.
type CalculateRequest struct {
	Amount     float64 `json:"amount" validate:"gte=0"`
	GstRate    float64 `json:"gstRate" validate:"gte=0,lte=100"`
	InterState bool    `json:"interState"`
}

// Handler wires HTTP endpoints for GST utilities.
type Handler struct {
	validator *shared.Validator
}

func NewHandler(validator *shared.Validator) *Handler {
	return &Handler{validator: validator}
}

// MountRoutes registers GST routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/gst/rates", h.Rates)
	r.Post("/gst/calculate", h.Calculate)
}

func (h *Handler) Rates(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, Slabs())
}

func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req CalculateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, Calculate(req.Amount, req.GstRate, req.InterState))
}

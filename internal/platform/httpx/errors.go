package httpx

import (
	"errors"
	"net/http"

	"github.com/stockpilot-erp/stockpilot-erp/internal/shared"
)

// RespondError maps domain errors to HTTP status codes. Validation failures
// become 400, missing records 404, everything else 500 with the raw message.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shared.ErrNotFound):
		Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, shared.ErrValidation):
		Error(w, http.StatusBadRequest, err.Error())
	default:
		Error(w, http.StatusInternalServerError, err.Error())
	}
}

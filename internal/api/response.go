package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sheikh-saqib/bank-account-ledger/internal/models/errs"
	"go.uber.org/zap"
)

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", zap.Error(err))
	}
	h.writeJSON(w, status, errs.JSON{Error: err.Error()})
}

// statusFor maps ledger errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrAccountExists):
		return http.StatusConflict
	case errors.Is(err, errs.ErrBelowMinimumBalance),
		errors.Is(err, errs.ErrSourceBelowMinimumBalance),
		errors.Is(err, errs.ErrInsufficientInitialDeposit):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrUnknownCategory),
		errors.Is(err, errs.ErrNegativeAmount),
		errors.Is(err, errs.ErrInvalidAmount),
		errors.Is(err, errs.ErrEmptyAccountID),
		errors.Is(err, errInvalidRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

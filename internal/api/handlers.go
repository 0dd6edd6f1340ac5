package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sheikh-saqib/bank-account-ledger/internal/models/errs"
	"github.com/shopspring/decimal"
)

var errInvalidRequest = errors.New("invalid request")

type createAccountRequest struct {
	Category       string           `json:"category"`
	ID             string           `json:"id"`
	InitialDeposit *decimal.Decimal `json:"initial_deposit"`
}

type amountRequest struct {
	Amount *decimal.Decimal `json:"amount"`
}

type transferRequest struct {
	FromAccount string           `json:"from_account"`
	ToAccount   string           `json:"to_account"`
	Amount      *decimal.Decimal `json:"amount"`
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", errInvalidRequest, err)
	}
	return nil
}

func required(name string, v *decimal.Decimal) error {
	if v == nil {
		return fmt.Errorf("%w: %s is required", errInvalidRequest, name)
	}
	return nil
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// CreateAccount (POST /accounts).
func (h *Handler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	if err := required("initial_deposit", req.InitialDeposit); err != nil {
		h.writeError(w, err)
		return
	}

	view, err := h.ledger.CreateAccount(r.Context(), req.Category, req.ID, *req.InitialDeposit)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, view)
}

// ListAccounts (GET /accounts).
func (h *Handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.ledger.ListAccounts())
}

// GetAccount (GET /accounts/{id}).
func (h *Handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	view, ok := h.ledger.FindAccount(id)
	if !ok {
		h.writeError(w, &errs.AccountNotFoundError{ID: id})
		return
	}

	h.writeJSON(w, http.StatusOK, view)
}

// Deposit (POST /accounts/{id}/deposit).
func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	if err := required("amount", req.Amount); err != nil {
		h.writeError(w, err)
		return
	}

	view, err := h.ledger.Deposit(r.Context(), chi.URLParam(r, "id"), *req.Amount)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, view)
}

// Withdraw (POST /accounts/{id}/withdraw).
func (h *Handler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	if err := required("amount", req.Amount); err != nil {
		h.writeError(w, err)
		return
	}

	view, err := h.ledger.Withdraw(r.Context(), chi.URLParam(r, "id"), *req.Amount)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, view)
}

// Transfer (POST /transfers).
func (h *Handler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	if err := required("amount", req.Amount); err != nil {
		h.writeError(w, err)
		return
	}

	tx, err := h.ledger.Transfer(r.Context(), req.FromAccount, req.ToAccount, *req.Amount)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, tx)
}

package httpadapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"pledge-data/internal/core/domain"
)

type budgetView struct {
	Balance      decimal.Decimal   `json:"balance"`
	Spent        decimal.Decimal   `json:"spent"`
	AdsRemaining int64             `json:"adsRemaining"`
	Purchases    []domain.Purchase `json:"purchases"`
}

func (h *Handler) handleGetBudget(w http.ResponseWriter, r *http.Request) {
	b, err := h.svc.Budget.GetOrCreateBudget(r.Context())
	if err != nil {
		h.writeError(w, "get budget", err)
		return
	}
	purchases, err := h.svc.Budget.GetPurchases(r.Context())
	if err != nil {
		h.writeError(w, "get budget", err)
		return
	}
	remaining, err := h.svc.Budget.CalculateAdsRemaining(r.Context())
	if err != nil {
		h.writeError(w, "get budget", err)
		return
	}
	h.writeJSON(w, http.StatusOK, budgetView{
		Balance:      b.Balance,
		Spent:        b.Spent,
		AdsRemaining: remaining,
		Purchases:    purchases,
	})
}

type setBalanceRequest struct {
	// Value may be a JSON number or string; anything that is not a number
	// in range sets the balance to zero.
	Value json.RawMessage `json:"value"`
}

func (h *Handler) handleSetBalance(w http.ResponseWriter, r *http.Request) {
	var req setBalanceRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, "set balance", err)
		return
	}
	value := domain.CoerceAmount(strings.Trim(string(req.Value), `"`))
	b, err := h.svc.Budget.SetBalance(r.Context(), value)
	if err != nil {
		h.writeError(w, "set balance", err)
		return
	}
	h.writeJSON(w, http.StatusOK, b)
}

func (h *Handler) handleAddPack(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Budget.AddPack(r.Context())
	if err != nil {
		h.writeError(w, "add pack", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, p)
}

func (h *Handler) handleListPurchases(w http.ResponseWriter, r *http.Request) {
	purchases, err := h.svc.Budget.GetPurchases(r.Context())
	if err != nil {
		h.writeError(w, "list purchases", err)
		return
	}
	h.writeJSON(w, http.StatusOK, purchases)
}

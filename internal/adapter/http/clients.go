package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"pledge-data/internal/core/domain"
	"pledge-data/internal/core/port"
)

type clientRequest struct {
	Name  string `json:"name" validate:"max=200"`
	Phone string `json:"phone" validate:"max=64"`
	Email string `json:"email" validate:"max=254"`
}

func (h *Handler) handleListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.svc.Clients.SearchClients(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.writeError(w, "list clients", err)
		return
	}
	h.writeJSON(w, http.StatusOK, clients)
}

func (h *Handler) handleAddClient(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, "add client", err)
		return
	}
	client, err := h.svc.Clients.AddClient(r.Context(), port.AddClientInput(req))
	if err != nil {
		h.writeError(w, "add client", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, client)
}

func (h *Handler) handleGetClient(w http.ResponseWriter, r *http.Request) {
	client, err := h.svc.Clients.GetClient(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, "get client", err)
		return
	}
	h.writeJSON(w, http.StatusOK, client)
}

// handleUpdateClient replaces name, phone and email. An empty name keeps
// the stored one.
func (h *Handler) handleUpdateClient(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, "update client", err)
		return
	}
	client, err := h.svc.Clients.UpdateClient(r.Context(), domain.Client{
		ID:    chi.URLParam(r, "id"),
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	})
	if err != nil {
		h.writeError(w, "update client", err)
		return
	}
	h.writeJSON(w, http.StatusOK, client)
}

func (h *Handler) handleDeleteClient(w http.ResponseWriter, r *http.Request) {
	removed, err := h.svc.Clients.DeleteClient(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, "delete client", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]int{"removedAds": removed})
}

func (h *Handler) handleListClientAds(w http.ResponseWriter, r *http.Request) {
	ads, err := h.svc.Ads.ListAdsByClient(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, "list client ads", err)
		return
	}
	views, err := h.adViews(r, ads)
	if err != nil {
		h.writeError(w, "list client ads", err)
		return
	}
	h.writeJSON(w, http.StatusOK, views)
}

func (h *Handler) handleTouchClient(w http.ResponseWriter, r *http.Request) {
	client, err := h.svc.Clients.TouchClientActivity(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, "touch client", err)
		return
	}
	h.writeJSON(w, http.StatusOK, client)
}

func (h *Handler) handleMergeClients(w http.ResponseWriter, r *http.Request) {
	merged, err := h.svc.Clients.MergeDuplicates(r.Context())
	if err != nil {
		h.writeError(w, "merge clients", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]int{"merged": merged})
}

package httpadapter

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"pledge-data/internal/core/domain"
	"pledge-data/internal/core/port"
)

// adView is an ad with its status at response time and its resolved
// client name.
type adView struct {
	domain.Ad
	Status     domain.Status `json:"status"`
	ClientName string        `json:"clientName,omitempty"`
}

func (h *Handler) adViews(r *http.Request, ads []domain.Ad) ([]adView, error) {
	clients, err := h.svc.Clients.ListClients(r.Context())
	if err != nil {
		return nil, err
	}
	dir := domain.NewClientDirectory(clients)
	now := h.clock.Now()
	out := make([]adView, 0, len(ads))
	for _, ad := range ads {
		out = append(out, adView{Ad: ad, Status: domain.AdStatus(ad, now), ClientName: dir.NameOf(ad.ClientID)})
	}
	return out, nil
}

func (h *Handler) adView(ad domain.Ad) adView {
	return adView{Ad: ad, Status: domain.AdStatus(ad, h.clock.Now())}
}

type placeAdRequest struct {
	ClientID      string     `json:"clientId" validate:"required_without=NewClientName"`
	NewClientName string     `json:"newClientName" validate:"max=200"`
	AdName        string     `json:"adName" validate:"required,max=200"`
	Link          string     `json:"link" validate:"max=2048"`
	CreatedAt     *time.Time `json:"createdAt"`
}

type placeAdResponse struct {
	Ad           adView        `json:"ad"`
	Budget       domain.Budget `json:"budget"`
	AdsRemaining int64         `json:"adsRemaining"`
}

// handleListAds lists ads. `status` selects the active, expired or
// expiring view, `q` searches, `client_id` restricts to one client.
func (h *Handler) handleListAds(w http.ResponseWriter, r *http.Request) {
	var (
		q      = r.URL.Query()
		ctx    = r.Context()
		now    = h.clock.Now()
		ads    []domain.Ad
		err    error
		search = strings.TrimSpace(q.Get("q"))
	)

	switch {
	case q.Get("client_id") != "":
		ads, err = h.svc.Ads.ListAdsByClient(ctx, q.Get("client_id"))
	case search != "":
		ads, err = h.svc.Ads.SearchAds(ctx, search)
	default:
		switch q.Get("status") {
		case "":
			ads, err = h.svc.Ads.ListAllAds(ctx)
		case "active":
			ads, err = h.svc.Ads.GetActiveAds(ctx, now)
		case "expired":
			ads, err = h.svc.Ads.GetExpiredAds(ctx, now)
		case "expiring":
			var within time.Duration
			if raw := q.Get("within"); raw != "" {
				if within, err = time.ParseDuration(raw); err != nil {
					http.Error(w, "invalid 'within' duration", http.StatusBadRequest)
					return
				}
			}
			ads, err = h.svc.Ads.GetExpiringSoon(ctx, within, now)
		default:
			http.Error(w, "invalid status", http.StatusBadRequest)
			return
		}
	}
	if err != nil {
		h.writeError(w, "list ads", err)
		return
	}
	views, err := h.adViews(r, ads)
	if err != nil {
		h.writeError(w, "list ads", err)
		return
	}
	h.writeJSON(w, http.StatusOK, views)
}

// handlePlaceAd creates an ad, optionally with a new client, and charges
// the budget for it.
func (h *Handler) handlePlaceAd(w http.ResponseWriter, r *http.Request) {
	var req placeAdRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, "place ad", err)
		return
	}
	in := port.PlaceAdInput{
		CreateAdInput: port.CreateAdInput{ClientID: req.ClientID, AdName: req.AdName, Link: req.Link},
		NewClientName: req.NewClientName,
	}
	if req.CreatedAt != nil {
		in.CreatedAt = *req.CreatedAt
	}
	res, err := h.svc.Placement.PlaceAd(r.Context(), in)
	if err != nil {
		h.writeError(w, "place ad", err)
		return
	}
	remaining, err := h.svc.Budget.CalculateAdsRemaining(r.Context())
	if err != nil {
		h.writeError(w, "place ad", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, placeAdResponse{
		Ad:           h.adView(res.Ad),
		Budget:       res.Budget,
		AdsRemaining: remaining,
	})
}

func (h *Handler) handleGetAd(w http.ResponseWriter, r *http.Request) {
	ad, err := h.svc.Ads.GetAd(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, "get ad", err)
		return
	}
	h.writeJSON(w, http.StatusOK, h.adView(ad))
}

type updateAdRequest struct {
	ClientID string `json:"clientId" validate:"required"`
	AdName   string `json:"adName" validate:"required,max=200"`
	Link     string `json:"link" validate:"max=2048"`
}

// handleUpdateAd edits the descriptive fields; lifecycle fields are kept.
func (h *Handler) handleUpdateAd(w http.ResponseWriter, r *http.Request) {
	var req updateAdRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, "update ad", err)
		return
	}
	ad, err := h.svc.Ads.UpdateAd(r.Context(), domain.Ad{
		ID:       chi.URLParam(r, "id"),
		ClientID: domain.ClientRef(req.ClientID),
		AdName:   req.AdName,
		Link:     req.Link,
	})
	if err != nil {
		h.writeError(w, "update ad", err)
		return
	}
	h.writeJSON(w, http.StatusOK, h.adView(ad))
}

func (h *Handler) handleDeleteAd(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Ads.DeleteAd(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, "delete ad", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type renewAdRequest struct {
	Days int `json:"days" validate:"gte=0,lte=365"`
}

// handleRenewAd extends an ad. An empty body renews by the default period.
func (h *Handler) handleRenewAd(w http.ResponseWriter, r *http.Request) {
	var req renewAdRequest
	if err := decodeOptionalJSON(r, &req); err != nil {
		h.writeError(w, "renew ad", err)
		return
	}
	ad, err := h.svc.Ads.RenewAd(r.Context(), chi.URLParam(r, "id"), req.Days)
	if err != nil {
		h.writeError(w, "renew ad", err)
		return
	}
	h.writeJSON(w, http.StatusOK, h.adView(ad))
}

func (h *Handler) handleSuggestAdNames(w http.ResponseWriter, r *http.Request) {
	clientID := r.URL.Query().Get("client_id")
	if clientID == "" {
		http.Error(w, "client_id is required", http.StatusBadRequest)
		return
	}
	limit, err := intQuery(r, "limit", 0)
	if err != nil {
		h.writeError(w, "suggest ad names", err)
		return
	}
	names, err := h.svc.Ads.SuggestAdNames(r.Context(), clientID, limit)
	if err != nil {
		h.writeError(w, "suggest ad names", err)
		return
	}
	h.writeJSON(w, http.StatusOK, names)
}

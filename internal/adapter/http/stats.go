package httpadapter

import (
	"net/http"
)

const (
	defaultRankingLimit = 5
	defaultDailyWindow  = 7
	maxDailyWindow      = 366
)

// handleStatsOverview returns the dashboard summary: ad counts, revenue,
// balance and ads remaining.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.svc.Analytics.Overview(r.Context())
	if err != nil {
		h.writeError(w, "stats overview", err)
		return
	}
	h.writeJSON(w, http.StatusOK, overview)
}

func (h *Handler) handleStatsRevenue(w http.ResponseWriter, r *http.Request) {
	total, err := h.svc.Analytics.TotalRevenue(r.Context(), nil)
	if err != nil {
		h.writeError(w, "stats revenue", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"total": total})
}

func (h *Handler) handleStatsMonthly(w http.ResponseWriter, r *http.Request) {
	months, err := h.svc.Analytics.MonthlyRevenue(r.Context(), nil)
	if err != nil {
		h.writeError(w, "stats monthly", err)
		return
	}
	h.writeJSON(w, http.StatusOK, months)
}

// handleStatsDaily returns one bucket per calendar day for the last `days`
// days, today included.
func (h *Handler) handleStatsDaily(w http.ResponseWriter, r *http.Request) {
	days, err := intQuery(r, "days", defaultDailyWindow)
	if err != nil {
		h.writeError(w, "stats daily", err)
		return
	}
	if days < 1 || days > maxDailyWindow {
		http.Error(w, "days must be between 1 and 366", http.StatusBadRequest)
		return
	}
	buckets, err := h.svc.Analytics.DailyRevenue(r.Context(), days, nil)
	if err != nil {
		h.writeError(w, "stats daily", err)
		return
	}
	h.writeJSON(w, http.StatusOK, buckets)
}

func (h *Handler) handleStatsTop(w http.ResponseWriter, r *http.Request) {
	limit, err := intQuery(r, "limit", defaultRankingLimit)
	if err != nil {
		h.writeError(w, "stats top", err)
		return
	}
	top, err := h.svc.Analytics.TopClients(r.Context(), limit, nil)
	if err != nil {
		h.writeError(w, "stats top", err)
		return
	}
	h.writeJSON(w, http.StatusOK, top)
}

func (h *Handler) handleStatsWorst(w http.ResponseWriter, r *http.Request) {
	limit, err := intQuery(r, "limit", defaultRankingLimit)
	if err != nil {
		h.writeError(w, "stats worst", err)
		return
	}
	worst, err := h.svc.Analytics.WorstClients(r.Context(), limit, nil)
	if err != nil {
		h.writeError(w, "stats worst", err)
		return
	}
	h.writeJSON(w, http.StatusOK, worst)
}

func (h *Handler) handleStatsRetention(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Analytics.RetentionStats(r.Context(), nil)
	if err != nil {
		h.writeError(w, "stats retention", err)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}

package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"pledge-data/internal/core/port"
)

// Services are the use cases the HTTP adapter drives.
type Services struct {
	Ads       port.AdUseCase
	Clients   port.ClientUseCase
	Placement port.PlacementUseCase
	Budget    port.BudgetUseCase
	Analytics port.AnalyticsUseCase
	Backup    port.BackupUseCase
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. Routes are registered on a chi.Router under /api/v1.
type Handler struct {
	svc    Services
	clock  port.Clock
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc Services, clock port.Clock, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, clock: clock, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/ads", func(r chi.Router) {
			r.Get("/", h.handleListAds)
			r.Post("/", h.handlePlaceAd)
			r.Get("/suggestions", h.handleSuggestAdNames)
			r.Get("/{id}", h.handleGetAd)
			r.Put("/{id}", h.handleUpdateAd)
			r.Delete("/{id}", h.handleDeleteAd)
			r.Post("/{id}/renew", h.handleRenewAd)
		})
		r.Route("/clients", func(r chi.Router) {
			r.Get("/", h.handleListClients)
			r.Post("/", h.handleAddClient)
			r.Post("/merge", h.handleMergeClients)
			r.Get("/{id}", h.handleGetClient)
			r.Put("/{id}", h.handleUpdateClient)
			r.Delete("/{id}", h.handleDeleteClient)
			r.Get("/{id}/ads", h.handleListClientAds)
			r.Post("/{id}/touch", h.handleTouchClient)
		})
		r.Route("/budget", func(r chi.Router) {
			r.Get("/", h.handleGetBudget)
			r.Put("/balance", h.handleSetBalance)
			r.Post("/packs", h.handleAddPack)
			r.Get("/purchases", h.handleListPurchases)
		})
		r.Route("/stats", func(r chi.Router) {
			r.Get("/overview", h.handleStatsOverview)
			r.Get("/revenue", h.handleStatsRevenue)
			r.Get("/monthly", h.handleStatsMonthly)
			r.Get("/daily", h.handleStatsDaily)
			r.Get("/top", h.handleStatsTop)
			r.Get("/worst", h.handleStatsWorst)
			r.Get("/retention", h.handleStatsRetention)
		})
		r.Get("/alerts", h.handleAlerts)
		r.Get("/backup", h.handleExportBackup)
		r.Post("/backup", h.handleImportBackup)
		r.Post("/reset", h.handleReset)
		r.Get("/export/ads.csv", h.handleExportCSV)
		r.Get("/export/ads.xlsx", h.handleExportXLSX)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

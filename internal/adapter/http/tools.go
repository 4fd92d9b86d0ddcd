package httpadapter

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"pledge-data/internal/adapter/export"
	"pledge-data/internal/core/domain"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *Handler) handleAlerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.svc.Analytics.Alerts(r.Context(), h.clock.Now())
	if err != nil {
		h.writeError(w, "alerts", err)
		return
	}
	h.writeJSON(w, http.StatusOK, alerts)
}

// handleExportBackup downloads the whole store as a JSON backup document.
func (h *Handler) handleExportBackup(w http.ResponseWriter, r *http.Request) {
	doc, err := h.svc.Backup.Export(r.Context())
	if err != nil {
		h.writeError(w, "export backup", err)
		return
	}
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"backup_%s.json\"", doc.CreatedAt.Format("20060102")))
	h.writeJSON(w, http.StatusOK, doc)
}

// handleImportBackup replaces every collection with the posted document.
// Once decoded, the import runs detached from the request so a client that
// disconnects mid-way cannot leave the store cleared but not refilled.
func (h *Handler) handleImportBackup(w http.ResponseWriter, r *http.Request) {
	var doc domain.Backup
	if err := decodeJSON(r, &doc); err != nil {
		h.writeError(w, "import backup", err)
		return
	}
	if doc.Version != 0 && doc.Version != domain.BackupVersion {
		http.Error(w, fmt.Sprintf("unsupported backup version %d", doc.Version), http.StatusBadRequest)
		return
	}
	if err := h.svc.Backup.Import(context.WithoutCancel(r.Context()), doc); err != nil {
		h.writeError(w, "import backup", err)
		return
	}
	h.logger.Info("backup imported",
		slog.Int("ads", len(doc.Ads)),
		slog.Int("clients", len(doc.Clients)))
	w.WriteHeader(http.StatusNoContent)
}

// handleReset wipes every collection. It requires ?confirm=yes.
func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("confirm") != "yes" {
		http.Error(w, "reset requires confirm=yes", http.StatusBadRequest)
		return
	}
	if err := h.svc.Backup.Reset(r.Context()); err != nil {
		h.writeError(w, "reset", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) exportRows(r *http.Request) ([]export.Row, error) {
	snap, err := h.svc.Analytics.Snapshot(r.Context())
	if err != nil {
		return nil, err
	}
	return export.Rows(snap.Ads, snap.Clients, h.clock.Now()), nil
}

func (h *Handler) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	rows, err := h.exportRows(r)
	if err != nil {
		h.writeError(w, "export csv", err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"ads_%s.csv\"", h.clock.Now().Format("20060102")))
	if err = export.WriteCSV(w, rows); err != nil {
		h.logger.Error("write csv error", slog.Any("error", err))
	}
}

func (h *Handler) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	rows, err := h.exportRows(r)
	if err != nil {
		h.writeError(w, "export xlsx", err)
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"ads_%s.xlsx\"", h.clock.Now().Format("20060102")))
	if err = export.WriteXLSX(w, rows); err != nil {
		h.logger.Error("write xlsx error", slog.Any("error", err))
	}
}

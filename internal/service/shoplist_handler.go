package service

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/mmynk/foodgram/internal/metrics"
	"github.com/mmynk/foodgram/internal/middleware"
	"github.com/mmynk/foodgram/internal/shoplist"
)

// DownloadShoppingListPath is where ShoplistHandler is mounted.
const DownloadShoppingListPath = "/api/recipes/download_shopping_cart/"

type downloadFormat struct {
	contentType string
	filename    string
	write       func(io.Writer, []shoplist.Line) error
}

var downloadFormats = map[string]downloadFormat{
	"txt": {
		contentType: "text/plain; charset=utf-8",
		filename:    "shoplist.txt",
		write:       shoplist.WriteText,
	},
	"csv": {
		contentType: "text/csv; charset=utf-8",
		filename:    "shoplist.csv",
		write:       shoplist.WriteCSV,
	},
}

// ShoplistHandler serves the caller's shopping list as a file attachment.
// It must run behind middleware.RequireAuthHTTP.
//
// Query parameters:
//
//	format: txt (default) or csv
//	sort:   "name" orders lines alphabetically instead of first-seen
type ShoplistHandler struct {
	source shoplist.Source
}

// NewShoplistHandler creates a download handler reading from source.
func NewShoplistHandler(source shoplist.Source) *ShoplistHandler {
	return &ShoplistHandler{source: source}
}

func (h *ShoplistHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		middleware.WriteError(w, http.StatusUnauthorized, fmt.Errorf("authentication required"))
		return
	}

	name := r.URL.Query().Get("format")
	if name == "" {
		name = "txt"
	}
	format, ok := downloadFormats[name]
	if !ok {
		middleware.WriteError(w, http.StatusBadRequest, fmt.Errorf("unsupported format %q: use txt or csv", name))
		return
	}

	slog.Info("Shopping list download requested", "user_id", userID, "format", name)

	lines, err := shoplist.Build(r.Context(), h.source, userID)
	if err != nil {
		slog.Error("Shopping list download failed", "user_id", userID, "error", err)
		middleware.WriteError(w, http.StatusInternalServerError, fmt.Errorf("failed to build shopping list"))
		return
	}
	if r.URL.Query().Get("sort") == "name" {
		lines = shoplist.SortByName(lines)
	}

	var body bytes.Buffer
	if err := format.write(&body, lines); err != nil {
		slog.Error("Shopping list render failed", "user_id", userID, "error", err)
		middleware.WriteError(w, http.StatusInternalServerError, fmt.Errorf("failed to render shopping list"))
		return
	}
	metrics.RecordShoppingListExport(name, len(lines))

	w.Header().Set("Content-Type", format.contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", format.filename))
	w.WriteHeader(http.StatusOK)
	if _, err := body.WriteTo(w); err != nil {
		slog.Warn("Shopping list write interrupted", "user_id", userID, "error", err)
	}
}

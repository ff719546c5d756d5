package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/newtab/internal/domain"
	"github.com/MrSnakeDoc/newtab/internal/httpserver/deps"
	"github.com/MrSnakeDoc/newtab/internal/logger"
)

// Board returns tiles, settings and form state.
func Board(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, d.Logger, http.StatusOK, d.Store.Board())
	}
}

// AddShortcut creates a shortcut from a draft body.
func AddShortcut(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.Draft
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, d.Logger, http.StatusBadRequest, "invalid json body")
			return
		}

		sc, err := d.Store.AddShortcut(req.URL, req.Name, req.Color, req.DisplayMode)
		if err != nil {
			d.Logger.Debug("shortcut rejected",
				logger.String("url", req.URL),
				logger.Error(err))
			writeValidation(w, d.Logger, err)
			return
		}
		writeJSON(w, d.Logger, http.StatusCreated, sc)
	}
}

// RemoveShortcut deletes a shortcut. Unknown ids are not an error.
func RemoveShortcut(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Store.RemoveShortcut(chi.URLParam(r, "id"))
		w.WriteHeader(http.StatusNoContent)
	}
}

// IconError is reported by the page when a tile's icon failed to load.
// The report may arrive after the shortcut was deleted.
func IconError(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		d.Store.MarkIconFailed(id)
		d.Logger.Debug("icon load failed", logger.String("id", id))
		w.WriteHeader(http.StatusNoContent)
	}
}

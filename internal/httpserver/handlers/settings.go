package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/newtab/internal/httpserver/deps"
)

type backgroundRequest struct {
	URL string `json:"url"`
}

type blurRequest struct {
	Enabled  *bool `json:"enabled"`
	Strength *int  `json:"strength"`
}

func GetSettings(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, d.Logger, http.StatusOK, d.Store.Settings())
	}
}

// ApplyBackground sets or (with a blank url) clears the background.
// An invalid url is rejected and the current background is kept.
func ApplyBackground(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req backgroundRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, d.Logger, http.StatusBadRequest, "invalid json body")
			return
		}
		if err := d.Store.ApplyBackground(req.URL); err != nil {
			writeValidation(w, d.Logger, err)
			return
		}
		writeJSON(w, d.Logger, http.StatusOK, d.Store.Settings())
	}
}

func ClearBackground(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Store.ClearBackground()
		writeJSON(w, d.Logger, http.StatusOK, d.Store.Settings())
	}
}

// SetBlur updates whichever of enabled/strength is present.
func SetBlur(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req blurRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, d.Logger, http.StatusBadRequest, "invalid json body")
			return
		}
		if req.Enabled != nil {
			d.Store.SetBlurEnabled(*req.Enabled)
		}
		if req.Strength != nil {
			d.Store.SetBlurStrength(*req.Strength)
		}
		writeJSON(w, d.Logger, http.StatusOK, d.Store.Settings())
	}
}

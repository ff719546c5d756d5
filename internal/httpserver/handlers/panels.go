package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/newtab/internal/domain"
	"github.com/MrSnakeDoc/newtab/internal/httpserver/deps"
)

// Panel opens or closes the add or settings panel.
func Panel(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		panel, action := chi.URLParam(r, "panel"), chi.URLParam(r, "action")

		switch panel + "/" + action {
		case "add/open":
			d.Store.OpenAddPanel()
		case "add/close":
			d.Store.CloseAddPanel()
		case "settings/open":
			d.Store.OpenSettingsPanel()
		case "settings/close":
			d.Store.CloseSettingsPanel()
		default:
			writeError(w, d.Logger, http.StatusNotFound, "unknown panel action")
			return
		}
		writeJSON(w, d.Logger, http.StatusOK, d.Store.Board())
	}
}

type addDraftResponse struct {
	Draft     domain.Draft `json:"draft"`
	Open      bool         `json:"open"`
	CanSubmit bool         `json:"canSubmit"`
}

// PutAddDraft stores the add form's field values.
func PutAddDraft(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.Draft
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, d.Logger, http.StatusBadRequest, "invalid json body")
			return
		}
		d.Store.SetAddDraft(req)

		form := d.Store.AddDraft()
		writeJSON(w, d.Logger, http.StatusOK, addDraftResponse{
			Draft:     form.Draft,
			Open:      form.Open,
			CanSubmit: form.CanSubmit(),
		})
	}
}

// SubmitAddDraft adds the drafted shortcut.
func SubmitAddDraft(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sc, err := d.Store.SubmitAddDraft()
		if err != nil {
			writeValidation(w, d.Logger, err)
			return
		}
		writeJSON(w, d.Logger, http.StatusCreated, sc)
	}
}

type backgroundDraftResponse struct {
	Draft    string `json:"draft"`
	Open     bool   `json:"open"`
	CanApply bool   `json:"canApply"`
}

// PutBackgroundDraft stores the settings form's background field.
func PutBackgroundDraft(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req backgroundRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, d.Logger, http.StatusBadRequest, "invalid json body")
			return
		}
		d.Store.SetBackgroundDraft(req.URL)

		form := d.Store.SettingsDraft()
		writeJSON(w, d.Logger, http.StatusOK, backgroundDraftResponse{
			Draft:    form.BackgroundDraft,
			Open:     form.Open,
			CanApply: form.CanApply(),
		})
	}
}

// SubmitBackgroundDraft applies the drafted background.
func SubmitBackgroundDraft(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := d.Store.SubmitBackgroundDraft(); err != nil {
			writeValidation(w, d.Logger, err)
			return
		}
		writeJSON(w, d.Logger, http.StatusOK, d.Store.Settings())
	}
}

package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/newtab/internal/gesture"
	"github.com/MrSnakeDoc/newtab/internal/httpserver/deps"
)

// actionRemoved answers a delete tap that removed the tile.
const actionRemoved gesture.Action = "removed"

type gestureRequest struct {
	// At is the client event time in unix milliseconds; 0 means "now".
	At int64 `json:"at"`
}

type gestureResponse struct {
	State  string         `json:"state"`
	Action gesture.Action `json:"action,omitempty"`
	URL    string         `json:"url,omitempty"`
	Armed  string         `json:"armed,omitempty"`
}

// Gesture feeds one pointer event for tile {id} into the controller.
func Gesture(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		event := chi.URLParam(r, "event")

		var req gestureRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, d.Logger, http.StatusBadRequest, "invalid json body")
			return
		}
		at := d.Now()
		if req.At > 0 {
			at = time.UnixMilli(req.At)
		}

		var resp gestureResponse
		g := d.Gestures
		switch event {
		case "pointerdown":
			g.PointerDown(id, at)
		case "pointerup":
			g.PointerUp(id, at)
		case "pointercancel":
			g.PointerCancel(id, at)
		case "pointermove":
			g.PointerMove(id, at)
		case "click":
			out := g.Click(id)
			resp.Action = out.Action
			if out.Navigate() {
				if sc, ok := d.Store.Shortcut(id); ok {
					resp.URL = sc.URL
				} else {
					resp.Action = gesture.ActionNone
				}
			}
		case "contextmenu":
			resp.Action = g.ContextMenu(id).Action
		case "delete":
			resp.Action = gesture.ActionNone
			if g.DeleteTapped(id) {
				resp.Action = actionRemoved
			}
		default:
			writeError(w, d.Logger, http.StatusNotFound, "unknown gesture event")
			return
		}

		resp.State = g.State().String()
		resp.Armed = d.Store.Armed()
		writeJSON(w, d.Logger, http.StatusOK, resp)
	}
}

// BackgroundClick disarms the armed tile, if any.
func BackgroundClick(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out := d.Gestures.BackgroundClick()
		writeJSON(w, d.Logger, http.StatusOK, gestureResponse{
			State:  d.Gestures.State().String(),
			Action: out.Action,
		})
	}
}

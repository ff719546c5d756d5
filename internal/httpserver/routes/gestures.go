package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/newtab/internal/httpserver/deps"
	"github.com/MrSnakeDoc/newtab/internal/httpserver/handlers"
)

func init() { Register(registerGestures) }

// Pointer events are frequent and cheap, so only the host/CIDR guard applies.
func registerGestures(r chi.Router, d deps.Deps) {
	g := guarded(r, d)
	g.Post("/api/gestures/background/click", handlers.BackgroundClick(d))
	g.Post("/api/gestures/{id}/{event}", handlers.Gesture(d))
}

package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/newtab/internal/httpserver/deps"
	"github.com/MrSnakeDoc/newtab/internal/httpserver/handlers"
)

func init() { Register(registerPanels) }

func registerPanels(r chi.Router, d deps.Deps) {
	g := guarded(r, d)
	g.Post("/api/panels/{panel}/{action}", handlers.Panel(d))
	g.Put("/api/drafts/add", handlers.PutAddDraft(d))
	g.Put("/api/drafts/background", handlers.PutBackgroundDraft(d))

	m := mutating(r, d)
	m.Post("/api/drafts/add/submit", handlers.SubmitAddDraft(d))
	m.Post("/api/drafts/background/submit", handlers.SubmitBackgroundDraft(d))
}

package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/newtab/internal/httpserver/deps"
	"github.com/MrSnakeDoc/newtab/internal/httpserver/handlers"
)

func init() { Register(registerBoard) }

func registerBoard(r chi.Router, d deps.Deps) {
	g := guarded(r, d)
	g.Get("/", handlers.Page(d))
	g.Get("/api/board", handlers.Board(d))

	m := mutating(r, d)
	m.Post("/api/shortcuts", handlers.AddShortcut(d))
	m.Delete("/api/shortcuts/{id}", handlers.RemoveShortcut(d))
	m.Post("/api/shortcuts/{id}/icon-error", handlers.IconError(d))
}

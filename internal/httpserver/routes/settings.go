package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/newtab/internal/httpserver/deps"
	"github.com/MrSnakeDoc/newtab/internal/httpserver/handlers"
)

func init() { Register(registerSettings) }

func registerSettings(r chi.Router, d deps.Deps) {
	guarded(r, d).Get("/api/settings", handlers.GetSettings(d))

	m := mutating(r, d)
	m.Put("/api/settings/background", handlers.ApplyBackground(d))
	m.Delete("/api/settings/background", handlers.ClearBackground(d))
	m.Put("/api/settings/blur", handlers.SetBlur(d))
}

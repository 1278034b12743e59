package api

import (
	"net/http"
	"net/netip"

	"github.com/go-chi/chi/v5"
	"github.com/spamlists/spamlists/src/internal/config"
	"github.com/spamlists/spamlists/src/internal/lists"
)

// NewRouter creates a new HTTP router with all API endpoints. Clients outside
// of allowed are rejected; a nil allowed accepts everyone.
func NewRouter(cfg *config.Config, mgr *lists.Manager, allowed []netip.Prefix) http.Handler {
	r := chi.NewRouter()

	r.Use(Recovery)
	r.Use(Logger)
	r.Use(AllowedNetworks(allowed))
	r.Use(JSONContentType)

	h := NewHandler(cfg, mgr)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/users", h.GetUsers)
		r.Get("/users/{user}/lists/{list}", h.GetUserList)

		r.Post("/domains/add", h.AddDomains)
		r.Post("/domains/remove", h.RemoveDomains)

		r.Get("/health", h.CheckHealth)
	})

	return r
}

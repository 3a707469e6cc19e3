package router

import (
	"net/http"

	"github.com/SurakshaKumari/menudigitale-sub000/internal/auth"
	"github.com/SurakshaKumari/menudigitale-sub000/internal/handler"
	"github.com/SurakshaKumari/menudigitale-sub000/internal/middleware"

	"github.com/rs/zerolog"
)

// Handlers bundles the HTTP handlers the router wires up.
type Handlers struct {
	Auth        *handler.AuthHandler
	Menu        *handler.MenuHandler
	Catalog     *handler.CatalogHandler
	Allergen    *handler.AllergenHandler
	Translation *handler.TranslationHandler
	Public      *handler.PublicHandler
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, issuer *auth.TokenIssuer, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Public menu resolution by slug
	mux.HandleFunc("GET /public/menus/{slug}", h.Public.Resolve)

	// Account endpoints
	mux.HandleFunc("POST /api/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)

	// Owner menu management
	mux.HandleFunc("POST /api/menus", h.Menu.Create)
	mux.HandleFunc("GET /api/menus", h.Menu.List)
	mux.HandleFunc("GET /api/menus/{id}", h.Menu.Get)
	mux.HandleFunc("PUT /api/menus/{id}", h.Menu.Update)
	mux.HandleFunc("DELETE /api/menus/{id}", h.Menu.Delete)
	mux.HandleFunc("POST /api/menus/{id}/categories", h.Menu.CreateCategory)

	// Categories and dishes
	mux.HandleFunc("PUT /api/categories/{id}", h.Catalog.UpdateCategory)
	mux.HandleFunc("DELETE /api/categories/{id}", h.Catalog.DeleteCategory)
	mux.HandleFunc("POST /api/categories/{id}/dishes", h.Catalog.CreateDish)
	mux.HandleFunc("PUT /api/dishes/{id}", h.Catalog.UpdateDish)
	mux.HandleFunc("DELETE /api/dishes/{id}", h.Catalog.DeleteDish)
	mux.HandleFunc("PUT /api/dishes/{id}/allergens", h.Catalog.SetDishAllergens)

	// Owner-triggered translation generation
	mux.HandleFunc("POST /api/menus/{id}/translations/{lang}", h.Translation.Generate)
	mux.HandleFunc("DELETE /api/menus/{id}/translations/{lang}", h.Translation.Delete)

	// Allergen catalogue: reads for any authenticated user, writes admin-only
	mux.HandleFunc("GET /api/allergens", h.Allergen.List)

	adminOnly := middleware.RequireAdmin(logger)
	mux.Handle("POST /api/allergens", adminOnly(http.HandlerFunc(h.Allergen.Create)))
	mux.Handle("PUT /api/allergens/{id}", adminOnly(http.HandlerFunc(h.Allergen.Update)))
	mux.Handle("DELETE /api/allergens/{id}", adminOnly(http.HandlerFunc(h.Allergen.Delete)))

	// Apply middleware in order: Recovery -> Logging -> CORS -> JWTAuth
	var root http.Handler = mux
	root = middleware.JWTAuth(issuer, logger)(root)
	root = middleware.CORS(root)
	root = middleware.Logging(logger)(root)
	root = middleware.Recovery(logger)(root)

	return root
}

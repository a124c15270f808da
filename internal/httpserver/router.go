package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"megacart/internal/catalog"
	"megacart/internal/config"
	"megacart/internal/security"
	"megacart/internal/service"
	"megacart/internal/store"
	"megacart/internal/store/memory"

	_ "megacart/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter constructs the main HTTP router and wires routes, services,
// and middleware.
func NewRouter(cfg *config.Config, st *store.Store, tokenSvc *security.TokenService, passwordHasher *security.PasswordHasher) http.Handler {
	r := chi.NewRouter()

	// Middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Services
	authSvc := service.NewAuthService(st.Users, tokenSvc, passwordHasher)
	catalogSvc := service.NewCatalogService(st.Products, memory.NewProductRepo(catalog.Seed()))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"message": "MegaCart API is running!",
			"status":  "success",
		})
	})

	r.Get("/health", handleHealth(st))

	// Swagger documentation
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	// Auth routes
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", handleRegister(authSvc))
		r.Post("/login", handleLogin(authSvc))

		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(tokenSvc, st.Users))
			r.Get("/me", handleMe())
		})
	})

	// Catalog routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", handleListProducts(catalogSvc))
			r.Get("/{productID}", handleGetProduct(catalogSvc))
		})
		r.Get("/categories/", handleListCategories(catalogSvc))
	})

	return r
}

// @Summary      Health check
// @Description  Reports service health and the active store backend
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func handleHealth(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := "healthy"
		if err := st.Ping(r.Context()); err != nil {
			status = "degraded"
		}
		writeJSON(w, http.StatusOK, map[string]string{
			"status": status,
			"store":  st.Name(),
		})
	}
}

// writeJSON is a small helper to send JSON responses.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

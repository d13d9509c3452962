package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/vaultpass/vaultpass-web/internal/middleware"
	"github.com/vaultpass/vaultpass-web/internal/service"
	"github.com/vaultpass/vaultpass-web/internal/session"
)

// RouterConfig holds everything the HTTP surface needs.
type RouterConfig struct {
	Store         *session.Store
	Generator     *service.GeneratorService
	AuthLimiter   *middleware.IPRateLimiter
	SessionSecret string
	SessionExpiry time.Duration
	CookieSecure  bool
}

// NewRouter wires all browser-facing routes.
func NewRouter(cfg RouterConfig) http.Handler {
	genHandler := NewGeneratorHandler(cfg.Generator)
	authHandler := NewAuthHandler(cfg.Store, cfg.SessionSecret, cfg.SessionExpiry, cfg.CookieSecure)
	userHandler := NewUserHandler()
	itemHandler := NewItemHandler()
	cardHandler := NewCardHandler()

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/api/v1/generate", genHandler.HandleGenerate)

	r.Group(func(r chi.Router) {
		if cfg.AuthLimiter != nil {
			r.Use(cfg.AuthLimiter.Middleware)
		}
		r.Post("/api/v1/auth/signup", authHandler.HandleSignUp)
		r.Post("/api/v1/auth/login", authHandler.HandleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionAuth(cfg.SessionSecret, cfg.Store))

		r.Post("/api/v1/auth/logout", authHandler.HandleLogout)
		r.Get("/api/v1/auth/me", authHandler.HandleMe)

		r.Patch("/api/v1/users", userHandler.HandleUpdateProfile)
		r.Patch("/api/v1/users/password", userHandler.HandleUpdatePassword)
		r.Get("/api/v1/users/profile-image", userHandler.HandleProfileImage)

		r.Get("/api/v1/items", itemHandler.HandleList)
		r.Post("/api/v1/items", itemHandler.HandleCreate)
		r.Patch("/api/v1/items/{id}", itemHandler.HandleUpdate)
		r.Delete("/api/v1/items/{id}", itemHandler.HandleDelete)

		r.Get("/api/v1/cards", cardHandler.HandleList)
		r.Post("/api/v1/cards", cardHandler.HandleCreate)
		r.Patch("/api/v1/cards/{id}", cardHandler.HandleUpdate)
		r.Delete("/api/v1/cards/{id}", cardHandler.HandleDelete)
	})

	return r
}

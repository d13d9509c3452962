package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/vaultpass/vaultpass-web/internal/apiclient"
	"github.com/vaultpass/vaultpass-web/internal/config"
	"github.com/vaultpass/vaultpass-web/internal/handler"
	"github.com/vaultpass/vaultpass-web/internal/middleware"
	"github.com/vaultpass/vaultpass-web/internal/service"
	"github.com/vaultpass/vaultpass-web/internal/session"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logouts := apiclient.NewLogoutBus()
	store := session.NewStore(logouts, cfg.APIBaseURL, cfg.SessionExpiry)
	defer store.Close()

	authLimiter := middleware.NewIPRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst)
	go authLimiter.RunCleanup(ctx)
	go sweepSessions(ctx, store, time.Minute)

	router := handler.NewRouter(handler.RouterConfig{
		Store:         store,
		Generator:     service.NewGeneratorService(nil),
		AuthLimiter:   authLimiter,
		SessionSecret: cfg.SessionSecret,
		SessionExpiry: cfg.SessionExpiry,
		CookieSecure:  cfg.CookieSecure,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "api", cfg.APIBaseURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

func sweepSessions(ctx context.Context, store *session.Store, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := store.Sweep(); n > 0 {
				slog.Info("expired sessions removed", "count", n)
			}
		}
	}
}

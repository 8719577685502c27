package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Raghavendrawissen/splitapp-client/docs"
	"github.com/Raghavendrawissen/splitapp-client/internal/auth"
	"github.com/Raghavendrawissen/splitapp-client/internal/config"
	"github.com/Raghavendrawissen/splitapp-client/internal/expense"
	"github.com/Raghavendrawissen/splitapp-client/internal/group"
	"github.com/Raghavendrawissen/splitapp-client/internal/logging"
	"github.com/Raghavendrawissen/splitapp-client/internal/mail"
	"github.com/Raghavendrawissen/splitapp-client/internal/profile"
	"github.com/Raghavendrawissen/splitapp-client/internal/storage"
	"github.com/Raghavendrawissen/splitapp-client/internal/storage/postgres"
	"github.com/Raghavendrawissen/splitapp-client/internal/storage/sqlite"
	"github.com/Raghavendrawissen/splitapp-client/pkg/metrics"
	mw "github.com/Raghavendrawissen/splitapp-client/pkg/middleware"
)

// @title        SplitApp API
// @version      1.0
// @description  Expense splitting service with groups, members and shared expenses.
// @BasePath     /api/v1
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	logging.Setup()

	cfg := config.Load()

	store, err := openStore(cfg)
	if err != nil {
		slog.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	notifier := auth.NewNotifier()
	mailer := mail.NewService(cfg)

	// Audit log for sign-in and sign-out events.
	unsubscribe := notifier.Subscribe(func(evt auth.Event) {
		slog.Info("auth state changed", "event", evt.Type, "user_id", evt.UserID)
	})
	defer unsubscribe()

	requireAuth := mw.RequireAuth(func(token string) (string, string, error) {
		claims, err := jwtManager.Validate(token)
		if err != nil {
			return "", "", err
		}
		return claims.UserID, claims.Email, nil
	})

	// Auth feature
	authService := auth.NewService(store, jwtManager, mailer, notifier, cfg.BaseURL)
	authHandler := auth.NewHandler(authService, requireAuth)

	// Group feature
	groupService := group.NewService(store)
	groupHandler := group.NewHandler(groupService)

	// Expense feature
	expenseService := expense.NewService(store)
	expenseHandler := expense.NewHandler(expenseService)

	// Profile feature
	profileService := profile.NewService(store, authService)
	profileHandler := profile.NewHandler(profileService)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(mw.RequestLogger)
	r.Use(metrics.Middleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/auth", authHandler.Routes())

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Mount("/groups", groupHandler.Routes())
			r.Mount("/expenses", expenseHandler.Routes())
			r.Mount("/profile", profileHandler.Routes())
		})
	})

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	slog.Info("server starting", "port", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

// openStore picks the storage backend from configuration. A configured
// DATABASE_URL selects PostgreSQL; otherwise a local SQLite file is used.
func openStore(cfg *config.Config) (storage.Store, error) {
	if cfg.DatabaseURL != "" {
		slog.Info("using postgres store")
		return postgres.New(cfg.DatabaseURL)
	}
	slog.Info("using sqlite store", "path", cfg.SQLitePath)
	return sqlite.New(cfg.SQLitePath)
}

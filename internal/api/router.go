package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pokearch/registry/internal/api/handler"
	"github.com/pokearch/registry/internal/api/middleware"
	"github.com/pokearch/registry/internal/services/access"
	"github.com/pokearch/registry/internal/services/grants"
	"github.com/pokearch/registry/internal/services/registry"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	AccessService   *access.Service
	RegistryService *registry.Service
	GrantsService   *grants.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	allowanceHandler := handler.NewAllowanceHandler(cfg.AccessService)
	playerHandler := handler.NewPlayerHandler(cfg.RegistryService)
	minterHandler := handler.NewMinterHandler(cfg.RegistryService)
	grantHandler := handler.NewGrantHandler(cfg.GrantsService)

	// Create middleware
	senderMiddleware := middleware.Sender()
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// Public API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)
	api.Use(senderMiddleware)

	// Allow-list routes. Mutations are deliberately open to any sender;
	// only the minter binding below is owner-gated.
	api.HandleFunc("/allowances/{address}", allowanceHandler.Grant).Methods(http.MethodPut)
	api.HandleFunc("/allowances/{address}", allowanceHandler.Revoke).Methods(http.MethodDelete)
	api.HandleFunc("/allowances/{address}", allowanceHandler.Check).Methods(http.MethodGet)

	// Player routes
	api.HandleFunc("/players", playerHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/players/{id}", playerHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}/catch", playerHandler.Catch).Methods(http.MethodPost)
	api.HandleFunc("/players/{id}/pokemon/{index}/heal", playerHandler.Heal).Methods(http.MethodPost)
	api.HandleFunc("/players/{id}/berries", playerHandler.CollectBerries).Methods(http.MethodPost)
	api.HandleFunc("/players/{id}/default-pokemon", playerHandler.SetDefaultPokemon).Methods(http.MethodPut)

	// Minter routes
	api.HandleFunc("/minter", minterHandler.Bind).Methods(http.MethodPut)
	api.HandleFunc("/minter", minterHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/token-count", minterHandler.TokenCount).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Runtime-facing subrouter: the fee-sponsorship runtime calls this,
	// not ordinary clients. Deployments should keep it off the public
	// listener.
	internal := r.PathPrefix("/internal/v1").Subrouter()
	internal.Use(recoveryMiddleware)
	internal.Use(loggingMiddleware)
	internal.HandleFunc("/grants/validate", grantHandler.Validate).Methods(http.MethodPost)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

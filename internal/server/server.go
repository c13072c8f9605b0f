// Package server assembles the Foodgram HTTP stack: routing, middleware,
// Connect services and the shopping list download.
package server

import (
	"log/slog"
	"net/http"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/foodgram/internal/auth"
	"github.com/mmynk/foodgram/internal/config"
	"github.com/mmynk/foodgram/internal/middleware"
	"github.com/mmynk/foodgram/internal/service"
	"github.com/mmynk/foodgram/internal/storage"
	"github.com/mmynk/foodgram/pkg/api/apiconnect"
)

// Deps are the collaborators the router wires into the services.
type Deps struct {
	Config        *config.Config
	Store         storage.Store
	JWT           *auth.JWTManager
	Authenticator auth.Authenticator
	Logger        *slog.Logger
}

// NewRouter builds the HTTP handler serving every Foodgram endpoint.
func NewRouter(d Deps) http.Handler {
	cfg := d.Config

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Security.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", "Connect-Protocol-Version", "Connect-Timeout-Ms"},
		ExposedHeaders: []string{"Connect-Protocol-Version", "Connect-Timeout-Ms", "Content-Disposition"},
		MaxAge:         300,
	}))

	logging := middleware.LoggingInterceptor()
	// Logging runs outermost so rejected calls are logged and counted too.
	optional := connect.WithInterceptors(logging, middleware.OptionalAuth(d.JWT))
	required := connect.WithInterceptors(logging, middleware.RequireAuth(d.JWT))

	// Register Connect services
	r.Group(func(r chi.Router) {
		if cfg.Security.RateLimitReqs > 0 {
			r.Use(httprate.LimitByIP(cfg.Security.RateLimitReqs, cfg.Security.RateLimitWindow))
		}
		r.Mount(apiconnect.NewAuthServiceHandler(
			service.NewAuthService(d.Authenticator, d.JWT, d.Store, d.Logger), optional))
	})
	r.Mount(apiconnect.NewUserServiceHandler(
		service.NewUserService(d.Store, d.Authenticator, cfg.Pagination), optional))
	r.Mount(apiconnect.NewSubscriptionServiceHandler(
		service.NewSubscriptionService(d.Store, cfg.Pagination), required))
	r.Mount(apiconnect.NewCatalogServiceHandler(
		service.NewCatalogService(d.Store), optional))
	r.Mount(apiconnect.NewRecipeServiceHandler(
		service.NewRecipeService(d.Store, cfg.Pagination), optional))
	r.Mount(apiconnect.NewCartServiceHandler(
		service.NewCartService(d.Store), required))

	r.With(middleware.RequireAuthHTTP(d.JWT)).
		Get(service.DownloadShoppingListPath, service.NewShoplistHandler(d.Store).ServeHTTP)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return r
}

// New wraps handler in an HTTP server. h2c provides HTTP/2 without TLS for
// Connect and gRPC clients.
func New(cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr(),
		Handler:      h2c.NewHandler(handler, &http2.Server{}),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
}

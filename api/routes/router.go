package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/goshophq/marketplace-backend/api/controllers"
	cartcontrollers "github.com/goshophq/marketplace-backend/api/controllers/cart"
	"github.com/goshophq/marketplace-backend/api/middleware"
	"github.com/goshophq/marketplace-backend/pkg/config"
	"github.com/goshophq/marketplace-backend/pkg/logger"
)

// NewRouter assembles the HTTP surface: health probes, the quote
// endpoint, and Prometheus metrics.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP controllers.Pinger,
	redisP controllers.Pinger,
	quoteService cartcontrollers.QuoteService,
	gatherer prometheus.Gatherer,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisP))
	})

	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Post("/quote", cartcontrollers.Quote(quoteService, logg))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	return r
}

// Package kernel assembles the HTTP handler: global middleware, ambient
// endpoints (/health, /metrics, /graphql) and the REST resources.
package kernel

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/orderdesk/app/graphql"
	"github.com/shashiranjanraj/orderdesk/app/repositories"
	"github.com/shashiranjanraj/orderdesk/app/routes"
	"github.com/shashiranjanraj/orderdesk/app/services"
	"github.com/shashiranjanraj/orderdesk/config"
	"github.com/shashiranjanraj/orderdesk/pkg/cache"
	"github.com/shashiranjanraj/orderdesk/pkg/database"
	gql "github.com/shashiranjanraj/orderdesk/pkg/graphql"
	"github.com/shashiranjanraj/orderdesk/pkg/metrics"
	"github.com/shashiranjanraj/orderdesk/pkg/middleware"
	"github.com/shashiranjanraj/orderdesk/pkg/orm"
	"github.com/shashiranjanraj/orderdesk/pkg/reqid"
	"github.com/shashiranjanraj/orderdesk/pkg/response"
	"github.com/shashiranjanraj/orderdesk/pkg/router"
)

const healthTimeout = 2 * time.Second

// HTTPKernel owns the router and the services behind it.
type HTTPKernel struct {
	db       *gorm.DB
	router   *router.Router
	services *services.Set
}

// Options tunes the kernel. The zero value reads the rate limit from config
// and runs without a read cache.
type Options struct {
	Cache    cache.Cache
	CacheTTL time.Duration
	// RateLimit is requests per client per minute; zero disables it.
	RateLimit int
}

// Option applies one setting to Options.
type Option func(*Options)

// WithCache puts c in front of every repository.
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(o *Options) {
		o.Cache = c
		o.CacheTTL = ttl
	}
}

// WithRateLimit overrides RATE_LIMIT.
func WithRateLimit(perMinute int) Option {
	return func(o *Options) { o.RateLimit = perMinute }
}

// NewHTTPKernel wires repositories, services and routes over db.
func NewHTTPKernel(db *gorm.DB, opts ...Option) (*HTTPKernel, error) {
	o := Options{RateLimit: config.RateLimit(), CacheTTL: config.CacheTTL()}
	for _, opt := range opts {
		opt(&o)
	}

	var storeOpts []orm.Option
	if o.Cache != nil {
		storeOpts = append(storeOpts, orm.WithCache(o.Cache, o.CacheTTL))
	}
	svc := services.New(repositories.NewSet(db, storeOpts...))

	schema, err := graphql.NewSchema(svc)
	if err != nil {
		return nil, fmt.Errorf("kernel: graphql schema: %w", err)
	}

	r := router.New()

	// Outermost first. Metrics sees total latency; Recovery runs before
	// anything that might panic; the request ID exists before anything logs.
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.CORSOptionsFromConfig()))
	r.Use(middleware.RateLimit(o.RateLimit, time.Minute))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.NotFound(w)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	k := &HTTPKernel{db: db, router: r, services: svc}

	r.Get("/health", "health", k.health)
	r.Handle(http.MethodGet, "/metrics", "metrics", metrics.Handler())

	gqlHandler := gql.Handler(schema)
	r.Post("/graphql", "graphql", gqlHandler)
	r.Get("/graphql", "graphql.query", gqlHandler)

	routes.RegisterAPI(r, svc)

	return k, nil
}

// Handler returns the root http.Handler.
func (k *HTTPKernel) Handler() http.Handler {
	return k.router.Handler()
}

// Routes lists every registered route.
func (k *HTTPKernel) Routes() []router.RouteInfo {
	return k.router.Routes()
}

// Services exposes the service set, for seeders.
func (k *HTTPKernel) Services() *services.Set {
	return k.services
}

func (k *HTTPKernel) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := database.Ping(ctx, k.db); err != nil {
		response.Error(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	response.OK(w, map[string]string{"status": "ok"})
}

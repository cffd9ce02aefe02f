package router

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/kordlan/harmonia_backend/config"
	"github.com/kordlan/harmonia_backend/internal/api/http/handler"
	"github.com/kordlan/harmonia_backend/internal/api/http/middleware"
	"github.com/kordlan/harmonia_backend/internal/service/profile"
	"github.com/kordlan/harmonia_backend/internal/service/reference"
	"github.com/kordlan/harmonia_backend/internal/service/search"
	"github.com/kordlan/harmonia_backend/pkg/ratelimit"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg          *config.Config
	SearchSvc    search.Service
	ProfileSvc   profile.Service
	ReferenceSvc reference.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	searchH := handler.NewSearchHandler(r.p.SearchSvc, r.p.Cfg.Search.MaxQueryChars)
	profileH := handler.NewProfileHandler(r.p.ProfileSvc)
	referenceH := handler.NewReferenceHandler(r.p.ReferenceSvc)

	api := app.Group("/api/v1")

	r.registerSearchRoutes(api, searchH)
	r.registerProfileRoutes(api, profileH)
	r.registerReferenceRoutes(api, referenceH)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New())
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}

// searchLimiter builds the per-client admission gate from config,
// falling back to the 10 requests / minute default.
func (r *Router) searchLimiter() fiber.Handler {
	rl := r.p.Cfg.Search.RateLimit
	limiter := ratelimit.New(rl.Requests, time.Duration(rl.WindowSeconds)*time.Second)
	return middleware.SearchLimit(limiter)
}

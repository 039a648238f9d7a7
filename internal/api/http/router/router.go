package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/healhub/healhub_backend/config"
	"github.com/healhub/healhub_backend/internal/api/http/handler"
	"github.com/healhub/healhub_backend/internal/service/admin"
	"github.com/healhub/healhub_backend/internal/service/auth"
	"github.com/healhub/healhub_backend/internal/service/doctor"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg       *config.Config
	AuthSvc   auth.Service
	AdminSvc  admin.Service
	DoctorSvc doctor.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	authH := handler.NewAuthHandler(r.p.AuthSvc)
	adminH := handler.NewAdminHandler(r.p.AdminSvc)
	doctorH := handler.NewDoctorHandler(r.p.DoctorSvc)
	scheduleH := handler.NewScheduleHandler()

	api := app.Group("/api/v1")

	r.registerAuthRoutes(api, authH)
	r.registerAdminRoutes(api, adminH)
	r.registerDoctorRoutes(api, doctorH)
	r.registerScheduleRoutes(api, scheduleH)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New())
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}

package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/iwantdrugsxd/mind-ease/config"
	"github.com/iwantdrugsxd/mind-ease/internal/api/http/handler"
	"github.com/iwantdrugsxd/mind-ease/internal/api/http/middleware"
	"github.com/iwantdrugsxd/mind-ease/internal/repo"
	entuser "github.com/iwantdrugsxd/mind-ease/internal/repo/user"
	"github.com/iwantdrugsxd/mind-ease/internal/service/auth"
	"github.com/iwantdrugsxd/mind-ease/internal/service/clinician"
	"github.com/iwantdrugsxd/mind-ease/internal/service/conversation"
	"github.com/iwantdrugsxd/mind-ease/internal/service/notification"
	"github.com/iwantdrugsxd/mind-ease/internal/service/patient"
	"github.com/iwantdrugsxd/mind-ease/internal/service/screening"
	"github.com/iwantdrugsxd/mind-ease/internal/service/selfcare"
	pasetotoken "github.com/iwantdrugsxd/mind-ease/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg             *config.Config
	Redis           *redis.Client
	DB              *repo.Client
	AuthSvc         auth.Service
	PatientSvc      patient.Service
	ScreeningSvc    screening.Service
	ConversationSvc conversation.Service
	SelfCareSvc     selfcare.Service
	ClinicianSvc    clinician.Service
	NotificationSvc notification.Service
	PasetoMgr       *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)
	clinicianOnly := middleware.RequireRole(r.p.DB, entuser.RoleClinician)

	// 3. Initialize Handlers
	authH := handler.NewAuthHandler(r.p.AuthSvc)
	patientH := handler.NewPatientHandler(r.p.PatientSvc)
	screeningH := handler.NewScreeningHandler(r.p.ScreeningSvc, r.p.PatientSvc)
	conversationH := handler.NewConversationHandler(r.p.ConversationSvc, r.p.PatientSvc)
	selfCareH := handler.NewSelfCareHandler(r.p.SelfCareSvc, r.p.PatientSvc)
	clinicianH := handler.NewClinicianHandler(r.p.ClinicianSvc)
	notificationH := handler.NewNotificationHandler(r.p.NotificationSvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerAuthRoutes(api, authH, authRequired)
	r.registerPatientRoutes(api, patientH, authRequired)
	r.registerScreeningRoutes(api, screeningH, authRequired)
	r.registerChatRoutes(api, conversationH, authRequired)
	r.registerSelfCareRoutes(api, selfCareH, authRequired)
	r.registerClinicianRoutes(api, clinicianH, authRequired, clinicianOnly)
	r.registerNotificationRoutes(api, notificationH, authRequired)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool {
			return r.p.Redis.Ping(c.Context()).Err() == nil
		},
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}

package api

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jackc/pgx/v5/pgxpool"

	swagger "github.com/go-swagno/swagno-fiber/swagger"

	"github.com/camai-video/gateway/internal/alert"
	"github.com/camai-video/gateway/internal/api/docs"
	"github.com/camai-video/gateway/internal/api/handler"
	"github.com/camai-video/gateway/internal/api/middleware"
	"github.com/camai-video/gateway/internal/audit"
	"github.com/camai-video/gateway/internal/config"
	"github.com/camai-video/gateway/internal/media"
	"github.com/camai-video/gateway/internal/repository"
	"github.com/camai-video/gateway/internal/service"
	"github.com/camai-video/gateway/internal/ws"
)

type Dependencies struct {
	SessionRepo repository.SessionRepositoryInterface
	EventRepo   repository.EventRepositoryInterface
	PlateRepo   repository.PlateRepositoryInterface
	CameraRepo  repository.CameraRepositoryInterface
	Stores      *media.Stores
	DB          *pgxpool.Pool
}

type Router struct {
	app       *fiber.App
	logger    *slog.Logger
	cfg       *config.Config
	deps      *Dependencies
	wsHub     *ws.Hub
	cancelHub context.CancelFunc
}

func NewRouter(logger *slog.Logger, cfg *config.Config, deps *Dependencies) *Router {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(logger),
		AppName:      "CamAI Gateway",
	})

	return &Router{
		app:    app,
		logger: logger,
		cfg:    cfg,
		deps:   deps,
	}
}

func (r *Router) Setup() {
	// Global middlewares
	r.app.Use(requestid.New())
	r.app.Use(middleware.Recover(r.logger))
	r.app.Use(middleware.Logger(r.logger))
	r.app.Use(middleware.SecurityHeaders())
	r.app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Cookie",
	}))

	// Swagger documentation (no auth required)
	sw := docs.NewSwagger()
	swagger.SwaggerHandler(r.app, sw.MustToJson())

	// Health check endpoints (no auth required)
	var pinger handler.Pinger
	if r.deps != nil && r.deps.DB != nil {
		pinger = r.deps.DB
	}
	healthHandler := handler.NewHealthHandler(pinger)
	r.app.Get("/health", healthHandler.Health)
	r.app.Get("/ready", healthHandler.Ready)

	// Only configure the gateway surface if dependencies were provided
	if r.deps == nil {
		return
	}

	// WebSocket hub for live event delivery
	r.wsHub = ws.NewHub()
	hubCtx, hubCancel := context.WithCancel(context.Background())
	r.cancelHub = hubCancel
	go r.wsHub.Run(hubCtx)

	// Escalation rules push alerts through the same hub
	alertEngine := alert.NewEngine(alert.DefaultRules(), r.wsHub, r.logger)

	eventService := service.NewEventService(
		r.deps.EventRepo,
		r.deps.CameraRepo,
		service.Notifiers{r.wsHub, alertEngine},
	)

	trail := audit.NewSlogTrail(r.logger)

	// Media routes: the player fetches segments directly, the cache policy
	// comes from the route shape
	mediaHandler := handler.NewMediaHandler(r.deps.Stores, trail, r.logger)
	r.app.Get("/cameras/:id/stream/*", mediaHandler.Serve)
	r.app.Get("/cameras/:id/archive/*", mediaHandler.Serve)

	// Dashboard surface behind session auth
	v1 := r.app.Group("/v1")
	v1.Use(middleware.Session(r.cfg.SessionCookie, r.deps.SessionRepo))

	eventsHandler := handler.NewEventsHandler(eventService, r.logger)
	v1.Get("/events", eventsHandler.List)

	v1.Get("/ws", ws.UpgradeMiddleware(), ws.Handler(r.wsHub))

	// Internal surface behind the trust header, never behind sessions
	internal := r.app.Group("/internal")
	internal.Use(middleware.PlateSync(r.cfg.PlateSyncSecret))

	platesHandler := handler.NewPlatesHandler(r.deps.PlateRepo, eventService, trail, r.logger)
	internal.Get("/plates-sync", platesHandler.Sync)
	internal.Post("/events", platesHandler.IngestDetection)
}

func (r *Router) App() *fiber.App {
	return r.app
}

func (r *Router) Listen(addr string) error {
	return r.app.Listen(addr)
}

func (r *Router) Shutdown() error {
	if r.cancelHub != nil {
		r.cancelHub()
	}

	return r.app.Shutdown()
}

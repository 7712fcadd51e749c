package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoRetail-Admin/GoRetail-Admin/internal/auth"
	"github.com/GoRetail-Admin/GoRetail-Admin/internal/config"
	"github.com/GoRetail-Admin/GoRetail-Admin/internal/db/models"
	fiberadapter "github.com/GoRetail-Admin/GoRetail-Admin/internal/logger/adapter/fiber"
	"github.com/GoRetail-Admin/GoRetail-Admin/internal/web/handler/login"
	"github.com/GoRetail-Admin/GoRetail-Admin/internal/web/handler/logout"
	"github.com/GoRetail-Admin/GoRetail-Admin/internal/web/handler/menu"
	"github.com/GoRetail-Admin/GoRetail-Admin/internal/web/handler/modules"
	"github.com/GoRetail-Admin/GoRetail-Admin/internal/web/handler/pages"
	"github.com/GoRetail-Admin/GoRetail-Admin/internal/web/handler/user"
	guard "github.com/GoRetail-Admin/GoRetail-Admin/internal/web/middleware/auth"
	"github.com/GoRetail-Admin/GoRetail-Admin/internal/web/routes"
	"github.com/GoRetail-Admin/GoRetail-Admin/internal/web/session"
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	db           *gorm.DB
	authService  *auth.Service
	routeCache   *routes.Cache
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for graceful shutdown of the web service.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	// Wait interrupt or shutdown request through /shutdown
	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	// stop fiber http server
	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// checkAlive answers load balancer health probes. It flips to 503 during
// graceful shutdown so the pod drains before fiber stops listening.
func (s *Service) checkAlive(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.Status(fiber.StatusServiceUnavailable).SendString("shutting down")
	}

	return c.SendString("ok")
}

// dispatchPage resolves a page path against the caller's route table.
//
// The table holds one entry per granted routed permission and is rebuilt
// lazily per session token. Paths that exist in the database but not in the
// caller's table answer 403; paths nobody maps get the fallback page.
func (s *Service) dispatchPage(c *fiber.Ctx) error {
	sessData := auth.SessionFromContext(c)
	if sessData == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message":  auth.MsgUnauthorized,
			"redirect": "/login",
		})
	}

	table := s.routeCache.For(auth.BearerToken(c), auth.GetSessionPermissions(sessData))

	path := c.Path()
	if entry, ok := table.Resolve(path); ok {
		return entry.Page.Handler(c)
	}

	if s.routeExists(path) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": auth.MsgForbidden,
		})
	}

	return pages.Home.Handler(c)
}

// routeExists reports whether any permission in the database maps the path,
// granted to the caller or not.
func (s *Service) routeExists(path string) bool {
	var count int64

	err := s.db.Model(&models.Permission{}).Where("route = ?", path).Count(&count).Error
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to check route existence")
		return false
	}

	return count > 0
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, db *gorm.DB) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	// create fiber app
	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
		},
	)

	if !cfg.Webserver.DisableRecover {
		app.Use(fiberrecover.New())
	}

	// access log through the shared zerolog pipeline
	app.Use(fiberadapter.New(fiberadapter.Config{
		Config:        cfg.Log,
		CheckAliveURI: "/checkalive",
	}))

	// session guard: everything outside the public paths needs a token
	app.Use(guard.New())

	authService := auth.NewService(db)

	service := &Service{
		cfg:         cfg,
		App:         app,
		db:          db,
		authService: authService,
		routeCache:  routes.NewCache(pages.Registry(), pages.Home),
	}
	service.alive.Store(true)

	// a session whose module data changed must not keep serving a stale
	// route table
	session.OnUserDataChanged(service.routeCache.Invalidate)

	app.Get("/checkalive", service.checkAlive)

	// init handlers (they register their own routes with permission checks)
	if err := login.Handler.Init(app, cfg, db); err != nil {
		log.Fatal().Err(err).Msg("failed to init login handler")
	}

	logout.Handler.Init(app, cfg)
	menu.Handler.Init(app, cfg)

	if err := modules.Handler.Init(app, cfg, db); err != nil {
		log.Fatal().Err(err).Msg("failed to init modules handler")
	}

	if err := user.Handler.Init(app, cfg, db); err != nil {
		log.Fatal().Err(err).Msg("failed to init user handler")
	}

	// parametrized pages cannot live in the permission route table, they
	// are registered statically with an explicit permission check
	app.Get("/admin/usuarios/editar/:id",
		auth.RequirePermission(auth.PermUsersView), pages.UserEdit.Handler)

	// every remaining GET is a page path resolved per session
	app.Get("/*", service.dispatchPage)

	return service
}

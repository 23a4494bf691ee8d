// Package web implements the http surface of clinicdesk.
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
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/clinicdesk/clinicdesk/internal/appointment"
	"github.com/clinicdesk/clinicdesk/internal/config"
	fiberlogger "github.com/clinicdesk/clinicdesk/internal/logger/adapter/fiber"
	"github.com/clinicdesk/clinicdesk/internal/web/handler"
	"github.com/clinicdesk/clinicdesk/internal/web/handler/appointments"
	"github.com/clinicdesk/clinicdesk/internal/web/handler/health"
	"github.com/clinicdesk/clinicdesk/internal/web/handler/settings"
)

const (
	// MetricsPath is the prometheus scrape path.
	MetricsPath = handler.RootPath + "metrics"

	// AdminPath serves the admin dashboard.
	AdminPath = handler.RootPath + "admin"

	adminPage = "admin.html"
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
}

// Start starts the web service on the given address and blocks until the server stops.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan error)

	go func() {
		err := s.App.Listen(addr)
		if err != nil && errors.Is(err, http.ErrServerClosed) {
			err = nil
		}

		doneFiber <- err
	}()

	return <-doneFiber // wait for fiber to stop
}

// WaitShutdown waits for SIGINT or SIGTERM and shuts the server down gracefully.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	s.Shutdown()
}

// Shutdown lets /health fail for the configured time, then stops the http server.
func (s *Service) Shutdown() {
	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	s.alive.Store(false)

	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	log.Info().Msg("stopping http server ...")

	if err := s.App.Shutdown(); err != nil {
		log.Error().Err(err).Msg("")
	}

	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, svc *appointment.Service) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if svc == nil {
		panic("appointment service cannot be nil")
	}

	// create fiber app
	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        "clinicdesk",
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
		},
	)

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New(recover.Config{EnableStackTrace: cfg.DevMode}))
	}

	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{Config: cfg.Log}))

	// init web service
	service := &Service{
		cfg:          cfg,
		App:          app,
		fastShutDown: cfg.Webserver.ShutDownTime <= 0,
	}
	service.alive.Store(true)

	health.Register(app, cfg, &service.alive)
	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	// init handlers
	for _, h := range []handler.Service{&appointments.Handler, &settings.Handler} {
		if err := h.Init(app, cfg, svc); err != nil {
			log.Fatal().Err(err).Msg(handler.ErrNilACDFatalLogMsg)
		}
	}

	pages := staticFS()

	app.Get(AdminPath, func(c *fiber.Ctx) error {
		return filesystem.SendFile(c, pages, adminPage)
	})

	// serve embedded public site
	app.Use(handler.RootPath,
		filesystem.New(
			filesystem.Config{
				Root:   pages,
				Browse: cfg.Webserver.BrowseStatic,
				Index:  "index.html",
			},
		),
	)

	return service
}

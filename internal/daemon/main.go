// Package daemon wires storage, notifications and the web service together.
package daemon

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/clinicdesk/clinicdesk/internal/appointment"
	"github.com/clinicdesk/clinicdesk/internal/config"
	"github.com/clinicdesk/clinicdesk/internal/db"
	"github.com/clinicdesk/clinicdesk/internal/notify"
	"github.com/clinicdesk/clinicdesk/internal/web"
)

// ErrConfigNil is returned when New is called without configuration.
var ErrConfigNil = errors.New("config is nil")

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	db         *gorm.DB
	webService *web.Service
}

// New opens and seeds the database and builds the web service.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	gdb, err := db.Open(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}

	if err = seed(gdb); err != nil {
		return nil, errors.Wrap(err, "failed to seed database")
	}

	return build(cfg, gdb), nil
}

func build(cfg *config.Config, gdb *gorm.DB) *Daemon {
	dispatcher := notify.NewDispatcher(&cfg.Notify)

	log.Info().
		Bool("email", cfg.Notify.Email.Enabled()).
		Bool("whatsapp", cfg.Notify.WhatsApp.Enabled()).
		Msg("notification channels")

	return &Daemon{
		cfg:        cfg,
		db:         gdb,
		webService: web.New(cfg, appointment.New(gdb, dispatcher)),
	}
}

// Start serves http until the server is shut down. A SIGINT or SIGTERM
// triggers the graceful shutdown.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	log.Info().Str("addr", d.cfg.Webserver.Addr()).Msg("starting http server")

	if err := d.webService.Start(d.cfg.Webserver.Addr()); err != nil {
		return errors.Wrap(err, "http server failed")
	}

	return d.Close()
}

// Close releases the database connection.
func (d *Daemon) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

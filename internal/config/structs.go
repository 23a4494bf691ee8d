package config

import (
	"fmt"
	"time"

	"github.com/clinicdesk/clinicdesk/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	Title     string
	DB        DB
	Log       logger.Log
	Webserver Webserver
	Notify    Notify
}

// Webserver implement webserver settings.
type Webserver struct {
	BrowseStatic   bool   // enable static file browsing (for development purposes only)
	DisableRecover bool   // disable recover middleware
	Host           string // listening host, empty means all interfaces
	Port           int    // listening port for the webserver
	ShutDownTime   int    // seconds /health answers 503 before the server stops
}

// Addr returns the listen address for the webserver.
func (w *Webserver) Addr() string {
	return fmt.Sprintf("%s:%d", w.Host, w.Port)
}

// Notify groups the optional confirmation channels.
type Notify struct {
	Email    Email
	WhatsApp WhatsApp
}

// Email configures the SMTP relay used for confirmation mails.
type Email struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string // sender address, falls back to User
	To       string // clinic inbox receiving confirmations
}

// Enabled reports whether every value needed to deliver a mail is present.
func (e *Email) Enabled() bool {
	return e.Host != "" && e.User != "" && e.Password != "" && e.To != ""
}

// Sender returns the address used in the From header.
func (e *Email) Sender() string {
	if e.From != "" {
		return e.From
	}

	return e.User
}

// WhatsApp configures the Twilio WhatsApp channel.
type WhatsApp struct {
	AccountSID string
	AuthToken  string
	From       string // sender number without the whatsapp: prefix
	To         string // receiving number without the whatsapp: prefix
	APIBaseURL string
	Timeout    time.Duration
}

// Enabled reports whether credentials and both numbers are present.
func (w *WhatsApp) Enabled() bool {
	return w.AccountSID != "" && w.AuthToken != "" && w.From != "" && w.To != ""
}

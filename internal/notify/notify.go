// Package notify sends appointment confirmations over email and WhatsApp.
//
// Both channels are optional. A channel whose configuration is incomplete is
// replaced by an unconfigured channel at construction time, so callers never
// branch on availability. Failures are reported as an Outcome and never as an
// error: a confirmation must not fail because a notification could not be sent.
package notify

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/clinicdesk/clinicdesk/internal/config"
	"github.com/clinicdesk/clinicdesk/internal/db/models"
)

// Status of one notification attempt.
type Status string

const (
	// StatusSent means the provider accepted the message.
	StatusSent Status = "sent"
	// StatusSkipped means the channel is not configured.
	StatusSkipped Status = "skipped"
	// StatusError means the attempt failed, Outcome.Message says why.
	StatusError Status = "error"
)

const (
	// ChannelEmail names the SMTP channel.
	ChannelEmail = "email"
	// ChannelWhatsApp names the WhatsApp channel.
	ChannelWhatsApp = "whatsapp"
)

// Outcome is the result of one channel.
type Outcome struct {
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

// Sent returns a successful outcome.
func Sent() Outcome { return Outcome{Status: StatusSent} }

// Skipped returns the outcome of an unconfigured channel.
func Skipped() Outcome { return Outcome{Status: StatusSkipped} }

// Failed returns an error outcome carrying err's message.
func Failed(err error) Outcome { return Outcome{Status: StatusError, Message: err.Error()} }

// Channel delivers a confirmation for one appointment.
type Channel interface {
	Name() string
	SendConfirmation(ctx context.Context, a *models.Appointment) Outcome
}

// Result collects the outcome of both channels.
type Result struct {
	Email    Outcome `json:"email"`
	WhatsApp Outcome `json:"whatsapp"`
}

// Skipped reports whether at least one channel was not configured.
func (r Result) Skipped() bool {
	return r.Email.Status == StatusSkipped || r.WhatsApp.Status == StatusSkipped
}

// Dispatcher fans a confirmation out to the email and WhatsApp channel.
type Dispatcher struct {
	email    Channel
	whatsapp Channel
}

// NewDispatcher builds both channels from cfg.
func NewDispatcher(cfg *config.Notify) *Dispatcher {
	return NewDispatcherWithChannels(NewEmail(&cfg.Email), NewWhatsApp(&cfg.WhatsApp))
}

// NewDispatcherWithChannels uses the given channels. A nil channel counts as unconfigured.
func NewDispatcherWithChannels(email, whatsapp Channel) *Dispatcher {
	if email == nil {
		email = Unconfigured(ChannelEmail)
	}
	if whatsapp == nil {
		whatsapp = Unconfigured(ChannelWhatsApp)
	}

	return &Dispatcher{email: email, whatsapp: whatsapp}
}

// Confirm sends both confirmations concurrently and waits for both outcomes.
func (d *Dispatcher) Confirm(ctx context.Context, a *models.Appointment) Result {
	var (
		res Result
		g   errgroup.Group
	)

	g.Go(func() error {
		res.Email = d.send(ctx, d.email, a)
		return nil
	})
	g.Go(func() error {
		res.WhatsApp = d.send(ctx, d.whatsapp, a)
		return nil
	})

	_ = g.Wait() // channels report through Outcome only

	return res
}

// send runs one channel and turns a panic into an error outcome.
func (d *Dispatcher) send(ctx context.Context, c Channel, a *models.Appointment) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = Failed(fmt.Errorf("%s channel panicked: %v", c.Name(), r)) //nolint:goerr113
		}

		observe(c.Name(), out)

		event := log.Info()
		if out.Status == StatusError {
			event = log.Warn().Str("error", out.Message)
		}

		event.
			Str("channel", c.Name()).
			Uint64("appointment_id", a.ID).
			Str("status", string(out.Status)).
			Msg("confirmation notification")
	}()

	return c.SendConfirmation(ctx, a)
}

type unconfigured struct {
	name string
}

// Unconfigured returns a channel that always skips.
func Unconfigured(name string) Channel {
	return unconfigured{name: name}
}

func (u unconfigured) Name() string { return u.name }

func (u unconfigured) SendConfirmation(context.Context, *models.Appointment) Outcome {
	return Skipped()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}

	return s
}

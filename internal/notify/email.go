package notify

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/clinicdesk/clinicdesk/internal/config"
	"github.com/clinicdesk/clinicdesk/internal/db/models"
)

const emailSenderName = "Appointment Bot"

// Dialer delivers mails. *gomail.Dialer implements it.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// Email sends confirmations to the clinic inbox over SMTP.
type Email struct {
	dialer Dialer
	from   string
	to     string
}

// NewEmail returns the SMTP channel, or an unconfigured channel when cfg is incomplete.
// Port 465 uses implicit TLS, other ports upgrade with STARTTLS when offered.
func NewEmail(cfg *config.Email) Channel {
	if !cfg.Enabled() {
		return Unconfigured(ChannelEmail)
	}

	return NewEmailWithDialer(
		gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		cfg.Sender(),
		cfg.To,
	)
}

// NewEmailWithDialer returns an email channel delivering through d.
func NewEmailWithDialer(d Dialer, from, to string) *Email {
	return &Email{dialer: d, from: from, to: to}
}

// Name implements Channel.
func (e *Email) Name() string { return ChannelEmail }

// SendConfirmation sends one mail. gomail has no context support, a cancelled
// context only prevents the attempt.
func (e *Email) SendConfirmation(ctx context.Context, a *models.Appointment) Outcome {
	if err := ctx.Err(); err != nil {
		return Failed(err)
	}

	if err := e.dialer.DialAndSend(e.message(a)); err != nil {
		return Failed(err)
	}

	return Sent()
}

func (e *Email) message(a *models.Appointment) *gomail.Message {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", e.from, emailSenderName)
	m.SetHeader("To", e.to)
	m.SetHeader("Subject", "New Appointment Confirmed: "+a.PatientName)
	m.SetBody("text/plain", emailBody(a))

	return m
}

func emailBody(a *models.Appointment) string {
	return fmt.Sprintf(
		"Appointment confirmed:\n\nPatient: %s\nPhone: %s\nDate: %s\nTime: %s\nConsultation: %s",
		a.PatientName,
		a.PatientPhone,
		a.AppointmentDate,
		a.AppointmentTime,
		orNA(a.ConsultationColumn),
	)
}

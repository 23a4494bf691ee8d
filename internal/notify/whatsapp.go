package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/clinicdesk/clinicdesk/internal/config"
	"github.com/clinicdesk/clinicdesk/internal/db/models"
)

const (
	whatsappPrefix         = "whatsapp:"
	defaultWhatsAppTimeout = 30 * time.Second
	twilioMessagesPath     = "/2010-04-01/Accounts/%s/Messages.json"
)

// WhatsApp sends confirmations through the Twilio Messages API.
type WhatsApp struct {
	endpoint   string
	accountSID string
	authToken  string
	from       string
	to         string
	timeout    time.Duration
}

// twilioError is the error document Twilio answers with.
type twilioError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewWhatsApp returns the WhatsApp channel, or an unconfigured channel when cfg is incomplete.
func NewWhatsApp(cfg *config.WhatsApp) Channel {
	if !cfg.Enabled() {
		return Unconfigured(ChannelWhatsApp)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultWhatsAppTimeout
	}

	base := cfg.APIBaseURL
	if base == "" {
		base = "https://api.twilio.com"
	}

	return &WhatsApp{
		endpoint:   strings.TrimRight(base, "/") + fmt.Sprintf(twilioMessagesPath, url.PathEscape(cfg.AccountSID)),
		accountSID: cfg.AccountSID,
		authToken:  cfg.AuthToken,
		from:       withPrefix(cfg.From),
		to:         withPrefix(cfg.To),
		timeout:    timeout,
	}
}

// Name implements Channel.
func (w *WhatsApp) Name() string { return ChannelWhatsApp }

// SendConfirmation posts one message. The request is bounded by the configured timeout.
func (w *WhatsApp) SendConfirmation(ctx context.Context, a *models.Appointment) Outcome {
	if err := ctx.Err(); err != nil {
		return Failed(err)
	}

	args := fiber.AcquireArgs()
	defer fiber.ReleaseArgs(args)

	args.Set("From", w.from)
	args.Set("To", w.to)
	args.Set("Body", whatsappBody(a))

	agent := fiber.Post(w.endpoint).
		BasicAuth(w.accountSID, w.authToken).
		Timeout(w.timeout).
		Form(args)

	if err := agent.Parse(); err != nil {
		return Failed(err)
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return Failed(errs[0])
	}

	if code < fiber.StatusOK || code >= fiber.StatusMultipleChoices {
		return Failed(providerError(code, body))
	}

	return Sent()
}

func providerError(code int, body []byte) error {
	var te twilioError
	if err := json.Unmarshal(body, &te); err == nil && te.Message != "" {
		return fmt.Errorf("twilio: %s (code %d, http %d)", te.Message, te.Code, code) //nolint:goerr113
	}

	return fmt.Errorf("twilio: unexpected http status %d", code) //nolint:goerr113
}

func withPrefix(number string) string {
	if strings.HasPrefix(number, whatsappPrefix) {
		return number
	}

	return whatsappPrefix + number
}

func whatsappBody(a *models.Appointment) string {
	return fmt.Sprintf(
		"New Appointment Confirmed!\nPatient: %s\nPhone: %s\nDate: %s\nTime: %s",
		a.PatientName,
		a.PatientPhone,
		a.AppointmentDate,
		a.AppointmentTime,
	)
}

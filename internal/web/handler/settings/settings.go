// Package settings provides the JSON api for the clinic key/value settings.
package settings

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/clinicdesk/clinicdesk/internal/appointment"
	"github.com/clinicdesk/clinicdesk/internal/config"
	"github.com/clinicdesk/clinicdesk/internal/web/handler"
)

const (
	// Path is the path of the settings resource.
	Path = handler.APIPath + "/settings"

	msgUpdated = "Settings updated successfully"
)

// Service is the settings handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	svc *appointment.Service
}

// Handler is the settings handler.
var Handler = Service{}

// Init initializes the settings handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, svc *appointment.Service) error {
	if app == nil || cfg == nil || svc == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.svc = svc

	app.Get(Path, s.Get)
	app.Post(Path, s.Post)

	return nil
}

// Get returns all settings as one object.
func (s *Service) Get(c *fiber.Ctx) error {
	values, err := s.svc.Settings(c.UserContext())
	if err != nil {
		return handler.SendServiceError(c, err)
	}

	return c.JSON(values)
}

// Post upserts every key of the posted object. Values may be strings or numbers.
func (s *Service) Post(c *fiber.Ctx) error {
	var body map[string]handler.FlexString

	// a JSON array or scalar fails here as well
	if err := c.App().Config().JSONDecoder(c.Body(), &body); err != nil || body == nil {
		log.Debug().Err(err).Msg("failed to parse settings")

		return handler.SendError(c, fiber.StatusBadRequest, handler.MsgInvalidBody)
	}

	values := make(map[string]string, len(body))
	for k, v := range body {
		values[k] = v.String()
	}

	if err := s.svc.UpdateSettings(c.UserContext(), values); err != nil {
		return handler.SendServiceError(c, err)
	}

	return c.JSON(handler.MessageResponse{Message: msgUpdated})
}

// Package appointments provides the JSON api for booking, listing, confirming
// and deleting appointments.
package appointments

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/clinicdesk/clinicdesk/internal/appointment"
	"github.com/clinicdesk/clinicdesk/internal/config"
	"github.com/clinicdesk/clinicdesk/internal/db/models"
	"github.com/clinicdesk/clinicdesk/internal/notify"
	"github.com/clinicdesk/clinicdesk/internal/web/handler"
)

const (
	// Path is the path of the appointment collection.
	Path = handler.APIPath + "/appointments"

	// ConfirmPath confirms one appointment.
	ConfirmPath = "/:id/confirm"

	// ItemPath addresses one appointment.
	ItemPath = "/:id"

	msgStored    = "Appointment stored"
	msgConfirmed = "Appointment confirmed"
	msgDeleted   = "Appointment deleted successfully"
)

// CreateRequest is the booking form. patientAge may be sent as number or string.
type CreateRequest struct {
	PatientName        string             `json:"patientName"        form:"patientName"`
	PatientAge         handler.FlexString `json:"patientAge"         form:"patientAge"`
	PatientEmail       string             `json:"patientEmail"       form:"patientEmail"`
	PatientPhone       string             `json:"patientPhone"       form:"patientPhone"`
	PatientGender      string             `json:"patientGender"      form:"patientGender"`
	AppointmentDate    string             `json:"appointmentDate"    form:"appointmentDate"`
	AppointmentTime    string             `json:"appointmentTime"    form:"appointmentTime"`
	ConsultationColumn string             `json:"consultationColumn" form:"consultationColumn"`
}

// CreateResponse is returned with 201 after a booking.
type CreateResponse struct {
	Message     string              `json:"message"`
	Appointment *models.Appointment `json:"appointment"`
}

// ConfirmResponse reports the persisted confirmation and both notification outcomes.
type ConfirmResponse struct {
	Message       string        `json:"message"`
	Notifications notify.Result `json:"notifications"`
	Warning       string        `json:"warning,omitempty"`
}

// Service is the appointments handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	svc *appointment.Service
}

// Handler is the appointments handler.
var Handler = Service{}

// Init initializes the appointments handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, svc *appointment.Service) error {
	if app == nil || cfg == nil || svc == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.svc = svc

	// register routes
	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RootPath, s.List)
		router.Post(handler.RootPath, s.Create)
		router.Post(ConfirmPath, s.Confirm)
		router.Delete(ItemPath, s.Delete)
	})

	return nil
}

// List returns every appointment, newest first.
func (s *Service) List(c *fiber.Ctx) error {
	list, err := s.svc.List(c.UserContext())
	if err != nil {
		return handler.SendServiceError(c, err)
	}

	return c.JSON(list)
}

// Create stores a new pending appointment.
func (s *Service) Create(c *fiber.Ctx) error {
	req := new(CreateRequest)
	if err := c.BodyParser(req); err != nil {
		log.Debug().Err(err).Msg("failed to parse appointment")

		return handler.SendError(c, fiber.StatusBadRequest, handler.MsgInvalidBody)
	}

	a, err := s.svc.Create(c.UserContext(), appointment.Input{
		PatientName:        req.PatientName,
		PatientAge:         req.PatientAge.String(),
		PatientEmail:       req.PatientEmail,
		PatientPhone:       req.PatientPhone,
		PatientGender:      req.PatientGender,
		AppointmentDate:    req.AppointmentDate,
		AppointmentTime:    req.AppointmentTime,
		ConsultationColumn: req.ConsultationColumn,
	})
	if err != nil {
		return handler.SendServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(CreateResponse{
		Message:     msgStored,
		Appointment: a,
	})
}

// Confirm marks an appointment confirmed and reports the notification outcomes.
func (s *Service) Confirm(c *fiber.Ctx) error {
	id, ok := handler.ParamID(c)
	if !ok {
		return handler.SendError(c, fiber.StatusNotFound, handler.MsgAppointmentNotFound)
	}

	res, err := s.svc.Confirm(c.UserContext(), id)
	if err != nil {
		return handler.SendServiceError(c, err)
	}

	return c.JSON(ConfirmResponse{
		Message:       msgConfirmed,
		Notifications: res.Notifications,
		Warning:       res.Warning,
	})
}

// Delete removes an appointment.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, ok := handler.ParamID(c)
	if !ok {
		return handler.SendError(c, fiber.StatusNotFound, handler.MsgAppointmentNotFound)
	}

	if err := s.svc.Delete(c.UserContext(), id); err != nil {
		return handler.SendServiceError(c, err)
	}

	return c.JSON(handler.MessageResponse{Message: msgDeleted})
}

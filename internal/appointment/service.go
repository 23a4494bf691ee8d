// Package appointment implements the booking workflows on top of the record store
// and the notification dispatcher.
package appointment

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	controller "github.com/clinicdesk/clinicdesk/internal/db/controller/appointment"
	"github.com/clinicdesk/clinicdesk/internal/db/controller/setting"
	"github.com/clinicdesk/clinicdesk/internal/db/models"
	"github.com/clinicdesk/clinicdesk/internal/notify"
)

// WarningNotificationsSkipped is attached to a confirmation when a channel is not configured.
const WarningNotificationsSkipped = "Notifications skipped due to config"

// Input carries the fields of a new appointment.
type Input struct {
	PatientName        string `validate:"required"`
	PatientAge         string
	PatientEmail       string
	PatientPhone       string
	PatientGender      string
	AppointmentDate    string `validate:"required"`
	AppointmentTime    string `validate:"required"`
	ConsultationColumn string
}

// ConfirmResult is returned by Confirm once the status is persisted.
type ConfirmResult struct {
	Appointment   *models.Appointment
	Notifications notify.Result
	// Warning is empty unless a channel was skipped.
	Warning string
}

// Service orchestrates the appointment workflows.
type Service struct {
	db         *gorm.DB
	dispatcher *notify.Dispatcher
	validator  *validator.Validate
}

// New returns a Service. A nil dispatcher skips every notification.
func New(db *gorm.DB, dispatcher *notify.Dispatcher) *Service {
	if dispatcher == nil {
		dispatcher = notify.NewDispatcherWithChannels(nil, nil)
	}

	return &Service{
		db:         db,
		dispatcher: dispatcher,
		validator:  validator.New(),
	}
}

// Create validates in and stores a new pending appointment.
func (s *Service) Create(ctx context.Context, in Input) (*models.Appointment, error) {
	if err := s.validator.Struct(in); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			for _, ve := range validationErrors {
				log.Debug().Str("field", ve.Field()).Str("tag", ve.Tag()).Msg("appointment rejected")
			}
		}

		return nil, ErrValidation
	}

	a := &models.Appointment{
		PatientName:        in.PatientName,
		PatientAge:         in.PatientAge,
		PatientEmail:       in.PatientEmail,
		PatientPhone:       in.PatientPhone,
		PatientGender:      in.PatientGender,
		AppointmentDate:    in.AppointmentDate,
		AppointmentTime:    in.AppointmentTime,
		ConsultationColumn: in.ConsultationColumn,
	}

	if err := controller.Create(s.db.WithContext(ctx), a); err != nil {
		return nil, storageError("create appointment", err)
	}

	log.Info().
		Uint64("appointment_id", a.ID).
		Str("date", a.AppointmentDate).
		Str("time", a.AppointmentTime).
		Msg("appointment stored")

	return a, nil
}

// List returns all appointments, newest first.
func (s *Service) List(ctx context.Context) ([]models.Appointment, error) {
	appointments, err := controller.List(s.db.WithContext(ctx))
	if err != nil {
		return nil, storageError("list appointments", err)
	}

	return appointments, nil
}

// Settings returns all settings as a key/value map.
func (s *Service) Settings(ctx context.Context) (map[string]string, error) {
	values, err := setting.GetAll(s.db.WithContext(ctx))
	if err != nil {
		return nil, storageError("read settings", err)
	}

	return values, nil
}

// UpdateSettings upserts every entry of values. Entries written before a failure stay written.
func (s *Service) UpdateSettings(ctx context.Context, values map[string]string) error {
	if err := setting.SetMany(s.db.WithContext(ctx), values); err != nil {
		return storageError("update settings", err)
	}

	log.Info().Int("count", len(values)).Msg("settings updated")

	return nil
}

// Confirm marks the appointment confirmed and then notifies the clinic.
// The status is persisted before any notification is attempted, a failed
// notification never fails the confirmation. Confirming twice notifies twice.
func (s *Service) Confirm(ctx context.Context, id uint64) (*ConfirmResult, error) {
	db := s.db.WithContext(ctx)

	a, err := controller.GetByID(db, id)
	if err != nil {
		if errors.Is(err, controller.ErrAppointmentNotFound) {
			return nil, ErrNotFound
		}

		return nil, storageError("get appointment", err)
	}

	changed, err := controller.SetStatus(db, id, models.StatusConfirmed)
	if err != nil {
		return nil, storageError("confirm appointment", err)
	}

	// deleted between fetch and update
	if changed == 0 {
		return nil, ErrNotFound
	}

	a.Status = models.StatusConfirmed

	res := &ConfirmResult{
		Appointment:   a,
		Notifications: s.dispatcher.Confirm(ctx, a),
	}

	if res.Notifications.Skipped() {
		res.Warning = WarningNotificationsSkipped
	}

	log.Info().
		Uint64("appointment_id", id).
		Str("email", string(res.Notifications.Email.Status)).
		Str("whatsapp", string(res.Notifications.WhatsApp.Status)).
		Msg("appointment confirmed")

	return res, nil
}

// Delete removes the appointment. No notification is sent.
func (s *Service) Delete(ctx context.Context, id uint64) error {
	deleted, err := controller.Delete(s.db.WithContext(ctx), id)
	if err != nil {
		return storageError("delete appointment", err)
	}

	if deleted == 0 {
		return ErrNotFound
	}

	log.Info().Uint64("appointment_id", id).Msg("appointment deleted")

	return nil
}

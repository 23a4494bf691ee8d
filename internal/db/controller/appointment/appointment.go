// Package appointment provides the persistence operations for appointments.
package appointment

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/clinicdesk/clinicdesk/internal/db/models"
)

var (
	// ErrAppointmentNotFound is returned when no appointment has the requested id.
	ErrAppointmentNotFound = errors.New("appointment not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrAppointmentNil is returned when Create is called without an appointment.
	ErrAppointmentNil = errors.New("appointment is nil")
)

// Create inserts a pending appointment and writes the new id and creation time back into a.
func Create(db *gorm.DB, a *models.Appointment) error {
	if db == nil {
		return ErrDBNil
	}
	if a == nil {
		return ErrAppointmentNil
	}

	a.ID = 0
	a.Status = models.StatusPending

	return db.Create(a).Error
}

// List returns all appointments, newest first.
func List(db *gorm.DB) ([]models.Appointment, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	appointments := []models.Appointment{}
	result := db.Order("created_at DESC").Order("id DESC").Find(&appointments)
	if result.Error != nil {
		return nil, result.Error
	}

	return appointments, nil
}

// GetByID retrieves a single appointment.
func GetByID(db *gorm.DB, id uint64) (*models.Appointment, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var a models.Appointment
	result := db.First(&a, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, result.Error
	}

	return &a, nil
}

// SetStatus writes status and returns the number of changed rows, 0 if id does not exist.
// updated_at is written as well so repeating a status still counts as a change.
func SetStatus(db *gorm.DB, id uint64, status models.AppointmentStatus) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	result := db.Model(&models.Appointment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	return result.RowsAffected, result.Error
}

// Delete removes the appointment and returns the number of deleted rows, 0 if id does not exist.
func Delete(db *gorm.DB, id uint64) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	result := db.Delete(&models.Appointment{}, id)

	return result.RowsAffected, result.Error
}

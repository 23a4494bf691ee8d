package models

import (
	"encoding/json"
	"time"
)

// AppointmentStatus is the lifecycle state of an appointment.
type AppointmentStatus string

const (
	// StatusPending is assigned on creation.
	StatusPending AppointmentStatus = "pending"
	// StatusConfirmed is set by the confirm workflow. There is no way back.
	StatusConfirmed AppointmentStatus = "confirmed"
)

// Appointment represents a booked consultation.
// Date and time are kept as the strings the booking form sent.
type Appointment struct {
	// ID is assigned by the database on insert.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// PatientName is required.
	PatientName   string `gorm:"size:255;not null" json:"patientName"`
	PatientAge    string `gorm:"size:32"           json:"patientAge"`
	PatientEmail  string `gorm:"size:255"          json:"patientEmail"`
	PatientPhone  string `gorm:"size:64"           json:"patientPhone"`
	PatientGender string `gorm:"size:32"           json:"patientGender"`
	// AppointmentDate and AppointmentTime are required.
	AppointmentDate string `gorm:"size:32;not null" json:"appointmentDate"`
	AppointmentTime string `gorm:"size:32;not null" json:"appointmentTime"`
	// ConsultationColumn is the consultation category picked in the booking form.
	ConsultationColumn string            `gorm:"size:255"                             json:"consultationColumn"`
	Status             AppointmentStatus `gorm:"size:16;not null;default:'pending'"    json:"status"`
	CreatedAt          time.Time         `gorm:"index"                                json:"createdAt"`
	UpdatedAt          time.Time         `json:"-"`
}

// MarshalJSON adds the "_id" alias the admin dashboard reads.
func (a Appointment) MarshalJSON() ([]byte, error) {
	type plain Appointment

	return json.Marshal(struct {
		plain
		LegacyID uint64 `json:"_id"`
	}{plain(a), a.ID})
}

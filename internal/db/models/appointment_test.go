package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentJSON(t *testing.T) {
	a := Appointment{
		ID:              42,
		PatientName:     "Asha",
		PatientAge:      "34",
		AppointmentDate: "2024-05-01",
		AppointmentTime: "10:00",
		Status:          StatusPending,
		CreatedAt:       time.Date(2024, 4, 30, 8, 0, 0, 0, time.UTC),
		UpdatedAt:       time.Now(),
	}

	raw, err := json.Marshal(a)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))

	assert.InDelta(t, 42, got["id"], 0)
	assert.InDelta(t, 42, got["_id"], 0)
	assert.Equal(t, "Asha", got["patientName"])
	assert.Equal(t, "34", got["patientAge"])
	assert.Equal(t, "pending", got["status"])
	assert.Equal(t, "2024-04-30T08:00:00Z", got["createdAt"])
	assert.NotContains(t, got, "UpdatedAt")
	assert.NotContains(t, got, "updatedAt")

	// a pointer marshals the same way
	rawPtr, err := json.Marshal(&a)
	require.NoError(t, err)
	assert.JSONEq(t, string(raw), string(rawPtr))
}

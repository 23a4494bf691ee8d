package handler

const (
	// RootPath is the root path the route group.
	RootPath = "/"

	// APIPath is the prefix of the JSON api.
	APIPath = RootPath + "api"

	// ErrNilACDFatalLogMsg is used if app or cfg or service var pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or service is nil"

	// MsgDatabaseError is the error text of every storage failure.
	MsgDatabaseError = "Database error"

	// MsgMissingFields is returned when a required appointment field is empty.
	MsgMissingFields = "Missing required fields"

	// MsgAppointmentNotFound is returned for unknown or malformed ids.
	MsgAppointmentNotFound = "Appointment not found"

	// MsgInvalidBody is returned when the request body cannot be decoded.
	MsgInvalidBody = "Invalid request body"
)

package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/clinicdesk/clinicdesk/internal/appointment"
)

// ErrorResponse is the body of every failed api request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MessageResponse is the body of a successful write without payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// SendError writes an ErrorResponse with the given status.
func SendError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ErrorResponse{Error: msg})
}

// SendServiceError maps an error of the appointment service to its http status.
func SendServiceError(c *fiber.Ctx, err error) error {
	var storageErr *appointment.StorageError

	switch {
	case errors.Is(err, appointment.ErrValidation):
		return SendError(c, fiber.StatusBadRequest, MsgMissingFields)
	case errors.Is(err, appointment.ErrNotFound):
		return SendError(c, fiber.StatusNotFound, MsgAppointmentNotFound)
	case errors.As(err, &storageErr):
		log.Error().Err(storageErr.Err).Str("op", storageErr.Op).Str("path", c.Path()).Msg("storage failure")

		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   MsgDatabaseError,
			Details: storageErr.Err.Error(),
		})
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("request failed")

		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   MsgDatabaseError,
			Details: err.Error(),
		})
	}
}

// ParamID parses the ":id" route parameter. ok is false for anything but a positive integer.
func ParamID(c *fiber.Ctx) (id uint64, ok bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}

	return id, true
}

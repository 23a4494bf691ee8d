// Package health provides the liveness endpoint used by load balancers.
package health

import (
	"sync/atomic"

	"github.com/gofiber/fiber/v2"

	"github.com/clinicdesk/clinicdesk/internal/config"
	"github.com/clinicdesk/clinicdesk/internal/web/handler"
)

const (
	// Path is the liveness path.
	Path = handler.RootPath + "health"

	statusOK           = "ok"
	statusShuttingDown = "shutting down"
)

// Response is the body of the liveness check.
type Response struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}

// Register adds the liveness route. alive is flipped to false when a graceful shutdown starts.
func Register(app *fiber.App, cfg *config.Config, alive *atomic.Bool) {
	app.Get(Path, func(c *fiber.Ctx) error {
		if !alive.Load() {
			return c.Status(fiber.StatusServiceUnavailable).JSON(Response{Status: statusShuttingDown})
		}

		return c.JSON(Response{Status: statusOK, Database: cfg.DB.GormEngine})
	})
}

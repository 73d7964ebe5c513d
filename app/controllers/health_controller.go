package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// Pinger reports whether a backing store is reachable.
type Pinger func(ctx context.Context) error

type HealthController struct {
	backend string
	ping    Pinger
}

// NewHealthController builds the health endpoint. ping may be nil for the
// in-memory backend.
func NewHealthController(backend string, ping Pinger) *HealthController {
	return &HealthController{backend: backend, ping: ping}
}

func (ctl *HealthController) HandleHealth(c *fiber.Ctx) error {
	if ctl.ping != nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := ctl.ping(ctx); err != nil {
			log.WithError(err).Warn("health check: store unreachable")
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "degraded",
				"store":  ctl.backend,
			})
		}
	}
	return c.JSON(fiber.Map{
		"status": "ok",
		"store":  ctl.backend,
	})
}

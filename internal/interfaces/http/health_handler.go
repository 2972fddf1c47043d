package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/recaudo-api/internal/application/dto"
)

// Pinger comprueba la base de datos.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health GET /health: 200 si la base responde, 503 si no.
func Health(service string, db Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		resp := dto.HealthResponse{Status: "ok", Service: service, Database: "up"}
		if db != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			if err := db.Ping(ctx); err != nil {
				resp.Status = "degraded"
				resp.Database = "down"
				return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
			}
		}
		return c.JSON(resp)
	}
}

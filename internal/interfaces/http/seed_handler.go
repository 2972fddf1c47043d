package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/recaudo-api/internal/application/dto"
	"github.com/jhoicas/recaudo-api/pkg/logger"
)

// Seeder carga los datos de ejemplo.
type Seeder interface {
	Run(ctx context.Context) (dto.SeedSummary, error)
}

// SeedHandler expone la carga de datos.
type SeedHandler struct {
	seeder Seeder
	log    *logger.Logger
}

// NewSeedHandler construye el handler.
func NewSeedHandler(seeder Seeder, log *logger.Logger) *SeedHandler {
	return &SeedHandler{seeder: seeder, log: log}
}

// Run godoc
// @Summary      Carga datos de ejemplo
// @Description  Idempotente. En caso de fallo la respuesta incluye el detalle del error.
// @Tags         seed
// @Produce      json
// @Success      200  {object}  dto.SeedResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/seed [post]
func (h *SeedHandler) Run(c *fiber.Ctx) error {
	summary, err := h.seeder.Run(c.UserContext())
	if err != nil {
		h.log.Error().Err(err).Str("request_id", requestID(c)).Msg("carga de datos fallida")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: msgSeedFailed, Detail: err.Error(),
		})
	}
	return c.JSON(dto.SeedResponse{
		Success: true,
		Message: "Data seeding completed successfully",
		Summary: summary,
	})
}

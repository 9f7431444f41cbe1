package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/EdgarCaloch00/CrepePosApi/internal/application/dashboard"
	"github.com/EdgarCaloch00/CrepePosApi/internal/application/dto"
	"github.com/EdgarCaloch00/CrepePosApi/internal/domain"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *dashboard.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *dashboard.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetStats godoc
// @Summary      Estadísticas agregadas de ventas del período
// @Description  Totales, tickets, unidades, ticket promedio con variación
//               contra el período anterior de igual duración, top-5 de
//               productos y combos, y serie diaria de los últimos 7 días.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        period     query  string  false  "today | week | month | custom (default month)"
// @Param        startDate  query  string  false  "YYYY-MM-DD; obligatorio con period=custom"
// @Param        endDate    query  string  false  "YYYY-MM-DD; obligatorio con period=custom"
// @Param        branch_id  query  string  false  "UUID de sucursal"
// @Success      200  {object}  dto.DashboardStatsDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  map[string]string
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	var req dto.DashboardStatsRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}

	stats, err := h.uc.GetStats(c.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "INVALID_PERIOD", Message: err.Error(),
			})
		}
		log.Error().Err(err).
			Str("period", req.Period).
			Str("branch_id", req.BranchID).
			Msg("dashboard stats")
		// Cuerpo fijo: no filtrar detalle interno al cliente.
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get dashboard stats",
		})
	}

	return c.JSON(stats)
}

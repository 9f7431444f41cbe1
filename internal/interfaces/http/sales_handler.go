package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/EdgarCaloch00/CrepePosApi/internal/application/dto"
	"github.com/EdgarCaloch00/CrepePosApi/internal/application/sales"
	"github.com/EdgarCaloch00/CrepePosApi/internal/domain"
)

// SalesHandler maneja el registro de ventas.
type SalesHandler struct {
	uc *sales.CreateSaleUseCase
}

// NewSalesHandler construye el handler.
func NewSalesHandler(uc *sales.CreateSaleUseCase) *SalesHandler {
	return &SalesHandler{uc: uc}
}

// Create registra un ticket con sus líneas.
// POST /api/sales
func (h *SalesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo JSON inválido",
		})
	}

	sale, err := h.uc.Execute(c.Context(), GetUserID(c), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptySale),
			errors.Is(err, domain.ErrInvalidLineItem),
			errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "INVALID_SALE", Message: err.Error(),
			})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "UNKNOWN_ITEM", Message: err.Error(),
			})
		default:
			log.Error().Err(err).Str("user_id", GetUserID(c)).Msg("crear venta")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Code: "INTERNAL", Message: "error interno al registrar la venta",
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(sale)
}

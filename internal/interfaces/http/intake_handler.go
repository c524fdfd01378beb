package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sandelis/warehouse-api/internal/application/dto"
	"github.com/sandelis/warehouse-api/internal/application/usecase"
)

// IntakeHandler maneja el flujo de ingreso por escaneo.
type IntakeHandler struct {
	uc *usecase.IntakeUseCase
}

// NewIntakeHandler construye el handler.
func NewIntakeHandler(uc *usecase.IntakeUseCase) *IntakeHandler {
	return &IntakeHandler{uc: uc}
}

// Scan godoc
// @Summary      Registrar ingreso por escaneo
// @Description  Incrementa el producto del código escaneado o lo crea si es nuevo
// @Tags         intake
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IntakeScanRequest  true  "Datos del escaneo"
// @Success      201  {object}  dto.DataResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/intake/scan [post]
func (h *IntakeHandler) Scan(c *fiber.Ctx) error {
	var in dto.IntakeScanRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(&in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Scan(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.DataResponse{Data: out})
}

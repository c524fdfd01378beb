package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sandelis/warehouse-api/internal/application/dto"
	"github.com/sandelis/warehouse-api/internal/application/usecase"
)

// MovementHandler consultas sobre el libro de movimientos.
type MovementHandler struct {
	uc *usecase.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *usecase.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Search godoc
// @Summary      Listar movimientos
// @Tags         movements
// @Produce      json
// @Param        q          query  string  false  "Tokens contra el producto referenciado"
// @Param        productId  query  string  false  "Filtrar por producto"
// @Param        type       query  string  false  "IN | OUT"
// @Param        invoice    query  string  false  "Substring del número de factura"
// @Param        dateFrom   query  string  false  "Desde (RFC 3339 o YYYY-MM-DD)"
// @Param        dateTo     query  string  false  "Hasta (inclusivo)"
// @Param        page       query  int     false  "Página"  default(1)
// @Param        limit      query  int     false  "Límite"  default(50)
// @Success      200  {object}  dto.MovementListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) Search(c *fiber.Ctx) error {
	var in dto.MovementSearchRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	if err := dto.Validate(&in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Search(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

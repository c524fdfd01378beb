package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sandelis/warehouse-api/internal/application/dto"
	"github.com/sandelis/warehouse-api/internal/application/usecase"
)

// BarcodeHandler reserva y asignación de códigos internos de almacén.
type BarcodeHandler struct {
	uc *usecase.BarcodeUseCase
}

// NewBarcodeHandler construye el handler.
func NewBarcodeHandler(uc *usecase.BarcodeUseCase) *BarcodeHandler {
	return &BarcodeHandler{uc: uc}
}

// Reserve godoc
// @Summary      Reservar códigos de barras internos
// @Tags         barcodes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReserveBarcodesRequest  true  "Cantidad (1..500)"
// @Success      200  {object}  dto.DataResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/barcodes/reserve [post]
func (h *BarcodeHandler) Reserve(c *fiber.Ctx) error {
	var in dto.ReserveBarcodesRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	codes, err := h.uc.Reserve(in.Count)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DataResponse{Data: codes})
}

// Assign godoc
// @Summary      Asignar un código de barras a un producto
// @Tags         barcodes
// @Accept       json
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Param        body       body  dto.AssignBarcodeRequest  true  "Código y flag force"
// @Success      200  {object}  dto.DataResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/barcodes/assign/{productId} [post]
func (h *BarcodeHandler) Assign(c *fiber.Ctx) error {
	var in dto.AssignBarcodeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(&in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Assign(c.Params("productId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DataResponse{Data: out})
}

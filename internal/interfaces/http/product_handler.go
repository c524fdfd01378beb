package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sandelis/warehouse-api/internal/application/dto"
	"github.com/sandelis/warehouse-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP para Product.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Search godoc
// @Summary      Buscar productos
// @Tags         products
// @Produce      json
// @Param        q               query  string  false  "Tokens de búsqueda (nombre o código de barras)"
// @Param        groupId         query  string  false  "Filtrar por grupo"
// @Param        supplierId      query  string  false  "Filtrar por proveedor"
// @Param        manufacturerId  query  string  false  "Filtrar por fabricante"
// @Param        invoice         query  string  false  "Con ingreso de esta factura"
// @Param        page            query  int     false  "Página"  default(1)
// @Param        limit           query  int     false  "Límite"  default(20)
// @Param        sort            query  string  false  "name | quantity | createdAt"
// @Success      200  {object}  dto.ProductListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	var in dto.ProductSearchRequest
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

// GetByBarcode godoc
// @Summary      Obtener producto por código de barras
// @Tags         products
// @Produce      json
// @Param        barcode  path  string  true  "Código de barras"
// @Success      200  {object}  dto.DataResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/barcode/{barcode} [get]
func (h *ProductHandler) GetByBarcode(c *fiber.Ctx) error {
	barcode := c.Params("barcode")
	if barcode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_BARCODE", Message: "barcode es requerido"})
	}
	out, err := h.uc.GetByBarcode(barcode)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DataResponse{Data: out})
}

// Invoices godoc
// @Summary      Facturas de ingreso de un producto
// @Tags         products
// @Produce      json
// @Param        id     path   string  true   "ID del producto"
// @Param        limit  query  int     false  "Límite"  default(10)
// @Success      200  {object}  dto.DataResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/invoices [get]
func (h *ProductHandler) Invoices(c *fiber.Ctx) error {
	id := c.Params("id")
	limit := c.QueryInt("limit", 10)
	out, err := h.uc.Invoices(id, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DataResponse{Data: out})
}

// AdjustQuantity godoc
// @Summary      Ajustar cantidad (delta con signo)
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.AdjustQuantityRequest  true  "Delta y metadatos del asiento"
// @Success      200  {object}  dto.DataResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/quantity [patch]
func (h *ProductHandler) AdjustQuantity(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.AdjustQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(&in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.AdjustQuantity(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DataResponse{Data: out})
}

// Delete godoc
// @Summary      Eliminar producto (solo con stock en cero)
// @Tags         products
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.OkResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OkResponse{OK: true})
}

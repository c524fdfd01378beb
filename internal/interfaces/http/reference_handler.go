package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sandelis/warehouse-api/internal/application/dto"
	"github.com/sandelis/warehouse-api/internal/application/usecase"
)

// ReferenceHandler CRUD mínimo de un catálogo (grupos, proveedores o fabricantes).
type ReferenceHandler struct {
	uc *usecase.ReferenceUseCase
}

// NewReferenceHandler construye el handler para el catálogo del caso de uso dado.
func NewReferenceHandler(uc *usecase.ReferenceUseCase) *ReferenceHandler {
	return &ReferenceHandler{uc: uc}
}

// List devuelve el catálogo completo ordenado por nombre.
func (h *ReferenceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DataResponse{Data: out})
}

// Create da de alta una entrada; 409 si el nombre ya existe.
func (h *ReferenceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReferenceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(&in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.DataResponse{Data: out})
}

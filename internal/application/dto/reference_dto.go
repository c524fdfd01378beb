package dto

import (
	"time"

	"github.com/sandelis/warehouse-api/internal/domain/entity"
)

// CreateReferenceRequest alta de una entrada de catálogo (grupo, proveedor o fabricante).
type CreateReferenceRequest struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
}

// ReferenceResponse entrada de catálogo.
type ReferenceResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToReferenceResponse mapea la entidad al DTO de respuesta.
func ToReferenceResponse(ref entity.Reference) ReferenceResponse {
	return ReferenceResponse{ID: ref.ID, Name: ref.Name, CreatedAt: ref.CreatedAt}
}

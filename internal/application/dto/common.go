package dto

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sandelis/warehouse-api/internal/domain"
)

// DataResponse envoltorio estándar de respuesta: { "data": ... }.
type DataResponse struct {
	Data any `json:"data"`
}

// Pagination metadatos de página en listados.
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

// OkResponse respuesta mínima de confirmación.
type OkResponse struct {
	OK bool `json:"ok"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var validate = validator.New()

// Validate valida estructuralmente un request DTO (tags `validate`) antes de que
// llegue a la lógica de dominio. El conjunto de campos opcionales es cerrado:
// cada DTO enumera explícitamente lo que acepta.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	return nil
}

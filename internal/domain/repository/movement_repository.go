package repository

import (
	"time"

	"github.com/sandelis/warehouse-api/internal/domain/entity"
)

// MovementFilter criterios para listar movimientos. Tokens se evalúa contra el
// nombre y código de barras del producto referenciado (requiere join).
type MovementFilter struct {
	ProductID string
	Type      string // IN | OUT | ""
	Invoice   string // substring, case-insensitive
	Tokens    []string
	DateFrom  *time.Time
	DateTo    *time.Time
	Page      int
	Limit     int
}

// MovementRepository puerto del libro de movimientos. Solo inserta y consulta:
// las filas son inmutables.
type MovementRepository interface {
	Create(m *entity.StockMovement) error
	// Search ordena siempre por fecha de creación descendente; total se calcula
	// con el mismo filtro (incluido el join), independiente de la página.
	Search(f MovementFilter) ([]entity.MovementWithProduct, int64, error)
	// InvoiceSummaries agrupa los movimientos IN con factura de un producto.
	InvoiceSummaries(productID string, limit int) ([]entity.InvoiceSummary, error)
}

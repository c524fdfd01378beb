package usecase

import (
	"context"

	"github.com/sandelis/warehouse-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la mutación del producto y el
// asiento en el libro de movimientos sean atómicos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		products repository.ProductRepository,
		movements repository.MovementRepository,
	) error) error
}

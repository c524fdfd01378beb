package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/sandelis/warehouse-api/internal/application/dto"
	"github.com/sandelis/warehouse-api/internal/domain"
	"github.com/sandelis/warehouse-api/internal/domain/entity"
	"github.com/sandelis/warehouse-api/internal/domain/repository"
)

// intakeNote nota fija registrada en cada ingreso por escaneo.
const intakeNote = "Ingreso por escaneo"

// IntakeUseCase flujo de ingreso por escaneo: incrementa el producto existente
// o lo crea si el código es nuevo, y anota el movimiento IN en la misma
// transacción.
type IntakeUseCase struct {
	txRunner TxRunner
}

// NewIntakeUseCase construye el caso de uso.
func NewIntakeUseCase(txRunner TxRunner) *IntakeUseCase {
	return &IntakeUseCase{txRunner: txRunner}
}

// Scan procesa un evento de escaneo:
//  1. Incremento atómico por código de barras (una sentencia; sin lecturas previas).
//  2. Si no había producto: exige nombre y fabricante, y lo crea con la cantidad
//     escaneada. Un choque con el índice único (dos primeros escaneos
//     concurrentes del mismo código) se devuelve como conflicto para que el
//     cliente reintente.
//  3. Anota el movimiento IN en la misma transacción.
//
// Devuelve el producto resultante con sus referencias resueltas.
func (uc *IntakeUseCase) Scan(ctx context.Context, in dto.IntakeScanRequest) (*dto.ProductResponse, error) {
	groupID := optionalID(in.GroupID)
	supplierID := optionalID(in.SupplierID)

	var out *dto.ProductResponse
	err := uc.txRunner.Run(ctx, func(
		products repository.ProductRepository,
		movements repository.MovementRepository,
	) error {
		productID, err := products.IncrementByBarcode(in.Barcode, in.Quantity, groupID, supplierID)
		if err != nil {
			return err
		}

		if productID == "" {
			name := strings.TrimSpace(in.Name)
			if name == "" || in.ManufacturerID == "" {
				return domain.ErrNewProductData
			}
			now := time.Now()
			p := &entity.Product{
				ID:             uuid.New().String(),
				Barcode:        in.Barcode,
				Name:           name,
				ManufacturerID: in.ManufacturerID,
				GroupID:        groupID,
				SupplierID:     supplierID,
				Quantity:       in.Quantity,
				CreatedAt:      now,
				UpdatedAt:      now,
			}
			if err := products.Create(p); err != nil {
				if errors.Is(err, domain.ErrDuplicate) {
					// Perdimos la carrera del primer escaneo; el cliente reintenta
					// y cae en la rama de incremento.
					return domain.ErrConflict
				}
				return err
			}
			productID = p.ID
		}

		if err := movements.Create(&entity.StockMovement{
			ProductID:     productID,
			Type:          entity.MovementTypeIN,
			Quantity:      in.Quantity,
			SupplierID:    supplierID,
			Note:          intakeNote,
			InvoiceNumber: strings.TrimSpace(in.InvoiceNumber),
		}); err != nil {
			return err
		}

		detail, err := products.GetByID(productID)
		if err != nil {
			return err
		}
		out = dto.ToProductResponse(detail)
		return nil
	})
	if err != nil {
		if !isDomainError(err) {
			log.Error().Err(err).Str("barcode", in.Barcode).Msg("ingreso por escaneo falló; transacción revertida")
		}
		return nil, err
	}
	return out, nil
}

// optionalID convierte "" en nil para columnas opcionales.
func optionalID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}

// isDomainError distingue errores de negocio (esperados) de fallos de storage.
func isDomainError(err error) bool {
	for _, de := range []error{
		domain.ErrNotFound, domain.ErrInvalidInput, domain.ErrDuplicate,
		domain.ErrConflict, domain.ErrInsufficientStock, domain.ErrStockNotEmpty,
		domain.ErrNewProductData, domain.ErrBarcodeAssigned, domain.ErrBarcodeTaken,
		domain.ErrInvalidReference,
	} {
		if errors.Is(err, de) {
			return true
		}
	}
	return false
}

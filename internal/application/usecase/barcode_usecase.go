package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sandelis/warehouse-api/internal/application/dto"
	"github.com/sandelis/warehouse-api/internal/domain"
	"github.com/sandelis/warehouse-api/internal/domain/repository"
)

// Límites de reserva por lote.
const (
	minReserveCount = 1
	maxReserveCount = 500
)

// BarcodeUseCase reserva de códigos internos de almacén y asignación a productos.
type BarcodeUseCase struct {
	counters repository.CounterRepository
	products repository.ProductRepository
}

// NewBarcodeUseCase construye el caso de uso.
func NewBarcodeUseCase(counters repository.CounterRepository, products repository.ProductRepository) *BarcodeUseCase {
	return &BarcodeUseCase{counters: counters, products: products}
}

// Reserve genera count códigos con formato W-<año>-<secuencia de 5 dígitos>
// usando el contador del año en curso. Después de generar el lote verifica que
// ninguno esté ya en uso: una colisión solo puede venir de un contador
// reiniciado o de datos importados, y hace fallar el lote completo.
// No bloquea los códigos entre reserva y asignación (ventana conocida).
func (uc *BarcodeUseCase) Reserve(count int) ([]string, error) {
	if count < minReserveCount {
		count = minReserveCount
	}
	if count > maxReserveCount {
		count = maxReserveCount
	}

	year := time.Now().Year()
	key := fmt.Sprintf("barcode_%d", year)
	codes := make([]string, 0, count)
	for i := 0; i < count; i++ {
		seq, err := uc.counters.Next(key)
		if err != nil {
			return nil, err
		}
		codes = append(codes, fmt.Sprintf("W-%d-%05d", year, seq))
	}

	used, err := uc.products.ExistingBarcodes(codes)
	if err != nil {
		return nil, err
	}
	if len(used) > 0 {
		return nil, fmt.Errorf("%w: códigos ya en uso: %s", domain.ErrConflict, strings.Join(used, ", "))
	}
	return codes, nil
}

// Assign asigna un código concreto a un producto. Sin force no se reemplaza un
// código ya asignado; el índice único de products.barcode es el respaldo final
// contra asignaciones concurrentes del mismo código.
func (uc *BarcodeUseCase) Assign(productID string, in dto.AssignBarcodeRequest) (*dto.AssignBarcodeResponse, error) {
	detail, err := uc.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}

	if !in.Force && detail.Barcode != "" && detail.Barcode != in.Barcode {
		return nil, domain.ErrBarcodeAssigned
	}

	owner, err := uc.products.BarcodeOwner(in.Barcode)
	if err != nil {
		return nil, err
	}
	if owner != "" && owner != productID {
		return nil, domain.ErrBarcodeTaken
	}

	if err := uc.products.SetBarcode(productID, in.Barcode); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrBarcodeTaken
		}
		return nil, err
	}
	return &dto.AssignBarcodeResponse{ID: productID, Barcode: in.Barcode, Name: detail.Name}, nil
}

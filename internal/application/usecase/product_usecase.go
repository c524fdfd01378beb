package usecase

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sandelis/warehouse-api/internal/application/dto"
	"github.com/sandelis/warehouse-api/internal/domain"
	"github.com/sandelis/warehouse-api/internal/domain/entity"
	"github.com/sandelis/warehouse-api/internal/domain/repository"
	"github.com/sandelis/warehouse-api/internal/domain/search"
)

// ProductUseCase operaciones sobre productos: búsqueda, ajuste de cantidad,
// eliminación y facturas asociadas.
type ProductUseCase struct {
	txRunner  TxRunner
	products  repository.ProductRepository
	movements repository.MovementRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(txRunner TxRunner, products repository.ProductRepository, movements repository.MovementRepository) *ProductUseCase {
	return &ProductUseCase{txRunner: txRunner, products: products, movements: movements}
}

// Search búsqueda paginada multi-criterio.
func (uc *ProductUseCase) Search(in dto.ProductSearchRequest) (*dto.ProductListResponse, error) {
	in.DefaultPage()
	filter := repository.ProductFilter{
		Tokens:         search.Tokens(in.Q),
		GroupID:        in.GroupID,
		SupplierID:     in.SupplierID,
		ManufacturerID: in.ManufacturerID,
		Invoice:        strings.TrimSpace(in.Invoice),
		Sort:           in.Sort,
		Page:           in.Page,
		Limit:          in.Limit,
	}
	items, total, err := uc.products.Search(filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ProductResponse, 0, len(items))
	for i := range items {
		data = append(data, *dto.ToProductResponse(&items[i]))
	}
	return &dto.ProductListResponse{
		Data:       data,
		Pagination: dto.Pagination{Total: total, Page: in.Page, Limit: in.Limit},
	}, nil
}

// GetByBarcode obtiene un producto por su código de barras.
func (uc *ProductUseCase) GetByBarcode(barcode string) (*dto.ProductResponse, error) {
	detail, err := uc.products.GetByBarcode(barcode)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToProductResponse(detail), nil
}

// AdjustQuantity aplica un delta directo (corrección, venta) y anota el
// movimiento correspondiente en la misma transacción. Si el delta dejaría la
// cantidad negativa no hay ninguna mutación.
func (uc *ProductUseCase) AdjustQuantity(ctx context.Context, id string, in dto.AdjustQuantityRequest) (*dto.ProductResponse, error) {
	var out *dto.ProductResponse
	err := uc.txRunner.Run(ctx, func(
		products repository.ProductRepository,
		movements repository.MovementRepository,
	) error {
		applied, err := products.AdjustQuantity(id, in.Delta)
		if err != nil {
			return err
		}
		if !applied {
			detail, err := products.GetByID(id)
			if err != nil {
				return err
			}
			if detail == nil {
				return domain.ErrNotFound
			}
			return domain.ErrInsufficientStock
		}

		movType := entity.MovementTypeIN
		qty := in.Delta
		if in.Delta < 0 {
			movType = entity.MovementTypeOUT
			qty = -in.Delta
		}
		if err := movements.Create(&entity.StockMovement{
			ProductID:         id,
			Type:              movType,
			Quantity:          qty,
			Note:              in.Note,
			InvoiceNumber:     strings.TrimSpace(in.InvoiceNumber),
			Source:            in.Source,
			ClientName:        in.ClientName,
			ClientPhone:       in.ClientPhone,
			ReceiptNumber:     in.ReceiptNumber,
			SaleInvoiceNumber: in.SaleInvoiceNumber,
			TotalAmount:       in.TotalAmount,
		}); err != nil {
			return err
		}

		detail, err := products.GetByID(id)
		if err != nil {
			return err
		}
		out = dto.ToProductResponse(detail)
		return nil
	})
	if err != nil {
		if !isDomainError(err) {
			log.Error().Err(err).Str("product_id", id).Msg("ajuste de cantidad falló; transacción revertida")
		}
		return nil, err
	}
	return out, nil
}

// Delete elimina un producto solo si su cantidad es cero. La guarda va en el
// propio DELETE para cerrar la carrera con un ingreso concurrente.
func (uc *ProductUseCase) Delete(id string) error {
	detail, err := uc.products.GetByID(id)
	if err != nil {
		return err
	}
	if detail == nil {
		return domain.ErrNotFound
	}
	deleted, err := uc.products.DeleteIfEmpty(id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrStockNotEmpty
	}
	return nil
}

// Invoices facturas agrupadas de los ingresos del producto.
func (uc *ProductUseCase) Invoices(id string, limit int) ([]dto.InvoiceSummaryResponse, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}
	detail, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.movements.InvoiceSummaries(id, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvoiceSummaryResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.InvoiceSummaryResponse{
			InvoiceNumber: s.InvoiceNumber,
			Last:          s.Last,
			TotalQty:      s.TotalQty,
		})
	}
	return out, nil
}

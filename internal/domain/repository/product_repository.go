package repository

import "github.com/sandelis/warehouse-api/internal/domain/entity"

// ProductFilter criterios combinables para la búsqueda de productos.
// Tokens ya viene dividido (ver domain/search); Invoice exige correlación con
// movimientos IN que tengan ese número de factura exacto.
type ProductFilter struct {
	Tokens         []string
	GroupID        string
	SupplierID     string
	ManufacturerID string
	Invoice        string
	Sort           string // name | quantity | createdAt
	Page           int
	Limit          int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las operaciones de cantidad son atómicas a nivel de fila; la combinación
// "mutar producto + anotar movimiento" se hace dentro de un TxRunner.
type ProductRepository interface {
	Create(p *entity.Product) error
	GetByID(id string) (*entity.ProductDetail, error)
	GetByBarcode(barcode string) (*entity.ProductDetail, error)
	// BarcodeOwner devuelve el id del producto dueño del código, o "" si está libre.
	BarcodeOwner(barcode string) (string, error)
	// ExistingBarcodes devuelve cuáles de los códigos dados ya están en uso.
	ExistingBarcodes(codes []string) ([]string, error)
	// IncrementByBarcode suma qty de forma atómica al producto con ese código y,
	// si vienen, fija grupo/proveedor. Devuelve el id afectado o "" si no existe.
	IncrementByBarcode(barcode string, qty int64, groupID, supplierID *string) (string, error)
	// AdjustQuantity aplica delta solo si el resultado no queda negativo.
	// Devuelve false (sin mutación) cuando la guarda lo impide o el id no existe.
	AdjustQuantity(id string, delta int64) (bool, error)
	SetBarcode(id, barcode string) error
	Search(f ProductFilter) ([]entity.ProductDetail, int64, error)
	// DeleteIfEmpty borra el producto solo si su cantidad es cero.
	DeleteIfEmpty(id string) (bool, error)
}

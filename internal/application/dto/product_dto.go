package dto

import (
	"time"

	"github.com/sandelis/warehouse-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// RefResponse referencia embebida (grupo, proveedor, fabricante).
type RefResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProductResponse producto con sus referencias resueltas para la UI.
type ProductResponse struct {
	ID           string       `json:"id"`
	Barcode      string       `json:"barcode"`
	Name         string       `json:"name"`
	Quantity     int64        `json:"quantity"`
	Manufacturer RefResponse  `json:"manufacturer"`
	Group        *RefResponse `json:"group"`
	Supplier     *RefResponse `json:"supplier"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Data       []ProductResponse `json:"data"`
	Pagination Pagination        `json:"pagination"`
}

// ProductSearchRequest filtros del listado de productos. Todos opcionales y
// combinables entre sí.
type ProductSearchRequest struct {
	Q              string `query:"q"`
	GroupID        string `query:"groupId"`
	SupplierID     string `query:"supplierId"`
	ManufacturerID string `query:"manufacturerId"`
	Invoice        string `query:"invoice"`
	Sort           string `query:"sort" validate:"omitempty,oneof=name quantity createdAt"`
	Page           int    `query:"page" validate:"omitempty,min=1"`
	Limit          int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

// DefaultPage aplica valores por defecto de paginación y orden.
func (r *ProductSearchRequest) DefaultPage() {
	if r.Page <= 0 {
		r.Page = 1
	}
	if r.Limit <= 0 {
		r.Limit = 20
	}
	if r.Sort == "" {
		r.Sort = "name"
	}
}

// AdjustQuantityRequest ajuste directo de cantidad (corrección, venta, etc.).
// Delta negativo descuenta stock; los metadatos opcionales quedan en el asiento.
type AdjustQuantityRequest struct {
	Delta             int64            `json:"delta" validate:"required"`
	Note              string           `json:"note"`
	InvoiceNumber     string           `json:"invoiceNumber"`
	Source            string           `json:"source"`
	ClientName        string           `json:"clientName"`
	ClientPhone       string           `json:"clientPhone"`
	ReceiptNumber     string           `json:"receiptNumber"`
	SaleInvoiceNumber string           `json:"saleInvoiceNumber"`
	TotalAmount       *decimal.Decimal `json:"totalAmount"`
}

// InvoiceSummaryResponse factura agrupada de los ingresos de un producto.
type InvoiceSummaryResponse struct {
	InvoiceNumber string    `json:"invoiceNumber"`
	Last          time.Time `json:"last"`
	TotalQty      int64     `json:"totalQty"`
}

// ToProductResponse mapea la entidad al DTO de respuesta.
func ToProductResponse(d *entity.ProductDetail) *ProductResponse {
	if d == nil {
		return nil
	}
	out := &ProductResponse{
		ID:           d.ID,
		Barcode:      d.Barcode,
		Name:         d.Name,
		Quantity:     d.Quantity,
		Manufacturer: RefResponse{ID: d.Manufacturer.ID, Name: d.Manufacturer.Name},
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
	if d.Group != nil {
		out.Group = &RefResponse{ID: d.Group.ID, Name: d.Group.Name}
	}
	if d.Supplier != nil {
		out.Supplier = &RefResponse{ID: d.Supplier.ID, Name: d.Supplier.Name}
	}
	return out
}

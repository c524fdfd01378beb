package dto

import (
	"time"

	"github.com/sandelis/warehouse-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// MovementProductRef datos mínimos del producto de un movimiento. Nil cuando el
// producto fue eliminado (el asiento se conserva por auditoría).
type MovementProductRef struct {
	ID      string `json:"id"`
	Barcode string `json:"barcode"`
	Name    string `json:"name"`
}

// MovementResponse asiento del libro de movimientos.
type MovementResponse struct {
	ID                string              `json:"id"`
	Product           *MovementProductRef `json:"product"`
	Type              string              `json:"type"`
	Quantity          int64               `json:"quantity"`
	Note              string              `json:"note,omitempty"`
	InvoiceNumber     string              `json:"invoiceNumber,omitempty"`
	Source            string              `json:"source,omitempty"`
	ClientName        string              `json:"clientName,omitempty"`
	ClientPhone       string              `json:"clientPhone,omitempty"`
	ReceiptNumber     string              `json:"receiptNumber,omitempty"`
	SaleInvoiceNumber string              `json:"saleInvoiceNumber,omitempty"`
	TotalAmount       *decimal.Decimal    `json:"totalAmount,omitempty"`
	CreatedAt         time.Time           `json:"createdAt"`
}

// MovementListResponse listado paginado de movimientos.
type MovementListResponse struct {
	Data       []MovementResponse `json:"data"`
	Pagination Pagination         `json:"pagination"`
}

// MovementSearchRequest filtros del listado de movimientos. Las fechas aceptan
// RFC 3339 o fecha calendario (YYYY-MM-DD); dateTo calendario incluye el día entero.
type MovementSearchRequest struct {
	Q         string `query:"q"`
	ProductID string `query:"productId"`
	Type      string `query:"type" validate:"omitempty,oneof=IN OUT"`
	Invoice   string `query:"invoice"`
	DateFrom  string `query:"dateFrom"`
	DateTo    string `query:"dateTo"`
	Page      int    `query:"page" validate:"omitempty,min=1"`
	Limit     int    `query:"limit" validate:"omitempty,min=1,max=200"`
}

// DefaultPage aplica valores por defecto de paginación.
func (r *MovementSearchRequest) DefaultPage() {
	if r.Page <= 0 {
		r.Page = 1
	}
	if r.Limit <= 0 {
		r.Limit = 50
	}
}

// ToMovementResponse mapea la entidad al DTO de respuesta.
func ToMovementResponse(m entity.MovementWithProduct) MovementResponse {
	out := MovementResponse{
		ID:                m.ID,
		Type:              m.Type,
		Quantity:          m.Quantity,
		Note:              m.Note,
		InvoiceNumber:     m.InvoiceNumber,
		Source:            m.Source,
		ClientName:        m.ClientName,
		ClientPhone:       m.ClientPhone,
		ReceiptNumber:     m.ReceiptNumber,
		SaleInvoiceNumber: m.SaleInvoiceNumber,
		TotalAmount:       m.TotalAmount,
		CreatedAt:         m.CreatedAt,
	}
	if m.Product != nil {
		out.Product = &MovementProductRef{ID: m.Product.ID, Barcode: m.Product.Barcode, Name: m.Product.Name}
	}
	return out
}

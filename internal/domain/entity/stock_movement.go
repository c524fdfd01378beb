package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementTypeIN  = "IN"
	MovementTypeOUT = "OUT"
)

// StockMovement entrada inmutable del libro de movimientos (append-only).
// Nunca se actualiza ni se borra; es la fuente de verdad para auditoría.
type StockMovement struct {
	ID                string
	ProductID         string
	Type              string // IN | OUT
	Quantity          int64  // siempre positivo; el signo lo da Type
	SupplierID        *string
	Note              string
	InvoiceNumber     string
	Source            string
	ClientName        string
	ClientPhone       string
	ReceiptNumber     string
	SaleInvoiceNumber string
	TotalAmount       *decimal.Decimal
	CreatedAt         time.Time
}

// MovementWithProduct movimiento con los datos mínimos del producto para listados.
// Product puede ser nil si el producto fue eliminado (el historial se conserva).
type MovementWithProduct struct {
	StockMovement
	Product *ProductRef
}

// ProductRef referencia mínima al producto de un movimiento.
type ProductRef struct {
	ID      string
	Barcode string
	Name    string
}

// InvoiceSummary agrupación de movimientos IN por número de factura.
type InvoiceSummary struct {
	InvoiceNumber string
	Last          time.Time
	TotalQty      int64
}

package entity

import "time"

// Product representa un producto del almacén identificado por su código de barras.
// Quantity es un agregado derivado del libro de movimientos; toda mutación pasa por
// el flujo de ingreso o el ajuste de cantidad, nunca por un update directo.
type Product struct {
	ID             string
	Barcode        string // clave única de negocio
	Name           string
	ManufacturerID string
	GroupID        *string
	SupplierID     *string
	Quantity       int64 // invariante: >= 0
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NamedRef referencia embebida (id + nombre) para mostrar en la UI.
type NamedRef struct {
	ID   string
	Name string
}

// ProductDetail producto con sus referencias resueltas (fabricante, grupo, proveedor).
type ProductDetail struct {
	Product
	Manufacturer NamedRef
	Group        *NamedRef
	Supplier     *NamedRef
}

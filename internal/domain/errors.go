package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrStockNotEmpty     = errors.New("el stock debe quedar en cero antes de eliminar el producto")
	ErrNewProductData    = errors.New("un producto nuevo requiere nombre y fabricante")
	ErrBarcodeAssigned   = errors.New("el producto ya tiene otro código de barras asignado")
	ErrBarcodeTaken      = errors.New("el código de barras ya pertenece a otro producto")
	ErrInvalidReference  = errors.New("referencia inexistente (grupo, proveedor o fabricante)")
)

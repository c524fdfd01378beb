package dto

// IntakeScanRequest entrada del flujo de ingreso por escaneo. Name y
// ManufacturerID solo son obligatorios cuando el código de barras es nuevo;
// esa regla se valida en el caso de uso, no estructuralmente.
type IntakeScanRequest struct {
	Barcode        string `json:"barcode" validate:"required"`
	Quantity       int64  `json:"quantity" validate:"required,min=1"`
	Name           string `json:"name"`
	ManufacturerID string `json:"manufacturerId"`
	GroupID        string `json:"groupId"`
	SupplierID     string `json:"supplierId"`
	InvoiceNumber  string `json:"invoiceNumber"`
}

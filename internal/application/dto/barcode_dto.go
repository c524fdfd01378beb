package dto

// ReserveBarcodesRequest cantidad de códigos a reservar (se acota a [1, 500]).
type ReserveBarcodesRequest struct {
	Count int `json:"count"`
}

// AssignBarcodeRequest asignación de un código concreto a un producto.
// Force permite reemplazar un código ya asignado.
type AssignBarcodeRequest struct {
	Barcode string `json:"barcode" validate:"required"`
	Force   bool   `json:"force"`
}

// AssignBarcodeResponse resumen del producto tras la asignación.
// El campo _id conserva el contrato del cliente existente.
type AssignBarcodeResponse struct {
	ID      string `json:"_id"`
	Barcode string `json:"barcode"`
	Name    string `json:"name"`
}

package entity

import "time"

// Reference entidad de catálogo con nombre único (grupo, proveedor o fabricante).
// Se crean desde la administración y los productos las referencian; no hay borrado
// en cascada.
type Reference struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

package repository

import "github.com/sandelis/warehouse-api/internal/domain/entity"

// ReferenceRepository puerto común para los catálogos con nombre único
// (grupos, proveedores, fabricantes).
type ReferenceRepository interface {
	Create(ref *entity.Reference) error
	List() ([]entity.Reference, error)
}

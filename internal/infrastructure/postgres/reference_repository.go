package postgres

import (
	"context"
	"fmt"

	"github.com/sandelis/warehouse-api/internal/domain"
	"github.com/sandelis/warehouse-api/internal/domain/entity"
	"github.com/sandelis/warehouse-api/internal/domain/repository"
)

var _ repository.ReferenceRepository = (*ReferenceRepo)(nil)

// ReferenceRepo repositorio parametrizado por tabla para los catálogos con
// nombre único (groups, suppliers, manufacturers).
type ReferenceRepo struct {
	q     Querier
	table string
}

// NewGroupRepository catálogo de grupos.
func NewGroupRepository(q Querier) *ReferenceRepo {
	return &ReferenceRepo{q: q, table: "groups"}
}

// NewSupplierRepository catálogo de proveedores.
func NewSupplierRepository(q Querier) *ReferenceRepo {
	return &ReferenceRepo{q: q, table: "suppliers"}
}

// NewManufacturerRepository catálogo de fabricantes.
func NewManufacturerRepository(q Querier) *ReferenceRepo {
	return &ReferenceRepo{q: q, table: "manufacturers"}
}

// Create inserta una entrada; el nombre duplicado se traduce a ErrDuplicate.
func (r *ReferenceRepo) Create(ref *entity.Reference) error {
	query := fmt.Sprintf(`INSERT INTO %s (id, name, created_at) VALUES ($1, $2, $3)`, r.table)
	_, err := r.q.Exec(context.Background(), query, ref.ID, ref.Name, ref.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert %s: %w", r.table, err)
	}
	return nil
}

// List devuelve todas las entradas ordenadas por nombre.
func (r *ReferenceRepo) List() ([]entity.Reference, error) {
	query := fmt.Sprintf(`SELECT id, name, created_at FROM %s ORDER BY name ASC`, r.table)
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.table, err)
	}
	defer rows.Close()
	var list []entity.Reference
	for rows.Next() {
		var ref entity.Reference
		if err := rows.Scan(&ref.ID, &ref.Name, &ref.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.table, err)
		}
		list = append(list, ref)
	}
	return list, rows.Err()
}

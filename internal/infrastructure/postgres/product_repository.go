package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/sandelis/warehouse-api/internal/domain"
	"github.com/sandelis/warehouse-api/internal/domain/entity"
	"github.com/sandelis/warehouse-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// productRow fila de producto con referencias resueltas (tags para pgxscan).
type productRow struct {
	ID               string    `db:"id"`
	Barcode          string    `db:"barcode"`
	Name             string    `db:"name"`
	Quantity         int64     `db:"quantity"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
	ManufacturerID   string    `db:"manufacturer_id"`
	ManufacturerName string    `db:"manufacturer_name"`
	GroupID          *string   `db:"group_id"`
	GroupName        *string   `db:"group_name"`
	SupplierID       *string   `db:"supplier_id"`
	SupplierName     *string   `db:"supplier_name"`
}

func (row *productRow) toDetail() *entity.ProductDetail {
	d := &entity.ProductDetail{
		Product: entity.Product{
			ID:             row.ID,
			Barcode:        row.Barcode,
			Name:           row.Name,
			ManufacturerID: row.ManufacturerID,
			GroupID:        row.GroupID,
			SupplierID:     row.SupplierID,
			Quantity:       row.Quantity,
			CreatedAt:      row.CreatedAt,
			UpdatedAt:      row.UpdatedAt,
		},
		Manufacturer: entity.NamedRef{ID: row.ManufacturerID, Name: row.ManufacturerName},
	}
	if row.GroupID != nil && row.GroupName != nil {
		d.Group = &entity.NamedRef{ID: *row.GroupID, Name: *row.GroupName}
	}
	if row.SupplierID != nil && row.SupplierName != nil {
		d.Supplier = &entity.NamedRef{ID: *row.SupplierID, Name: *row.SupplierName}
	}
	return d
}

// detailSelect SELECT base con los joins de referencias para armar ProductDetail.
func detailSelect() squirrel.SelectBuilder {
	return psql.Select(
		"p.id", "p.barcode", "p.name", "p.quantity", "p.created_at", "p.updated_at",
		"p.manufacturer_id", "m.name AS manufacturer_name",
		"p.group_id", "g.name AS group_name",
		"p.supplier_id", "s.name AS supplier_name",
	).
		From("products p").
		Join("manufacturers m ON m.id = p.manufacturer_id").
		LeftJoin("groups g ON g.id = p.group_id").
		LeftJoin("suppliers s ON s.id = p.supplier_id")
}

// Create persiste un nuevo producto con su cantidad inicial.
func (r *ProductRepo) Create(p *entity.Product) error {
	query := `
		INSERT INTO products (id, barcode, name, manufacturer_id, group_id, supplier_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Barcode, p.Name, p.ManufacturerID, p.GroupID, p.SupplierID,
		p.Quantity, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidReference
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *ProductRepo) getOne(where squirrel.Sqlizer) (*entity.ProductDetail, error) {
	query, args, err := detailSelect().Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select product: %w", err)
	}
	var row productRow
	if err := pgxscan.Get(context.Background(), r.q, &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return row.toDetail(), nil
}

// GetByID obtiene un producto por ID con sus referencias resueltas.
func (r *ProductRepo) GetByID(id string) (*entity.ProductDetail, error) {
	return r.getOne(squirrel.Eq{"p.id": id})
}

// GetByBarcode obtiene un producto por su código de barras.
func (r *ProductRepo) GetByBarcode(barcode string) (*entity.ProductDetail, error) {
	return r.getOne(squirrel.Eq{"p.barcode": barcode})
}

// BarcodeOwner devuelve el id del producto dueño del código, o "" si está libre.
func (r *ProductRepo) BarcodeOwner(barcode string) (string, error) {
	var id string
	err := r.q.QueryRow(context.Background(),
		`SELECT id FROM products WHERE barcode = $1`, barcode).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("barcode owner: %w", err)
	}
	return id, nil
}

// ExistingBarcodes devuelve cuáles de los códigos dados ya están en uso.
func (r *ProductRepo) ExistingBarcodes(codes []string) ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT barcode FROM products WHERE barcode = ANY($1) ORDER BY barcode`, codes)
	if err != nil {
		return nil, fmt.Errorf("existing barcodes: %w", err)
	}
	defer rows.Close()
	var used []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("scan barcode: %w", err)
		}
		used = append(used, code)
	}
	return used, rows.Err()
}

// IncrementByBarcode suma qty de forma atómica (una sola sentencia, sin
// read-modify-write) y fija grupo/proveedor si vienen. "" si no hay producto.
func (r *ProductRepo) IncrementByBarcode(barcode string, qty int64, groupID, supplierID *string) (string, error) {
	query := `
		UPDATE products
		SET quantity = quantity + $2,
		    group_id = COALESCE($3, group_id),
		    supplier_id = COALESCE($4, supplier_id),
		    updated_at = now()
		WHERE barcode = $1
		RETURNING id`
	var id string
	err := r.q.QueryRow(context.Background(), query, barcode, qty, groupID, supplierID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		if isForeignKeyViolation(err) {
			return "", domain.ErrInvalidReference
		}
		return "", fmt.Errorf("increment by barcode: %w", err)
	}
	return id, nil
}

// AdjustQuantity aplica delta con la guarda "quantity + delta >= 0" en el WHERE:
// si la fila no matchea (resultado negativo o id inexistente) no hay mutación.
func (r *ProductRepo) AdjustQuantity(id string, delta int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `
		UPDATE products
		SET quantity = quantity + $2, updated_at = now()
		WHERE id = $1 AND quantity + $2 >= 0`,
		id, delta,
	)
	if err != nil {
		return false, fmt.Errorf("adjust quantity: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// SetBarcode asigna el código de barras; el índice único es el respaldo final
// contra asignaciones concurrentes.
func (r *ProductRepo) SetBarcode(id, barcode string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET barcode = $2, updated_at = now() WHERE id = $1`, id, barcode)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("set barcode: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteIfEmpty borra el producto solo si su cantidad es cero (guarda en el WHERE).
// El historial de movimientos se conserva.
func (r *ProductRepo) DeleteIfEmpty(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM products WHERE id = $1 AND quantity = 0`, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// searchConditions arma el predicado combinable de la búsqueda de productos.
// Cada token exige substring sobre nombre O código de barras; los tokens se
// combinan con AND. Invoice correlaciona con movimientos IN de esa factura.
func searchConditions(f repository.ProductFilter) squirrel.And {
	cond := squirrel.And{}
	for _, tok := range f.Tokens {
		pat := "%" + escapeLike(tok) + "%"
		cond = append(cond, squirrel.Or{
			squirrel.ILike{"p.name": pat},
			squirrel.ILike{"p.barcode": pat},
		})
	}
	if f.GroupID != "" {
		cond = append(cond, squirrel.Eq{"p.group_id": f.GroupID})
	}
	if f.SupplierID != "" {
		cond = append(cond, squirrel.Eq{"p.supplier_id": f.SupplierID})
	}
	if f.ManufacturerID != "" {
		cond = append(cond, squirrel.Eq{"p.manufacturer_id": f.ManufacturerID})
	}
	if f.Invoice != "" {
		cond = append(cond, squirrel.Expr(`EXISTS (
			SELECT 1 FROM stock_movements sm
			WHERE sm.product_id = p.id
			  AND sm.type = 'IN'
			  AND sm.invoice_number <> ''
			  AND sm.invoice_number = ?)`, f.Invoice))
	}
	return cond
}

var productSortColumns = map[string]string{
	"name":      "p.name ASC",
	"quantity":  "p.quantity ASC",
	"createdAt": "p.created_at ASC",
}

// Search búsqueda paginada multi-criterio. El total se calcula con el mismo
// predicado (correlación incluida), independiente de la página.
func (r *ProductRepo) Search(f repository.ProductFilter) ([]entity.ProductDetail, int64, error) {
	cond := searchConditions(f)

	orderBy, ok := productSortColumns[f.Sort]
	if !ok {
		orderBy = productSortColumns["name"]
	}
	offset := uint64((f.Page - 1) * f.Limit)

	query, args, err := detailSelect().
		Where(cond).
		OrderBy(orderBy).
		Limit(uint64(f.Limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build search products: %w", err)
	}
	var rows []productRow
	if err := pgxscan.Select(context.Background(), r.q, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("search products: %w", err)
	}
	items := make([]entity.ProductDetail, 0, len(rows))
	for i := range rows {
		items = append(items, *rows[i].toDetail())
	}

	countQuery, countArgs, err := psql.Select("COUNT(*)").From("products p").Where(cond).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count products: %w", err)
	}
	var total int64
	if err := r.q.QueryRow(context.Background(), countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}
	return items, total, nil
}

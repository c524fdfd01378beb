package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/sandelis/warehouse-api/internal/domain/entity"
	"github.com/sandelis/warehouse-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo libro de movimientos sobre PostgreSQL (usable con pool o tx).
// Solo inserta y consulta; las filas nunca se actualizan ni se borran.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento (insert puro, append-only).
func (r *MovementRepo) Create(m *entity.StockMovement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	query := `
		INSERT INTO stock_movements (id, product_id, type, quantity, supplier_id, note, invoice_number,
			source, client_name, client_phone, receipt_number, sale_invoice_number, total_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ProductID, m.Type, m.Quantity, m.SupplierID, m.Note, m.InvoiceNumber,
		m.Source, m.ClientName, m.ClientPhone, m.ReceiptNumber, m.SaleInvoiceNumber,
		m.TotalAmount, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// movementRow fila de movimiento con el producto referenciado (tags para pgxscan).
// ProductBarcode/ProductName quedan en nil cuando el producto fue eliminado.
type movementRow struct {
	ID                string           `db:"id"`
	ProductID         string           `db:"product_id"`
	Type              string           `db:"type"`
	Quantity          int64            `db:"quantity"`
	SupplierID        *string          `db:"supplier_id"`
	Note              string           `db:"note"`
	InvoiceNumber     string           `db:"invoice_number"`
	Source            string           `db:"source"`
	ClientName        string           `db:"client_name"`
	ClientPhone       string           `db:"client_phone"`
	ReceiptNumber     string           `db:"receipt_number"`
	SaleInvoiceNumber string           `db:"sale_invoice_number"`
	TotalAmount       *decimal.Decimal `db:"total_amount"`
	CreatedAt         time.Time        `db:"created_at"`
	ProductBarcode    *string          `db:"product_barcode"`
	ProductName       *string          `db:"product_name"`
}

func (row *movementRow) toEntity() entity.MovementWithProduct {
	m := entity.MovementWithProduct{
		StockMovement: entity.StockMovement{
			ID:                row.ID,
			ProductID:         row.ProductID,
			Type:              row.Type,
			Quantity:          row.Quantity,
			SupplierID:        row.SupplierID,
			Note:              row.Note,
			InvoiceNumber:     row.InvoiceNumber,
			Source:            row.Source,
			ClientName:        row.ClientName,
			ClientPhone:       row.ClientPhone,
			ReceiptNumber:     row.ReceiptNumber,
			SaleInvoiceNumber: row.SaleInvoiceNumber,
			TotalAmount:       row.TotalAmount,
			CreatedAt:         row.CreatedAt,
		},
	}
	if row.ProductBarcode != nil && row.ProductName != nil {
		m.Product = &entity.ProductRef{ID: row.ProductID, Barcode: *row.ProductBarcode, Name: *row.ProductName}
	}
	return m
}

// movementConditions predicado combinable del listado de movimientos. Los
// tokens de texto libre se evalúan contra el producto referenciado (join).
func movementConditions(f repository.MovementFilter) squirrel.And {
	cond := squirrel.And{}
	if f.ProductID != "" {
		cond = append(cond, squirrel.Eq{"sm.product_id": f.ProductID})
	}
	if f.Type != "" {
		cond = append(cond, squirrel.Eq{"sm.type": f.Type})
	}
	if f.Invoice != "" {
		cond = append(cond, squirrel.ILike{"sm.invoice_number": "%" + escapeLike(f.Invoice) + "%"})
	}
	if f.DateFrom != nil {
		cond = append(cond, squirrel.GtOrEq{"sm.created_at": *f.DateFrom})
	}
	if f.DateTo != nil {
		cond = append(cond, squirrel.LtOrEq{"sm.created_at": *f.DateTo})
	}
	for _, tok := range f.Tokens {
		pat := "%" + escapeLike(tok) + "%"
		cond = append(cond, squirrel.Or{
			squirrel.ILike{"p.name": pat},
			squirrel.ILike{"p.barcode": pat},
		})
	}
	return cond
}

// Search listado paginado, siempre del más reciente al más antiguo. La página
// y el total se calculan después de la correlación con products.
func (r *MovementRepo) Search(f repository.MovementFilter) ([]entity.MovementWithProduct, int64, error) {
	cond := movementConditions(f)
	offset := uint64((f.Page - 1) * f.Limit)

	query, args, err := psql.Select(
		"sm.id", "sm.product_id", "sm.type", "sm.quantity", "sm.supplier_id", "sm.note",
		"sm.invoice_number", "sm.source", "sm.client_name", "sm.client_phone",
		"sm.receipt_number", "sm.sale_invoice_number", "sm.total_amount", "sm.created_at",
		"p.barcode AS product_barcode", "p.name AS product_name",
	).
		From("stock_movements sm").
		LeftJoin("products p ON p.id = sm.product_id").
		Where(cond).
		OrderBy("sm.created_at DESC").
		Limit(uint64(f.Limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build search movements: %w", err)
	}
	var rows []movementRow
	if err := pgxscan.Select(context.Background(), r.q, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("search movements: %w", err)
	}
	items := make([]entity.MovementWithProduct, 0, len(rows))
	for i := range rows {
		items = append(items, rows[i].toEntity())
	}

	countQuery, countArgs, err := psql.Select("COUNT(*)").
		From("stock_movements sm").
		LeftJoin("products p ON p.id = sm.product_id").
		Where(cond).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count movements: %w", err)
	}
	var total int64
	if err := r.q.QueryRow(context.Background(), countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count movements: %w", err)
	}
	return items, total, nil
}

// InvoiceSummaries agrupa los ingresos con factura de un producto, de la
// factura más reciente a la más antigua.
func (r *MovementRepo) InvoiceSummaries(productID string, limit int) ([]entity.InvoiceSummary, error) {
	query := `
		SELECT invoice_number, MAX(created_at) AS last, SUM(quantity) AS total_qty
		FROM stock_movements
		WHERE product_id = $1 AND type = 'IN' AND invoice_number <> ''
		GROUP BY invoice_number
		ORDER BY last DESC
		LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, productID, limit)
	if err != nil {
		return nil, fmt.Errorf("invoice summaries: %w", err)
	}
	defer rows.Close()
	var list []entity.InvoiceSummary
	for rows.Next() {
		var s entity.InvoiceSummary
		if err := rows.Scan(&s.InvoiceNumber, &s.Last, &s.TotalQty); err != nil {
			return nil, fmt.Errorf("scan invoice summary: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

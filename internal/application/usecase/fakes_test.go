package usecase_test

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sandelis/warehouse-api/internal/domain"
	"github.com/sandelis/warehouse-api/internal/domain/entity"
	"github.com/sandelis/warehouse-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

// fakeStore implementa ProductRepository, MovementRepository y CounterRepository
// sobre mapas en memoria. refNames resuelve los nombres de las referencias
// (fabricante, grupo, proveedor) al armar ProductDetail.
type fakeStore struct {
	products  map[string]*entity.Product
	movements []entity.StockMovement
	counters  map[string]int64
	refNames  map[string]string

	// failCreateDuplicate simula perder la carrera del primer escaneo: el
	// insert choca con el índice único aunque el update no haya matcheado.
	failCreateDuplicate bool

	// Último filtro recibido, para verificar el armado de la consulta.
	lastProductFilter  repository.ProductFilter
	lastMovementFilter repository.MovementFilter
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products: map[string]*entity.Product{},
		counters: map[string]int64{},
		refNames: map[string]string{
			"M1": "Bosch",
			"G1": "Tornillería",
			"S1": "Proveedor Norte",
		},
	}
}

var _ repository.ProductRepository = (*fakeStore)(nil)
var _ repository.CounterRepository = (*fakeStore)(nil)
var _ repository.MovementRepository = movementAdapter{}

func (s *fakeStore) detail(p *entity.Product) *entity.ProductDetail {
	d := &entity.ProductDetail{
		Product:      *p,
		Manufacturer: entity.NamedRef{ID: p.ManufacturerID, Name: s.refNames[p.ManufacturerID]},
	}
	if p.GroupID != nil {
		d.Group = &entity.NamedRef{ID: *p.GroupID, Name: s.refNames[*p.GroupID]}
	}
	if p.SupplierID != nil {
		d.Supplier = &entity.NamedRef{ID: *p.SupplierID, Name: s.refNames[*p.SupplierID]}
	}
	return d
}

func (s *fakeStore) Create(p *entity.Product) error {
	if s.failCreateDuplicate {
		return domain.ErrDuplicate
	}
	for _, other := range s.products {
		if other.Barcode == p.Barcode {
			return domain.ErrDuplicate
		}
	}
	cp := *p
	s.products[p.ID] = &cp
	return nil
}

func (s *fakeStore) GetByID(id string) (*entity.ProductDetail, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	return s.detail(p), nil
}

func (s *fakeStore) GetByBarcode(barcode string) (*entity.ProductDetail, error) {
	for _, p := range s.products {
		if p.Barcode == barcode {
			return s.detail(p), nil
		}
	}
	return nil, nil
}

func (s *fakeStore) BarcodeOwner(barcode string) (string, error) {
	for id, p := range s.products {
		if p.Barcode == barcode {
			return id, nil
		}
	}
	return "", nil
}

func (s *fakeStore) ExistingBarcodes(codes []string) ([]string, error) {
	var used []string
	for _, code := range codes {
		if id, _ := s.BarcodeOwner(code); id != "" {
			used = append(used, code)
		}
	}
	sort.Strings(used)
	return used, nil
}

func (s *fakeStore) IncrementByBarcode(barcode string, qty int64, groupID, supplierID *string) (string, error) {
	for id, p := range s.products {
		if p.Barcode == barcode {
			p.Quantity += qty
			if groupID != nil {
				p.GroupID = groupID
			}
			if supplierID != nil {
				p.SupplierID = supplierID
			}
			return id, nil
		}
	}
	return "", nil
}

func (s *fakeStore) AdjustQuantity(id string, delta int64) (bool, error) {
	p, ok := s.products[id]
	if !ok || p.Quantity+delta < 0 {
		return false, nil
	}
	p.Quantity += delta
	return true, nil
}

func (s *fakeStore) SetBarcode(id, barcode string) error {
	p, ok := s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	for otherID, other := range s.products {
		if otherID != id && other.Barcode == barcode {
			return domain.ErrDuplicate
		}
	}
	p.Barcode = barcode
	return nil
}

func (s *fakeStore) Search(f repository.ProductFilter) ([]entity.ProductDetail, int64, error) {
	s.lastProductFilter = f
	var items []entity.ProductDetail
	for _, p := range s.products {
		items = append(items, *s.detail(p))
	}
	return items, int64(len(items)), nil
}

func (s *fakeStore) DeleteIfEmpty(id string) (bool, error) {
	p, ok := s.products[id]
	if !ok || p.Quantity != 0 {
		return false, nil
	}
	delete(s.products, id)
	return true, nil
}

func (s *fakeStore) CreateMovement(m *entity.StockMovement) error {
	if m.ID == "" {
		m.ID = fmt.Sprintf("mov-%d", len(s.movements)+1)
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	s.movements = append(s.movements, *m)
	return nil
}

func (s *fakeStore) SearchMovements(f repository.MovementFilter) ([]entity.MovementWithProduct, int64, error) {
	s.lastMovementFilter = f
	var items []entity.MovementWithProduct
	for _, m := range s.movements {
		items = append(items, entity.MovementWithProduct{StockMovement: m})
	}
	return items, int64(len(items)), nil
}

func (s *fakeStore) InvoiceSummaries(productID string, limit int) ([]entity.InvoiceSummary, error) {
	byInvoice := map[string]*entity.InvoiceSummary{}
	for _, m := range s.movements {
		if m.ProductID != productID || m.Type != entity.MovementTypeIN || m.InvoiceNumber == "" {
			continue
		}
		sum, ok := byInvoice[m.InvoiceNumber]
		if !ok {
			sum = &entity.InvoiceSummary{InvoiceNumber: m.InvoiceNumber}
			byInvoice[m.InvoiceNumber] = sum
		}
		sum.TotalQty += m.Quantity
		if m.CreatedAt.After(sum.Last) {
			sum.Last = m.CreatedAt
		}
	}
	var list []entity.InvoiceSummary
	for _, sum := range byInvoice {
		list = append(list, *sum)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Last.After(list[j].Last) })
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (s *fakeStore) Next(key string) (int64, error) {
	s.counters[key]++
	return s.counters[key], nil
}

// signedSum suma con signo los movimientos de un producto (IN positivo, OUT negativo).
func (s *fakeStore) signedSum(productID string) int64 {
	var total int64
	for _, m := range s.movements {
		if m.ProductID != productID {
			continue
		}
		if m.Type == entity.MovementTypeOUT {
			total -= m.Quantity
		} else {
			total += m.Quantity
		}
	}
	return total
}

// movementAdapter desacopla las firmas de MovementRepository del fakeStore
// (Create/Search colisionan con las de ProductRepository).
type movementAdapter struct{ s *fakeStore }

func (a movementAdapter) Create(m *entity.StockMovement) error { return a.s.CreateMovement(m) }
func (a movementAdapter) Search(f repository.MovementFilter) ([]entity.MovementWithProduct, int64, error) {
	return a.s.SearchMovements(f)
}
func (a movementAdapter) InvoiceSummaries(productID string, limit int) ([]entity.InvoiceSummary, error) {
	return a.s.InvoiceSummaries(productID, limit)
}

// fakeTxRunner ejecuta el callback directamente sobre el fakeStore.
// No simula rollback: los casos de prueba fallan antes de mutar o no fallan.
type fakeTxRunner struct{ s *fakeStore }

func (r fakeTxRunner) Run(_ context.Context, fn func(
	products repository.ProductRepository,
	movements repository.MovementRepository,
) error) error {
	return fn(r.s, movementAdapter{r.s})
}

// contains helper corto para mensajes de error.
func contains(s, sub string) bool { return strings.Contains(s, sub) }

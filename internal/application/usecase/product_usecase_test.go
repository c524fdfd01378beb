package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandelis/warehouse-api/internal/application/dto"
	"github.com/sandelis/warehouse-api/internal/application/usecase"
	"github.com/sandelis/warehouse-api/internal/domain"
	"github.com/sandelis/warehouse-api/internal/domain/entity"
)

func seedProduct(store *fakeStore, id, barcode string, qty int64) {
	now := time.Now()
	store.products[id] = &entity.Product{
		ID: id, Barcode: barcode, Name: "Bolt M6", ManufacturerID: "M1",
		Quantity: qty, CreatedAt: now, UpdatedAt: now,
	}
}

func newProductUC(store *fakeStore) *usecase.ProductUseCase {
	return usecase.NewProductUseCase(fakeTxRunner{store}, store, movementAdapter{store})
}

// ──────────────────────────────────────────────────────────────────────────────
// Ajuste de cantidad
// ──────────────────────────────────────────────────────────────────────────────

// Delta negativo: descuenta stock y anota un movimiento OUT por el valor absoluto.
func TestAdjustQuantity_Descuenta(t *testing.T) {
	store := newFakeStore()
	seedProduct(store, "P1", "123", 8)
	uc := newProductUC(store)

	out, err := uc.AdjustQuantity(context.Background(), "P1", dto.AdjustQuantityRequest{
		Delta: -3, Note: "venta mostrador", ClientName: "Cliente X",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), out.Quantity)

	require.Len(t, store.movements, 1)
	assert.Equal(t, entity.MovementTypeOUT, store.movements[0].Type)
	assert.Equal(t, int64(3), store.movements[0].Quantity)
	assert.Equal(t, "Cliente X", store.movements[0].ClientName)
}

// Delta que dejaría la cantidad negativa: regla de negocio, sin mutación ni asiento.
func TestAdjustQuantity_Insuficiente(t *testing.T) {
	store := newFakeStore()
	seedProduct(store, "P1", "123", 8)
	uc := newProductUC(store)

	_, err := uc.AdjustQuantity(context.Background(), "P1", dto.AdjustQuantityRequest{Delta: -10})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(8), store.products["P1"].Quantity)
	assert.Empty(t, store.movements)
}

func TestAdjustQuantity_ProductoNoExiste(t *testing.T) {
	store := newFakeStore()
	uc := newProductUC(store)

	_, err := uc.AdjustQuantity(context.Background(), "nope", dto.AdjustQuantityRequest{Delta: 1})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Eliminación
// ──────────────────────────────────────────────────────────────────────────────

// Solo se elimina con stock en cero; con stock queda todo intacto.
func TestDelete_ConStock(t *testing.T) {
	store := newFakeStore()
	seedProduct(store, "P1", "123", 4)
	uc := newProductUC(store)

	err := uc.Delete("P1")
	require.ErrorIs(t, err, domain.ErrStockNotEmpty)
	assert.Contains(t, store.products, "P1")
}

func TestDelete_StockCero(t *testing.T) {
	store := newFakeStore()
	seedProduct(store, "P1", "123", 0)
	uc := newProductUC(store)

	require.NoError(t, uc.Delete("P1"))
	assert.NotContains(t, store.products, "P1")
}

func TestDelete_NoExiste(t *testing.T) {
	store := newFakeStore()
	uc := newProductUC(store)
	require.ErrorIs(t, uc.Delete("nope"), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Búsqueda
// ──────────────────────────────────────────────────────────────────────────────

// La consulta libre se divide en tokens y la paginación recibe sus defaults.
func TestSearch_TokensYDefaults(t *testing.T) {
	store := newFakeStore()
	uc := newProductUC(store)

	_, err := uc.Search(dto.ProductSearchRequest{Q: "2449 bosch", Invoice: " INV-7 "})
	require.NoError(t, err)

	f := store.lastProductFilter
	assert.Equal(t, []string{"2449", "bosch"}, f.Tokens)
	assert.Equal(t, "INV-7", f.Invoice)
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 20, f.Limit)
	assert.Equal(t, "name", f.Sort)
}

func TestGetByBarcode_NoExiste(t *testing.T) {
	store := newFakeStore()
	uc := newProductUC(store)
	_, err := uc.GetByBarcode("x")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Facturas por producto
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoices_AgrupaPorFactura(t *testing.T) {
	store := newFakeStore()
	seedProduct(store, "P1", "123", 9)
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store.movements = []entity.StockMovement{
		{ID: "m1", ProductID: "P1", Type: entity.MovementTypeIN, Quantity: 4, InvoiceNumber: "INV-7", CreatedAt: base},
		{ID: "m2", ProductID: "P1", Type: entity.MovementTypeIN, Quantity: 2, InvoiceNumber: "INV-7", CreatedAt: base.Add(time.Hour)},
		{ID: "m3", ProductID: "P1", Type: entity.MovementTypeIN, Quantity: 3, InvoiceNumber: "INV-8", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "m4", ProductID: "P1", Type: entity.MovementTypeOUT, Quantity: 1, CreatedAt: base.Add(3 * time.Hour)},
	}
	uc := newProductUC(store)

	out, err := uc.Invoices("P1", 0)
	require.NoError(t, err)
	require.Len(t, out, 2)

	// Más reciente primero; las cantidades se suman por factura.
	assert.Equal(t, "INV-8", out[0].InvoiceNumber)
	assert.Equal(t, int64(3), out[0].TotalQty)
	assert.Equal(t, "INV-7", out[1].InvoiceNumber)
	assert.Equal(t, int64(6), out[1].TotalQty)
}

func TestInvoices_ProductoNoExiste(t *testing.T) {
	store := newFakeStore()
	uc := newProductUC(store)
	_, err := uc.Invoices("nope", 10)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

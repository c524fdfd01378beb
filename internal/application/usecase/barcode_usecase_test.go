package usecase_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandelis/warehouse-api/internal/application/dto"
	"github.com/sandelis/warehouse-api/internal/application/usecase"
	"github.com/sandelis/warehouse-api/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Reserva de códigos
// ──────────────────────────────────────────────────────────────────────────────

func TestReserve_FormatoYSecuencia(t *testing.T) {
	store := newFakeStore()
	uc := usecase.NewBarcodeUseCase(store, store)

	codes, err := uc.Reserve(3)
	require.NoError(t, err)
	require.Len(t, codes, 3)

	year := time.Now().Year()
	assert.Equal(t, fmt.Sprintf("W-%d-00001", year), codes[0])
	assert.Equal(t, fmt.Sprintf("W-%d-00002", year), codes[1])
	assert.Equal(t, fmt.Sprintf("W-%d-00003", year), codes[2])
}

// Lotes sucesivos continúan la secuencia del mismo contador anual.
func TestReserve_LotesContinuan(t *testing.T) {
	store := newFakeStore()
	uc := usecase.NewBarcodeUseCase(store, store)

	first, err := uc.Reserve(2)
	require.NoError(t, err)
	second, err := uc.Reserve(2)
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, c := range append(first, second...) {
		assert.False(t, seen[c], "código repetido: %s", c)
		seen[c] = true
	}
	year := time.Now().Year()
	assert.Equal(t, fmt.Sprintf("W-%d-00004", year), second[1])
}

func TestReserve_RecortaCount(t *testing.T) {
	store := newFakeStore()
	uc := usecase.NewBarcodeUseCase(store, store)

	codes, err := uc.Reserve(0)
	require.NoError(t, err)
	assert.Len(t, codes, 1)

	codes, err = uc.Reserve(9999)
	require.NoError(t, err)
	assert.Len(t, codes, 500)
}

// Un código ya en uso (contador reiniciado, datos importados) invalida el lote
// completo y el error nombra el código en conflicto.
func TestReserve_ColisionConExistente(t *testing.T) {
	store := newFakeStore()
	year := time.Now().Year()
	seedProduct(store, "P1", fmt.Sprintf("W-%d-00002", year), 1)
	uc := usecase.NewBarcodeUseCase(store, store)

	_, err := uc.Reserve(3)
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.True(t, contains(err.Error(), fmt.Sprintf("W-%d-00002", year)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Asignación de códigos
// ──────────────────────────────────────────────────────────────────────────────

func TestAssign_ProductoSinCodigo(t *testing.T) {
	store := newFakeStore()
	seedProduct(store, "P1", "", 0)
	uc := usecase.NewBarcodeUseCase(store, store)

	out, err := uc.Assign("P1", dto.AssignBarcodeRequest{Barcode: "W-2025-00007"})
	require.NoError(t, err)
	assert.Equal(t, "P1", out.ID)
	assert.Equal(t, "W-2025-00007", out.Barcode)
	assert.Equal(t, "W-2025-00007", store.products["P1"].Barcode)
}

// Sin force un código ya asignado no se reemplaza.
func TestAssign_YaAsignadoSinForce(t *testing.T) {
	store := newFakeStore()
	seedProduct(store, "P1", "OLD-1", 0)
	uc := usecase.NewBarcodeUseCase(store, store)

	_, err := uc.Assign("P1", dto.AssignBarcodeRequest{Barcode: "W-2025-00007"})
	require.ErrorIs(t, err, domain.ErrBarcodeAssigned)
	assert.Equal(t, "OLD-1", store.products["P1"].Barcode)
}

func TestAssign_ForceReemplaza(t *testing.T) {
	store := newFakeStore()
	seedProduct(store, "P1", "OLD-1", 0)
	uc := usecase.NewBarcodeUseCase(store, store)

	out, err := uc.Assign("P1", dto.AssignBarcodeRequest{Barcode: "W-2025-00007", Force: true})
	require.NoError(t, err)
	assert.Equal(t, "W-2025-00007", out.Barcode)
}

// Reasignar el mismo código al mismo producto es idempotente, sin force.
func TestAssign_MismoCodigo(t *testing.T) {
	store := newFakeStore()
	seedProduct(store, "P1", "W-2025-00007", 0)
	uc := usecase.NewBarcodeUseCase(store, store)

	out, err := uc.Assign("P1", dto.AssignBarcodeRequest{Barcode: "W-2025-00007"})
	require.NoError(t, err)
	assert.Equal(t, "W-2025-00007", out.Barcode)
}

func TestAssign_CodigoDeOtroProducto(t *testing.T) {
	store := newFakeStore()
	seedProduct(store, "P1", "", 0)
	seedProduct(store, "P2", "W-2025-00007", 0)
	uc := usecase.NewBarcodeUseCase(store, store)

	_, err := uc.Assign("P1", dto.AssignBarcodeRequest{Barcode: "W-2025-00007"})
	require.ErrorIs(t, err, domain.ErrBarcodeTaken)
}

func TestAssign_ProductoNoExiste(t *testing.T) {
	store := newFakeStore()
	uc := usecase.NewBarcodeUseCase(store, store)

	_, err := uc.Assign("nope", dto.AssignBarcodeRequest{Barcode: "W-2025-00007"})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

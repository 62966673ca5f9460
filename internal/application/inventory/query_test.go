package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/storefront-admin/internal/application/dto"
	"github.com/tu-usuario/storefront-admin/internal/application/inventory"
	"github.com/tu-usuario/storefront-admin/internal/domain"
	"github.com/tu-usuario/storefront-admin/internal/domain/entity"
)

func newQueryFixture(products ...*entity.Product) (*inventory.QueryUseCase, *inventory.AdjustStockUseCase, *fakeState) {
	st := newFakeState(products...)
	query := inventory.NewQueryUseCase(&fakeProductRepo{st: st}, &fakeMovementRepo{st: st}, &fakeStockRepo{st: st})
	adjust := inventory.NewAdjustStockUseCase(&fakeTxRunner{st: st}, &fakeProductRepo{st: st})
	return query, adjust, st
}

func TestListInventory_EstadoDerivadoPorProducto(t *testing.T) {
	query, _, _ := newQueryFixture(
		&entity.Product{ID: "p1", SKU: "A-1", Name: "Aretes", Stock: 0, MinStockLevel: 3},
		&entity.Product{ID: "p2", SKU: "B-1", Name: "Bolso", Stock: 2, MinStockLevel: 3},
		&entity.Product{ID: "p3", SKU: "C-1", Name: "Correa", Stock: 10, MinStockLevel: 3},
	)

	items, err := query.ListInventory(context.Background(), "", "", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, items, 3)

	byID := map[string]string{}
	for _, it := range items {
		byID[it.ProductID] = it.Status
	}
	assert.Equal(t, "out_of_stock", byID["p1"])
	assert.Equal(t, "low_stock", byID["p2"])
	assert.Equal(t, "in_stock", byID["p3"])
}

func TestListInventory_FiltroDeEstadoInvalido(t *testing.T) {
	query, _, _ := newQueryFixture()

	_, err := query.ListInventory(context.Background(), "", "agotado", dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListInventory_FiltroPorEstadoYBusqueda(t *testing.T) {
	query, _, _ := newQueryFixture(
		&entity.Product{ID: "p1", SKU: "CAM-001", Name: "Camiseta", Stock: 0, MinStockLevel: 3},
		&entity.Product{ID: "p2", SKU: "CAM-002", Name: "Camisa", Stock: 9, MinStockLevel: 3},
		&entity.Product{ID: "p3", SKU: "PAN-001", Name: "Pantalón", Stock: 0, MinStockLevel: 3},
	)

	items, err := query.ListInventory(context.Background(), "cam", "out_of_stock", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ProductID)
}

func TestListMovements_MasRecientesPrimero(t *testing.T) {
	query, adjust, _ := newQueryFixture(
		&entity.Product{ID: testProductID, SKU: "CAM-001", Name: "Camiseta", Stock: 20, MinStockLevel: 5},
	)

	_, err := adjust.Apply(context.Background(), inventory.AdjustmentInput{
		ProductID: testProductID, Delta: -18, Type: entity.MovementTypeSale,
	})
	require.NoError(t, err)
	_, err = adjust.Apply(context.Background(), inventory.AdjustmentInput{
		ProductID: testProductID, Delta: +7, Type: entity.MovementTypeRestock,
	})
	require.NoError(t, err)

	out, err := query.ListMovements(context.Background(), testProductID, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 2)

	// El restock es posterior, aparece primero.
	assert.Equal(t, +7, out.Items[0].ChangeAmount)
	assert.Equal(t, 9, out.Items[0].NewStock)
	assert.Equal(t, -18, out.Items[1].ChangeAmount)
	assert.Equal(t, 2, out.Items[1].NewStock)

	// Leer el historial no muta nada: la segunda lectura es idéntica.
	again, err := query.ListMovements(context.Background(), testProductID, dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, out.Items, again.Items)
}

func TestListMovements_ProductoInexistente(t *testing.T) {
	query, _, _ := newQueryFixture()

	_, err := query.ListMovements(context.Background(), "no-existe", dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestListMovements_FeedGlobalConPaginacion(t *testing.T) {
	query, adjust, _ := newQueryFixture(
		&entity.Product{ID: testProductID, SKU: "CAM-001", Name: "Camiseta", Stock: 100, MinStockLevel: 5},
	)
	for i := 0; i < 5; i++ {
		_, err := adjust.Apply(context.Background(), inventory.AdjustmentInput{
			ProductID: testProductID, Delta: -1, Type: entity.MovementTypeSale,
		})
		require.NoError(t, err)
	}

	page1, err := query.ListMovements(context.Background(), "", dto.PageRequest{Limit: 2, Offset: 0})
	require.NoError(t, err)
	assert.Len(t, page1.Items, 2)
	assert.Equal(t, 95, page1.Items[0].NewStock)

	page3, err := query.ListMovements(context.Background(), "", dto.PageRequest{Limit: 2, Offset: 4})
	require.NoError(t, err)
	assert.Len(t, page3.Items, 1)
	assert.Equal(t, 99, page3.Items[0].NewStock)
}

func TestReconcile_ProyeccionConsistente(t *testing.T) {
	query, adjust, _ := newQueryFixture(
		&entity.Product{ID: testProductID, SKU: "CAM-001", Name: "Camiseta", Stock: 0, MinStockLevel: 5},
	)
	_, err := adjust.Apply(context.Background(), inventory.AdjustmentInput{
		ProductID: testProductID, Delta: +10, Type: entity.MovementTypeRestock,
	})
	require.NoError(t, err)
	_, err = adjust.Apply(context.Background(), inventory.AdjustmentInput{
		ProductID: testProductID, Delta: -4, Type: entity.MovementTypeSale,
	})
	require.NoError(t, err)

	out, err := query.Reconcile(context.Background(), testProductID)
	require.NoError(t, err)
	assert.Equal(t, 6, out.CachedStock)
	assert.Equal(t, 6, out.LedgerTotal)
	assert.True(t, out.Consistent)
}

func TestReconcile_DetectaDivergencia(t *testing.T) {
	query, adjust, st := newQueryFixture(
		&entity.Product{ID: testProductID, SKU: "CAM-001", Name: "Camiseta", Stock: 0, MinStockLevel: 5},
	)
	_, err := adjust.Apply(context.Background(), inventory.AdjustmentInput{
		ProductID: testProductID, Delta: +10, Type: entity.MovementTypeRestock,
	})
	require.NoError(t, err)

	// Corromper la proyección a mano (simula un bug o una escritura externa).
	st.mu.Lock()
	st.products[testProductID].Stock = 7
	st.mu.Unlock()

	out, err := query.Reconcile(context.Background(), testProductID)
	require.NoError(t, err)
	assert.Equal(t, 7, out.CachedStock)
	assert.Equal(t, 10, out.LedgerTotal)
	assert.False(t, out.Consistent)
}

func TestReconcile_ConsistenteBajoAjustesConcurrentes(t *testing.T) {
	query, adjust, _ := newQueryFixture(
		&entity.Product{ID: testProductID, SKU: "CAM-001", Name: "Camiseta", Stock: 0, MinStockLevel: 5},
	)
	_, err := adjust.Apply(context.Background(), inventory.AdjustmentInput{
		ProductID: testProductID, Delta: +50, Type: entity.MovementTypeRestock,
	})
	require.NoError(t, err)

	// Proyección y suma del libro salen de una misma instantánea: un ajuste
	// que confirma entre ambas lecturas no puede producir un falso negativo.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 20; i++ {
			_, err := adjust.Apply(context.Background(), inventory.AdjustmentInput{
				ProductID: testProductID, Delta: -1, Type: entity.MovementTypeSale,
			})
			assert.NoError(t, err)
		}
	}()

	for i := 0; i < 20; i++ {
		out, err := query.Reconcile(context.Background(), testProductID)
		require.NoError(t, err)
		assert.True(t, out.Consistent, "cached=%d ledger=%d", out.CachedStock, out.LedgerTotal)
	}
	<-done

	final, err := query.Reconcile(context.Background(), testProductID)
	require.NoError(t, err)
	assert.Equal(t, 30, final.CachedStock)
	assert.True(t, final.Consistent)
}

func TestReconcile_ProductoInexistente(t *testing.T) {
	query, _, _ := newQueryFixture()

	_, err := query.Reconcile(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

package inventory_test

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/tu-usuario/storefront-admin/internal/domain"
	"github.com/tu-usuario/storefront-admin/internal/domain/entity"
	domaininv "github.com/tu-usuario/storefront-admin/internal/domain/inventory"
	"github.com/tu-usuario/storefront-admin/internal/domain/repository"
)

// fakeState almacén en memoria compartido por los fakes de repositorio.
// mu protege los datos; txMu emula la serialización por fila de la
// transacción real (lo toma el fakeTxRunner durante toda la transacción y
// Reconcile para leer una instantánea sin transacciones en vuelo).
type fakeState struct {
	mu       sync.Mutex
	txMu     sync.Mutex
	products map[string]*entity.Product
	movs     []*entity.StockMovement
}

func newFakeState(products ...*entity.Product) *fakeState {
	st := &fakeState{products: make(map[string]*entity.Product)}
	for _, p := range products {
		st.products[p.ID] = p
	}
	return st
}

// ── ProductRepository ─────────────────────────────────────────────────────────

type fakeProductRepo struct{ st *fakeState }

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	r.st.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	p, ok := r.st.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	for _, p := range r.st.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	current, ok := r.st.products[p.ID]
	if !ok {
		return domain.ErrProductNotFound
	}
	// La columna stock no se toca aquí, igual que el adaptador real.
	stock := current.Stock
	cp := *p
	cp.Stock = stock
	r.st.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) List(_ context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	var list []*entity.Product
	for _, p := range r.st.products {
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(p.Name), needle) &&
				!strings.Contains(strings.ToLower(p.SKU), needle) {
				continue
			}
		}
		if filter.Status != "" && domaininv.Classify(p.Stock, p.MinStockLevel) != filter.Status {
			continue
		}
		cp := *p
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return paginate(list, filter.Limit, filter.Offset), nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if _, ok := r.st.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.st.products, id)
	return nil
}

func (r *fakeProductRepo) CountByStatus(_ context.Context) (repository.StatusCounts, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	var c repository.StatusCounts
	for _, p := range r.st.products {
		c.Total++
		switch domaininv.Classify(p.Stock, p.MinStockLevel) {
		case domaininv.StatusInStock:
			c.InStock++
		case domaininv.StatusLowStock:
			c.LowStock++
		case domaininv.StatusOutOfStock:
			c.OutOfStock++
		}
	}
	return c, nil
}

// ── StockMovementRepository ───────────────────────────────────────────────────

type fakeMovementRepo struct{ st *fakeState }

func (r *fakeMovementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if m.IdempotencyKey != nil && *m.IdempotencyKey != "" {
		for _, existing := range r.st.movs {
			if existing.IdempotencyKey != nil && *existing.IdempotencyKey == *m.IdempotencyKey {
				return domain.ErrDuplicate
			}
		}
	}
	cp := *m
	r.st.movs = append(r.st.movs, &cp)
	return nil
}

func (r *fakeMovementRepo) GetByIdempotencyKey(_ context.Context, key string) (*entity.StockMovement, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	for _, m := range r.st.movs {
		if m.IdempotencyKey != nil && *m.IdempotencyKey == key {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeMovementRepo) ListByProduct(_ context.Context, productID string, limit, offset int) ([]*entity.StockMovement, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	var list []*entity.StockMovement
	// Recorrido inverso: los fakes insertan en orden cronológico.
	for i := len(r.st.movs) - 1; i >= 0; i-- {
		if r.st.movs[i].ProductID == productID {
			cp := *r.st.movs[i]
			list = append(list, &cp)
		}
	}
	return paginate(list, limit, offset), nil
}

func (r *fakeMovementRepo) ListAll(_ context.Context, limit, offset int) ([]*entity.StockMovement, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	var list []*entity.StockMovement
	for i := len(r.st.movs) - 1; i >= 0; i-- {
		cp := *r.st.movs[i]
		list = append(list, &cp)
	}
	return paginate(list, limit, offset), nil
}

func (r *fakeMovementRepo) SumByProduct(_ context.Context, productID string) (int, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	total := 0
	for _, m := range r.st.movs {
		if m.ProductID == productID {
			total += m.ChangeAmount
		}
	}
	return total, nil
}

// ── StockRepository ───────────────────────────────────────────────────────────

type fakeStockRepo struct{ st *fakeState }

func (r *fakeStockRepo) GetStock(_ context.Context, productID string) (int, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	p, ok := r.st.products[productID]
	if !ok {
		return 0, domain.ErrProductNotFound
	}
	return p.Stock, nil
}

func (r *fakeStockRepo) GetStockForUpdate(ctx context.Context, productID string) (int, error) {
	return r.GetStock(ctx, productID)
}

func (r *fakeStockRepo) SetStock(_ context.Context, productID string, value int) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	p, ok := r.st.products[productID]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.Stock = value
	return nil
}

// Reconcile lee proyección y suma en una instantánea: espera a que no haya
// transacciones en vuelo, igual que la sentencia única del adaptador real.
func (r *fakeStockRepo) Reconcile(_ context.Context, productID string) (int, int, error) {
	r.st.txMu.Lock()
	defer r.st.txMu.Unlock()
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	p, ok := r.st.products[productID]
	if !ok {
		return 0, 0, domain.ErrProductNotFound
	}
	total := 0
	for _, m := range r.st.movs {
		if m.ProductID == productID {
			total += m.ChangeAmount
		}
	}
	return p.Stock, total, nil
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

// fakeTxRunner serializa las transacciones completas con un mutex, el mismo
// efecto que el bloqueo de fila del adaptador real para un solo producto.
type fakeTxRunner struct {
	st *fakeState
}

func (tr *fakeTxRunner) Run(ctx context.Context, fn func(repository.StockMovementRepository, repository.StockRepository) error) error {
	tr.st.txMu.Lock()
	defer tr.st.txMu.Unlock()
	return fn(&fakeMovementRepo{st: tr.st}, &fakeStockRepo{st: tr.st})
}

func paginate[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}

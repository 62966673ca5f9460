package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/storefront-admin/internal/application/dto"
	"github.com/tu-usuario/storefront-admin/internal/application/usecase"
	"github.com/tu-usuario/storefront-admin/internal/domain"
	"github.com/tu-usuario/storefront-admin/internal/domain/entity"
	"github.com/tu-usuario/storefront-admin/internal/domain/repository"
)

// memProductRepo repositorio en memoria, sin concurrencia (tests secuenciales).
// failGetBySKU fuerza un error de lectura para probar su propagación.
type memProductRepo struct {
	products     map[string]*entity.Product
	failGetBySKU error
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[string]*entity.Product)}
}

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	if r.failGetBySKU != nil {
		return nil, r.failGetBySKU
	}
	for _, p := range r.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) Update(_ context.Context, p *entity.Product) error {
	current, ok := r.products[p.ID]
	if !ok {
		return domain.ErrProductNotFound
	}
	stock := current.Stock
	cp := *p
	cp.Stock = stock
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) List(_ context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.products {
		cp := *p
		list = append(list, &cp)
	}
	return list, nil
}

func (r *memProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *memProductRepo) CountByStatus(context.Context) (repository.StatusCounts, error) {
	return repository.StatusCounts{Total: len(r.products)}, nil
}

func TestProductCreate_StockInicialCeroYAgotado(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{
		SKU:           "CAM-001",
		Name:          "Camiseta básica",
		Price:         decimal.NewFromInt(35000),
		MinStockLevel: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, out.Stock, "el stock inicial siempre es 0; entra vía movimientos")
	assert.Equal(t, "out_of_stock", out.Status)
	assert.True(t, out.Active)
}

func TestProductCreate_Validaciones(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: "sin sku"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), dto.CreateProductRequest{
		SKU: "X-1", Name: "Min negativo", MinStockLevel: -1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), dto.CreateProductRequest{
		SKU: "X-2", Name: "Precio negativo", Price: decimal.NewFromInt(-10),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_SKUDuplicado(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{SKU: "CAM-001", Name: "Camiseta"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreateProductRequest{SKU: "CAM-001", Name: "Otra camiseta"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_ErrorDeLecturaSePropaga(t *testing.T) {
	repo := newMemProductRepo()
	repo.failGetBySKU = errors.New("conexión perdida")
	uc := usecase.NewProductUseCase(repo)

	// Un fallo al verificar el SKU no debe tratarse como "no existe":
	// el error llega al caller y no se crea nada.
	_, err := uc.Create(context.Background(), dto.CreateProductRequest{SKU: "CAM-001", Name: "Camiseta"})
	require.ErrorContains(t, err, "conexión perdida")
	assert.Empty(t, repo.products)
}

func TestProductUpdate_NoTocaElStock(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(context.Background(), dto.CreateProductRequest{SKU: "CAM-001", Name: "Camiseta"})
	require.NoError(t, err)

	// Stock cambiado por fuera del CRUD (lo haría el servicio de ajustes).
	repo.products[created.ID].Stock = 8

	name := "Camiseta premium"
	out, err := uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Camiseta premium", out.Name)
	assert.Equal(t, 8, repo.products[created.ID].Stock, "update de catálogo no pisa el stock")
}

func TestProductUpdate_Inexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	name := "x"
	_, err := uc.Update(context.Background(), "no-existe", dto.UpdateProductRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

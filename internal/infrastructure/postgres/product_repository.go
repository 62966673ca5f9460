package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/storefront-admin/internal/domain"
	"github.com/tu-usuario/storefront-admin/internal/domain/entity"
	domaininv "github.com/tu-usuario/storefront-admin/internal/domain/inventory"
	"github.com/tu-usuario/storefront-admin/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
// Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, sku, name, description, category_id, price, stock, min_stock_level, image_url, active, created_at, updated_at`

// Create persiste un nuevo producto. Stock inicia en 0.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.SKU, product.Name, product.Description,
		nullIfEmpty(product.CategoryID), product.Price, product.Stock, product.MinStockLevel,
		product.ImageURL, product.Active, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetBySKU obtiene un producto por SKU.
func (r *ProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1`
	return r.getOne(ctx, query, sku)
}

func (r *ProductRepo) getOne(ctx context.Context, query string, arg any) (*entity.Product, error) {
	var p entity.Product
	var categoryID *string
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&p.ID, &p.SKU, &p.Name, &p.Description, &categoryID, &p.Price,
		&p.Stock, &p.MinStockLevel, &p.ImageURL, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	if categoryID != nil {
		p.CategoryID = *categoryID
	}
	return &p, nil
}

// Update actualiza los campos editables del producto. La columna stock no se
// toca aquí: la gobierna el servicio de ajustes.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, category_id = $4, price = $5,
		    min_stock_level = $6, image_url = $7, active = $8, updated_at = $9
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Description, nullIfEmpty(product.CategoryID),
		product.Price, product.MinStockLevel, product.ImageURL, product.Active, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// List lista productos aplicando búsqueda por subcadena y filtro de estado.
func (r *ProductRepo) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	var conds []string
	var args []any
	pos := 1

	if filter.Search != "" {
		conds = append(conds, fmt.Sprintf("(name ILIKE $%d OR sku ILIKE $%d)", pos, pos))
		args = append(args, "%"+escapeLike(filter.Search)+"%")
		pos++
	}
	switch filter.Status {
	case domaininv.StatusOutOfStock:
		conds = append(conds, "stock <= 0")
	case domaininv.StatusLowStock:
		conds = append(conds, "stock > 0 AND stock <= min_stock_level")
	case domaininv.StatusInStock:
		conds = append(conds, "stock > min_stock_level")
	}
	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += fmt.Sprintf(" ORDER BY name ASC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		var categoryID *string
		if err := rows.Scan(
			&p.ID, &p.SKU, &p.Name, &p.Description, &categoryID, &p.Price,
			&p.Stock, &p.MinStockLevel, &p.ImageURL, &p.Active, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		if categoryID != nil {
			p.CategoryID = *categoryID
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// CountByStatus cuenta productos por etiqueta de stock en una sola consulta.
func (r *ProductRepo) CountByStatus(ctx context.Context) (repository.StatusCounts, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE stock > min_stock_level),
		       COUNT(*) FILTER (WHERE stock > 0 AND stock <= min_stock_level),
		       COUNT(*) FILTER (WHERE stock <= 0)
		FROM products`
	var c repository.StatusCounts
	if err := r.q.QueryRow(ctx, query).Scan(&c.Total, &c.InStock, &c.LowStock, &c.OutOfStock); err != nil {
		return repository.StatusCounts{}, fmt.Errorf("count products by status: %w", err)
	}
	return c, nil
}

// nullIfEmpty convierte "" en NULL para columnas con FK opcional.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Prediccion-api/internal/domain"
	"github.com/jhoicas/Prediccion-api/internal/domain/entity"
	"github.com/jhoicas/Prediccion-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación read-only del puerto ProductRepository sobre
// PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de catálogo. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// GetByID obtiene el snapshot de un producto activo, o nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	const query = `
		SELECT id, sku, name, price, current_stock, active, created_at, updated_at
		FROM products
		WHERE id = $1 AND active = TRUE`

	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.SKU, &p.Name, &p.Price, &p.CurrentStock, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: consultar producto: %w", domain.ErrDataSource, err)
	}
	return &p, nil
}

// ListActive lista todos los productos activos ordenados por nombre, el orden
// que preserva el reporte masivo de pronósticos.
func (r *ProductRepo) ListActive(ctx context.Context) ([]*entity.Product, error) {
	const query = `
		SELECT id, sku, name, price, current_stock, active, created_at, updated_at
		FROM products
		WHERE active = TRUE
		ORDER BY name ASC`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: listar productos activos: %w", domain.ErrDataSource, err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.SKU, &p.Name, &p.Price, &p.CurrentStock, &p.Active, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scan producto: %w", domain.ErrDataSource, err)
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterar productos: %w", domain.ErrDataSource, err)
	}
	return list, nil
}

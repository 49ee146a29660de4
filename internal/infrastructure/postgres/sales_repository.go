package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Prediccion-api/internal/domain"
	"github.com/jhoicas/Prediccion-api/internal/domain/repository"
)

var _ repository.SalesRepository = (*SalesRepo)(nil)

// SalesRepo consultas de solo lectura sobre el historial de ventas.
type SalesRepo struct {
	q Querier
}

// NewSalesRepository construye el adaptador de historial de ventas.
func NewSalesRepository(q Querier) *SalesRepo {
	return &SalesRepo{q: q}
}

// AggregateSince suma las unidades vendidas del producto desde la fecha dada,
// ignorando ventas anuladas. COALESCE garantiza cero (no NULL) cuando no hay
// ventas en la ventana.
func (r *SalesRepo) AggregateSince(ctx context.Context, productID string, since time.Time) (repository.SalesAggregate, error) {
	const query = `
		SELECT COALESCE(SUM(quantity), 0) AS total_quantity,
		       COUNT(*)                   AS sale_count
		FROM sales
		WHERE product_id = $1
		  AND sold_at >= $2
		  AND active = TRUE`

	var agg repository.SalesAggregate
	err := r.q.QueryRow(ctx, query, productID, since).Scan(&agg.TotalQuantity, &agg.SaleCount)
	if err != nil {
		return repository.SalesAggregate{}, fmt.Errorf("%w: agregar ventas: %w", domain.ErrDataSource, err)
	}
	return agg, nil
}

package forecast

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Prediccion-api/internal/domain/repository"
)

// SalesWindowDays ventana móvil fija sobre la que se calcula la velocidad de
// venta estadística.
const SalesWindowDays = 30

// Velocity velocidad de venta estimada estadísticamente para un producto.
type Velocity struct {
	AvgDaily float64 // unidades por día; 0 si no hubo ventas en la ventana
	Total    float64 // unidades vendidas dentro de la ventana
}

// StatisticalEstimator calcula la velocidad de venta diaria promedio desde el
// historial de ventas. Es el estimador de respaldo del motor: nunca falla
// salvo por un error de acceso a datos del colaborador, que se propaga.
type StatisticalEstimator struct {
	salesRepo repository.SalesRepository
}

// NewStatisticalEstimator construye el estimador estadístico.
func NewStatisticalEstimator(salesRepo repository.SalesRepository) *StatisticalEstimator {
	return &StatisticalEstimator{salesRepo: salesRepo}
}

// EstimateVelocity devuelve el promedio diario de unidades vendidas del
// producto en los últimos SalesWindowDays días: SUM(cantidad) / ventana.
// Sin ventas en la ventana el resultado es cero, no un error.
func (e *StatisticalEstimator) EstimateVelocity(ctx context.Context, productID string) (Velocity, error) {
	since := time.Now().AddDate(0, 0, -SalesWindowDays)
	agg, err := e.salesRepo.AggregateSince(ctx, productID, since)
	if err != nil {
		return Velocity{}, fmt.Errorf("agregar ventas del producto %s: %w", productID, err)
	}

	total, _ := agg.TotalQuantity.Float64()
	if total < 0 {
		total = 0
	}
	return Velocity{
		AvgDaily: total / float64(SalesWindowDays),
		Total:    total,
	}, nil
}

package forecast

import (
	"math"

	"github.com/jhoicas/Prediccion-api/internal/domain"
)

// Projection resultado de proyectar stock actual contra demanda estimada.
type Projection struct {
	DaysUntilStockout   int // NoDepletionHorizon si la velocidad de venta es cero
	RecommendedOrderQty int // siempre >= 0
}

// Project calcula el horizonte de quiebre de stock y la cantidad de pedido
// recomendada (servicio de dominio, puro y determinista).
//
//	DaysUntilStockout   = floor(currentStock / avgDailySales), o NoDepletionHorizon si avg == 0
//	RecommendedOrderQty = max(0, ceil(predictedDemand * SafetyBufferFactor - currentStock))
func Project(currentStock int, avgDailySales, predictedDemand float64) (Projection, error) {
	if currentStock < 0 || avgDailySales < 0 || predictedDemand < 0 {
		return Projection{}, domain.ErrInvalidInput
	}

	days := NoDepletionHorizon
	if avgDailySales > 0 {
		days = int(math.Floor(float64(currentStock) / avgDailySales))
	}

	recommended := int(math.Ceil(predictedDemand*SafetyBufferFactor - float64(currentStock)))
	if recommended < 0 {
		recommended = 0
	}

	return Projection{
		DaysUntilStockout:   days,
		RecommendedOrderQty: recommended,
	}, nil
}

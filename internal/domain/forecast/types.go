package forecast

// Priority es el nivel de urgencia de reabastecimiento derivado del horizonte
// de quiebre de stock.
type Priority string

const (
	PriorityCritical Priority = "CRITICAL"
	PriorityHigh     Priority = "HIGH"
	PriorityMedium   Priority = "MEDIUM"
	PriorityLow      Priority = "LOW"
)

// Source indica qué estimador produjo los números de un pronóstico.
type Source string

const (
	// SourceTrainedModel el pronóstico proviene del modelo predictivo entrenado.
	SourceTrainedModel Source = "trained-model"
	// SourceStatisticalFallback el pronóstico proviene del promedio estadístico
	// de ventas (sin modelo entrenado, o el modelo falló).
	SourceStatisticalFallback Source = "statistical-fallback"
)

// NoDepletionHorizon es el valor centinela de DaysUntilStockout cuando la
// velocidad de venta es cero: el stock no se agota en ningún horizonte.
const NoDepletionHorizon = 999

// SafetyBufferFactor margen de seguridad sobre la demanda proyectada al
// calcular la cantidad de pedido recomendada (20% sobre la demanda cruda).
// Constante única para facilitar ajustes futuros; no es configurable por producto.
const SafetyBufferFactor = 1.2

// ModelOutput payload decodificado de la salida del proceso predictor externo.
// Ambos campos ya vienen validados como no negativos.
type ModelOutput struct {
	AverageDailyQuantity   float64
	TotalPredictedQuantity float64
}

package dto

import "github.com/jhoicas/Prediccion-api/internal/domain/forecast"

// ForecastResultDTO pronóstico de demanda y recomendación de pedido de un
// producto. Se construye completo al final del pipeline y no se muta después;
// es la unidad que consume la capa de presentación (tabla o JSON).
type ForecastResultDTO struct {
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	CurrentStock int    `json:"current_stock"`

	AvgDailySales       float64 `json:"avg_daily_sales"` // redondeado a 2 decimales
	PredictedDemand     int     `json:"predicted_demand"`
	DaysUntilStockout   int     `json:"days_until_stockout"` // 999 = sin agotamiento proyectado
	RecommendedOrderQty int     `json:"recommended_order_qty"`

	Priority forecast.Priority `json:"priority"`
	Advisory string            `json:"advisory"`
	Source   forecast.Source   `json:"source"`
}

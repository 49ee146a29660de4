package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesAggregate resultado crudo de la consulta de ventas de un producto
// dentro de una ventana móvil. Lo produce la DB; el estimador lo convierte
// en velocidad de venta diaria.
type SalesAggregate struct {
	TotalQuantity decimal.Decimal // SUM(quantity) dentro de la ventana; cero si no hay ventas
	SaleCount     int             // número de líneas de venta en la ventana
}

// SalesRepository define el puerto de lectura del historial de ventas.
type SalesRepository interface {
	// AggregateSince suma las cantidades vendidas del producto desde la fecha
	// dada (inclusive) hasta ahora, ignorando ventas anuladas. Sin ventas en
	// la ventana devuelve un agregado en cero, no un error.
	AggregateSince(ctx context.Context, productID string, since time.Time) (SalesAggregate, error)
}

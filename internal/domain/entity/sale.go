package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale es una línea de venta registrada. El motor de pronóstico consume solo
// agregados de Quantity sobre una ventana móvil; la gestión de ventas (CRUD)
// vive fuera de este núcleo.
type Sale struct {
	ID        string
	ProductID string
	Quantity  decimal.Decimal // unidades vendidas (NUMERIC en BD)
	UnitPrice decimal.Decimal
	SoldAt    time.Time
	Active    bool
}

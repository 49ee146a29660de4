package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. El motor de pronóstico solo lee
// un snapshot (ID, Name, CurrentStock); el resto de campos pertenecen al CRUD
// de inventario. CurrentStock nunca es negativo.
type Product struct {
	ID           string
	SKU          string // código único por empresa
	Name         string
	Price        decimal.Decimal // precio de venta
	CurrentStock int
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

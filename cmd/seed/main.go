// seed puebla la base con productos de demostración y ~90 días de historial
// de ventas con tendencia estacional, para probar el motor de pronóstico con
// datos realistas.
//
// Uso: go run ./cmd/seed
// ¡Borra products y sales antes de insertar!
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Prediccion-api/internal/domain/entity"
	"github.com/jhoicas/Prediccion-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Prediccion-api/pkg/config"
	"github.com/jhoicas/Prediccion-api/pkg/logger"
)

type seedProduct struct {
	name  string
	price float64
	stock int
}

var products = []seedProduct{
	{"Cable HDMI 1.5m", 15.00, 100},
	{"Tinta HP 664", 45.00, 50},
	{"Audífono Gamer Halion X15", 120.00, 30},
	{"Mouse Inalámbrico Logitech M170", 65.00, 40},
	{"Teclado Logitech MK120", 85.00, 35},
	{"Parlante Micronics S502", 95.00, 25},
	{"Ventilador ICEBERG 6", 140.00, 20},
	{"Audífono Cat EAR AKZ 023", 90.00, 15},
	{"Mouse Gamer Cybertel M300", 70.00, 25},
	{"Parlante Enkore Fortis", 110.00, 20},
	{"Teclado Enkore Office Wired", 75.00, 30},
}

// dailyUnits unidades vendidas en un día, con temporada alta en marzo-abril y
// baja en julio-agosto (mismo patrón que los datos históricos reales).
func dailyUnits(day time.Time) int {
	base := 5 + rand.Float64()*10
	switch day.Month() {
	case time.March, time.April:
		base *= 3
	case time.July, time.August:
		base *= 0.6
	}
	return int(base + 0.5)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"}).Component("seed")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, `DELETE FROM sales`); err != nil {
		log.Fatal().Err(err).Msg("limpiar ventas")
	}
	if _, err := pool.Exec(ctx, `DELETE FROM products`); err != nil {
		log.Fatal().Err(err).Msg("limpiar productos")
	}
	log.Info().Msg("tablas limpiadas")

	now := time.Now()
	totalSales := 0
	for i, sp := range products {
		p := entity.Product{
			ID:           uuid.NewString(),
			SKU:          fmt.Sprintf("SKU-%03d", i+1),
			Name:         sp.name,
			Price:        decimal.NewFromFloat(sp.price),
			CurrentStock: sp.stock,
			Active:       true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		_, err := pool.Exec(ctx, `
			INSERT INTO products (id, sku, name, price, current_stock, active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			p.ID, p.SKU, p.Name, p.Price, p.CurrentStock, p.Active, p.CreatedAt, p.UpdatedAt,
		)
		if err != nil {
			log.Fatal().Err(err).Str("sku", p.SKU).Msg("insertar producto")
		}

		// 90 días de ventas hacia atrás, una línea por día
		for d := 1; d <= 90; d++ {
			day := now.AddDate(0, 0, -d)
			qty := dailyUnits(day)
			if qty == 0 {
				continue
			}
			s := entity.Sale{
				ID:        uuid.NewString(),
				ProductID: p.ID,
				Quantity:  decimal.NewFromInt(int64(qty)),
				UnitPrice: p.Price,
				SoldAt:    day,
				Active:    true,
			}
			_, err := pool.Exec(ctx, `
				INSERT INTO sales (id, product_id, quantity, unit_price, sold_at, active)
				VALUES ($1, $2, $3, $4, $5, $6)`,
				s.ID, s.ProductID, s.Quantity, s.UnitPrice, s.SoldAt, s.Active,
			)
			if err != nil {
				log.Fatal().Err(err).Str("sku", p.SKU).Msg("insertar venta")
			}
			totalSales++
		}
		log.Info().Str("sku", p.SKU).Str("name", p.Name).Msg("producto sembrado")
	}

	log.Info().
		Int("products", len(products)).
		Int("sales", totalSales).
		Msg("seed completado")
}

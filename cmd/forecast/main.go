// forecast calcula el pronóstico de demanda y la recomendación de pedido.
//
// Uso:
//
//	go run ./cmd/forecast                     # todos los productos activos
//	go run ./cmd/forecast -product <id>       # un producto
//	go run ./cmd/forecast -product <id> -days 60
//	go run ./cmd/forecast -json               # salida JSON en lugar de tabla
//
// Los resultados van a stdout; los logs estructurados a stderr.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/jhoicas/Prediccion-api/internal/application/dto"
	"github.com/jhoicas/Prediccion-api/internal/application/forecast"
	"github.com/jhoicas/Prediccion-api/internal/domain"
	"github.com/jhoicas/Prediccion-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Prediccion-api/internal/infrastructure/predictor"
	"github.com/jhoicas/Prediccion-api/pkg/config"
	"github.com/jhoicas/Prediccion-api/pkg/logger"
)

func main() {
	var (
		productID = flag.String("product", "", "ID del producto (vacío = todos los activos)")
		days      = flag.Int("days", 0, "horizonte en días (0 = valor configurado)")
		asJSON    = flag.Bool("json", false, "imprimir resultados como JSON")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando motor de pronóstico")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	salesRepo := postgres.NewSalesRepository(pool)

	estimator := forecast.NewStatisticalEstimator(salesRepo)
	artifacts := predictor.NewFileArtifactStore(cfg.Forecast.ModelsDir)
	pyPredictor := predictor.NewPythonPredictor(
		cfg.Forecast.PythonBin,
		cfg.Forecast.ScriptPath,
		cfg.Forecast.ModelTimeout(),
	)
	forecastUC := forecast.NewForecastUseCase(
		productRepo, estimator, artifacts, pyPredictor,
		log.Component("forecast"),
		cfg.Forecast.BulkConcurrency,
	)

	horizon := cfg.Forecast.HorizonDays
	if *days > 0 {
		horizon = *days
	}

	var results []dto.ForecastResultDTO
	if *productID != "" {
		res, err := forecastUC.ForecastOne(ctx, *productID, horizon)
		if err != nil {
			if errors.Is(err, domain.ErrProductNotFound) {
				fmt.Fprintf(os.Stderr, "producto %s no encontrado\n", *productID)
				os.Exit(1)
			}
			log.Fatal().Err(err).Str("product_id", *productID).Msg("pronóstico individual")
		}
		results = []dto.ForecastResultDTO{*res}
	} else {
		results, err = forecastUC.ForecastAll(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("pronóstico masivo")
		}
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			log.Fatal().Err(err).Msg("serializar resultados")
		}
		return
	}

	renderTable(results)
}

// renderTable imprime los pronósticos como tabla alineada en stdout.
func renderTable(results []dto.ForecastResultDTO) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PRODUCTO\tSTOCK\tVENTA/DÍA\tDEMANDA\tQUIEBRE (DÍAS)\tPEDIR\tPRIORIDAD\tFUENTE\tALERTA")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\t%.2f\t%d\t%d\t%d\t%s\t%s\t%s\n",
			r.ProductName,
			r.CurrentStock,
			r.AvgDailySales,
			r.PredictedDemand,
			r.DaysUntilStockout,
			r.RecommendedOrderQty,
			r.Priority,
			r.Source,
			r.Advisory,
		)
	}
	w.Flush()
}

package forecast

import (
	"context"
	"errors"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Prediccion-api/internal/application/dto"
	"github.com/jhoicas/Prediccion-api/internal/domain"
	"github.com/jhoicas/Prediccion-api/internal/domain/entity"
	"github.com/jhoicas/Prediccion-api/internal/domain/forecast"
	"github.com/jhoicas/Prediccion-api/internal/domain/repository"
	"github.com/jhoicas/Prediccion-api/pkg/logger"
)

const (
	// DefaultHorizonDays horizonte de pronóstico por defecto.
	DefaultHorizonDays = 30

	// DefaultBulkConcurrency límite de pronósticos simultáneos en el reporte
	// masivo. Cada pronóstico puede lanzar un proceso externo, así que el
	// fan-out debe estar acotado.
	DefaultBulkConcurrency = 4

	// bulkErrorAdvisory texto del placeholder cuando un producto del reporte
	// masivo no pudo calcularse.
	bulkErrorAdvisory = "error calculating forecast"
)

// ForecastUseCase orquesta el pronóstico de demanda por producto: decide entre
// el modelo entrenado y el estimador estadístico, proyecta el quiebre de stock
// y clasifica la prioridad de reabastecimiento.
//
// Regla central: un fallo del modelo entrenado (timeout, proceso, parseo)
// nunca llega al caller como error; degrada al camino estadístico y el
// resultado queda marcado con Source = statistical-fallback. El pronóstico
// siempre produce un número usable.
type ForecastUseCase struct {
	productRepo repository.ProductRepository
	estimator   *StatisticalEstimator
	artifacts   ArtifactLocator
	predictor   DemandPredictor
	log         *logger.Logger

	bulkConcurrency int
}

// NewForecastUseCase construye el caso de uso. bulkConcurrency <= 0 usa
// DefaultBulkConcurrency.
func NewForecastUseCase(
	productRepo repository.ProductRepository,
	estimator *StatisticalEstimator,
	artifacts ArtifactLocator,
	predictor DemandPredictor,
	log *logger.Logger,
	bulkConcurrency int,
) *ForecastUseCase {
	if bulkConcurrency <= 0 {
		bulkConcurrency = DefaultBulkConcurrency
	}
	return &ForecastUseCase{
		productRepo:     productRepo,
		estimator:       estimator,
		artifacts:       artifacts,
		predictor:       predictor,
		log:             log,
		bulkConcurrency: bulkConcurrency,
	}
}

// ForecastOne calcula el pronóstico de un producto para el horizonte dado
// (en días; <= 0 es inválido). Producto inexistente devuelve
// domain.ErrProductNotFound sin fallback; errores de acceso a datos se
// propagan tal cual.
func (uc *ForecastUseCase) ForecastOne(ctx context.Context, productID string, days int) (*dto.ForecastResultDTO, error) {
	if days <= 0 {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	return uc.forecastProduct(ctx, product, days)
}

// ForecastAll calcula el pronóstico de todos los productos activos en
// paralelo (acotado por bulkConcurrency). El fallo de un producto no aborta
// el lote: su entrada se reemplaza por un placeholder degradado con prioridad
// LOW. El orden del catálogo se preserva en la salida.
func (uc *ForecastUseCase) ForecastAll(ctx context.Context) ([]dto.ForecastResultDTO, error) {
	products, err := uc.productRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]dto.ForecastResultDTO, len(products))

	var g errgroup.Group
	g.SetLimit(uc.bulkConcurrency)
	for i, p := range products {
		i, p := i, p
		g.Go(func() error {
			res, err := uc.forecastProduct(ctx, p, DefaultHorizonDays)
			if err != nil {
				uc.log.Warn().
					Err(err).
					Str("product_id", p.ID).
					Msg("pronóstico individual falló dentro del lote; usando placeholder")
				results[i] = errorPlaceholder(p)
				return nil
			}
			results[i] = *res
			return nil
		})
	}
	_ = g.Wait() // las goroutines nunca devuelven error: el aislamiento por ítem es la regla

	return results, nil
}

// forecastProduct ejecuta la cadena LOOKUP → {MODEL | STATS} → PROJECT →
// CLASSIFY sobre un snapshot de producto ya resuelto.
func (uc *ForecastUseCase) forecastProduct(ctx context.Context, product *entity.Product, days int) (*dto.ForecastResultDTO, error) {
	var (
		avgDaily        float64
		predictedDemand float64
		source          = forecast.SourceStatisticalFallback
		degradedNote    string
	)

	exists, err := uc.artifacts.Exists(ctx, product.ID)
	if err != nil {
		// Falla de I/O del chequeo: tratar como "sin artefacto" y seguir por
		// el camino estadístico, igual que cualquier otro fallo del modelo.
		uc.log.Warn().Err(err).Str("product_id", product.ID).
			Msg("no se pudo verificar el artefacto del modelo")
		exists = false
	}

	if exists {
		out, err := uc.predictor.Predict(ctx, product.ID, days)
		if err != nil {
			uc.log.Warn().
				Err(err).
				Str("product_id", product.ID).
				Int("days", days).
				Msg("modelo entrenado falló; degradando a estimación estadística")
			degradedNote = degradationNote(err)
		} else {
			avgDaily = out.AverageDailyQuantity
			predictedDemand = out.TotalPredictedQuantity
			source = forecast.SourceTrainedModel
		}
	}

	if source != forecast.SourceTrainedModel {
		vel, err := uc.estimator.EstimateVelocity(ctx, product.ID)
		if err != nil {
			return nil, err
		}
		avgDaily = vel.AvgDaily
		predictedDemand = avgDaily * float64(days)
	}

	proj, err := forecast.Project(product.CurrentStock, avgDaily, predictedDemand)
	if err != nil {
		return nil, err
	}

	priority, advisory := forecast.Classify(proj.DaysUntilStockout)
	if degradedNote != "" {
		advisory += " (" + degradedNote + ")"
	}

	return &dto.ForecastResultDTO{
		ProductID:           product.ID,
		ProductName:         product.Name,
		CurrentStock:        product.CurrentStock,
		AvgDailySales:       math.Round(avgDaily*100) / 100,
		PredictedDemand:     int(math.Round(predictedDemand)),
		DaysUntilStockout:   proj.DaysUntilStockout,
		RecommendedOrderQty: proj.RecommendedOrderQty,
		Priority:            priority,
		Advisory:            advisory,
		Source:              source,
	}, nil
}

// degradationNote resume el fallo del modelo para anexarlo a la alerta del
// resultado degradado.
func degradationNote(err error) string {
	switch {
	case errors.Is(err, ErrModelTimeout):
		return "statistical fallback: model timed out"
	case errors.Is(err, ErrModelProcess):
		return "statistical fallback: model process failed"
	case errors.Is(err, ErrModelParse):
		return "statistical fallback: invalid model output"
	default:
		return "statistical fallback: model error"
	}
}

// errorPlaceholder resultado degradado para el reporte masivo cuando el
// pronóstico de un producto falló por completo. Nunca disfraza un cero como
// predicción confiable: la alerta lo dice explícitamente.
func errorPlaceholder(product *entity.Product) dto.ForecastResultDTO {
	return dto.ForecastResultDTO{
		ProductID:         product.ID,
		ProductName:       product.Name,
		CurrentStock:      product.CurrentStock,
		DaysUntilStockout: forecast.NoDepletionHorizon,
		Priority:          forecast.PriorityLow,
		Advisory:          bulkErrorAdvisory,
		Source:            forecast.SourceStatisticalFallback,
	}
}

package forecast_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appforecast "github.com/jhoicas/Prediccion-api/internal/application/forecast"
	"github.com/jhoicas/Prediccion-api/internal/domain/repository"
)

type recordingSalesRepo struct {
	total decimal.Decimal
	err   error
	since time.Time
}

func (r *recordingSalesRepo) AggregateSince(_ context.Context, _ string, since time.Time) (repository.SalesAggregate, error) {
	r.since = since
	if r.err != nil {
		return repository.SalesAggregate{}, r.err
	}
	return repository.SalesAggregate{TotalQuantity: r.total}, nil
}

func TestEstimateVelocity_PromedioSobreVentanaFija(t *testing.T) {
	// La velocidad siempre divide por la ventana completa de 30 días, aunque
	// las ventas se concentren en menos días.
	repo := &recordingSalesRepo{total: decimal.NewFromInt(45)}
	est := appforecast.NewStatisticalEstimator(repo)

	vel, err := est.EstimateVelocity(context.Background(), "p1")
	require.NoError(t, err)
	assert.InDelta(t, 1.5, vel.AvgDaily, 1e-9)
	assert.InDelta(t, 45, vel.Total, 1e-9)

	// La ventana consultada arranca ~30 días atrás.
	expected := time.Now().AddDate(0, 0, -appforecast.SalesWindowDays)
	assert.WithinDuration(t, expected, repo.since, time.Minute)
}

func TestEstimateVelocity_SinVentasEsCero(t *testing.T) {
	est := appforecast.NewStatisticalEstimator(&recordingSalesRepo{total: decimal.Zero})

	vel, err := est.EstimateVelocity(context.Background(), "p1")
	require.NoError(t, err)
	assert.Zero(t, vel.AvgDaily)
	assert.Zero(t, vel.Total)
}

func TestEstimateVelocity_ErrorDelRepositorioSePropaga(t *testing.T) {
	repoErr := errors.New("conexión perdida")
	est := appforecast.NewStatisticalEstimator(&recordingSalesRepo{err: repoErr})

	_, err := est.EstimateVelocity(context.Background(), "p1")
	assert.ErrorIs(t, err, repoErr)
}

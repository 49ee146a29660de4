package forecast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Prediccion-api/internal/domain"
	"github.com/jhoicas/Prediccion-api/internal/domain/forecast"
)

func TestProject_VelocidadCero(t *testing.T) {
	// Sin velocidad de venta el stock nunca se agota, sea cual sea el stock.
	for _, stock := range []int{0, 1, 100, 100000} {
		proj, err := forecast.Project(stock, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, forecast.NoDepletionHorizon, proj.DaysUntilStockout, "stock=%d", stock)
		assert.Equal(t, 0, proj.RecommendedOrderQty)
	}
}

func TestProject_EscenarioCritico(t *testing.T) {
	// stock=10, 60 unidades en 30 días (2/día), horizonte 30 → demanda 60:
	// quiebre en 5 días, pedido ceil(60*1.2-10)=62.
	proj, err := forecast.Project(10, 2, 60)
	require.NoError(t, err)
	assert.Equal(t, 5, proj.DaysUntilStockout)
	assert.Equal(t, 62, proj.RecommendedOrderQty)
}

func TestProject_StockCubreDemanda(t *testing.T) {
	// Stock muy por encima de la demanda proyectada: el pedido se recorta a 0,
	// nunca negativo.
	proj, err := forecast.Project(500, 1, 30)
	require.NoError(t, err)
	assert.Equal(t, 500, proj.DaysUntilStockout)
	assert.Equal(t, 0, proj.RecommendedOrderQty)
}

func TestProject_RedondeoHaciaAbajo(t *testing.T) {
	// floor(10/3) = 3 días, no 4.
	proj, err := forecast.Project(10, 3, 90)
	require.NoError(t, err)
	assert.Equal(t, 3, proj.DaysUntilStockout)
	// ceil(90*1.2 - 10) = ceil(98) = 98
	assert.Equal(t, 98, proj.RecommendedOrderQty)
}

func TestProject_PedidoSiempreNoNegativo(t *testing.T) {
	cases := []struct {
		stock  int
		avg    float64
		demand float64
	}{
		{0, 0, 0},
		{100, 0.5, 0},
		{1000, 10, 100},
		{3, 0.1, 3},
	}
	for _, c := range cases {
		proj, err := forecast.Project(c.stock, c.avg, c.demand)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, proj.RecommendedOrderQty, 0,
			"stock=%d avg=%v demand=%v", c.stock, c.avg, c.demand)
	}
}

func TestProject_EntradasNegativas(t *testing.T) {
	_, err := forecast.Project(-1, 2, 60)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = forecast.Project(10, -2, 60)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = forecast.Project(10, 2, -60)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

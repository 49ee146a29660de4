package forecast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Prediccion-api/internal/domain/forecast"
)

// TestClassify_Limites verifica la exactitud de los bordes: límite inferior
// inclusivo, superior exclusivo (6→CRITICAL, 7→HIGH, 14→HIGH, 15→MEDIUM,
// 29→MEDIUM, 30→LOW, centinela→LOW).
func TestClassify_Limites(t *testing.T) {
	cases := []struct {
		days     int
		expected forecast.Priority
	}{
		{0, forecast.PriorityCritical},
		{6, forecast.PriorityCritical},
		{7, forecast.PriorityHigh},
		{14, forecast.PriorityHigh},
		{15, forecast.PriorityMedium},
		{29, forecast.PriorityMedium},
		{30, forecast.PriorityLow},
		{365, forecast.PriorityLow},
		{forecast.NoDepletionHorizon, forecast.PriorityLow},
	}
	for _, c := range cases {
		priority, _ := forecast.Classify(c.days)
		assert.Equal(t, c.expected, priority, "days=%d", c.days)
	}
}

func TestClassify_TextosDeAlerta(t *testing.T) {
	_, advisory := forecast.Classify(3)
	assert.Equal(t, "urgent restock required", advisory)

	_, advisory = forecast.Classify(10)
	assert.Equal(t, "plan restock soon", advisory)

	_, advisory = forecast.Classify(20)
	assert.Equal(t, "monitor stock", advisory)

	_, advisory = forecast.Classify(forecast.NoDepletionHorizon)
	assert.Equal(t, "stock adequate", advisory)
}

package forecast

// Umbrales de clasificación en días hasta el quiebre de stock. Límite inferior
// inclusivo, superior exclusivo: exactamente 7 es HIGH, 15 es MEDIUM, 30 es LOW.
const (
	criticalBelowDays = 7
	highBelowDays     = 15
	mediumBelowDays   = 30
)

// Classify mapea el horizonte de quiebre de stock a una prioridad discreta y
// su texto de alerta. daysUntilStockout debe ser >= 0 (incluye el centinela
// NoDepletionHorizon, que clasifica como LOW).
func Classify(daysUntilStockout int) (Priority, string) {
	switch {
	case daysUntilStockout < criticalBelowDays:
		return PriorityCritical, "urgent restock required"
	case daysUntilStockout < highBelowDays:
		return PriorityHigh, "plan restock soon"
	case daysUntilStockout < mediumBelowDays:
		return PriorityMedium, "monitor stock"
	default:
		return PriorityLow, "stock adequate"
	}
}

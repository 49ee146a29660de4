package forecast

import (
	"context"
	"errors"

	"github.com/jhoicas/Prediccion-api/internal/domain/forecast"
)

// Errores recuperables del predictor externo. El orquestador nunca los
// propaga al caller: disparan el fallback estadístico. Las implementaciones
// los envuelven con %w para conservar el detalle (stderr, campo inválido).
var (
	// ErrModelTimeout el proceso no terminó dentro del presupuesto de tiempo.
	ErrModelTimeout = errors.New("ejecución del modelo excedió el tiempo límite")
	// ErrModelProcess el proceso terminó con código de salida distinto de cero.
	ErrModelProcess = errors.New("proceso del modelo terminó con error")
	// ErrModelParse la salida del proceso no es JSON válido o tiene campos
	// faltantes o negativos.
	ErrModelParse = errors.New("salida del modelo inválida")
)

// ArtifactLocator determina si existe un artefacto de modelo entrenado para
// un producto. La ausencia es el caso normal false, no un error; solo fallas
// de I/O de la verificación misma devuelven error.
type ArtifactLocator interface {
	Exists(ctx context.Context, productID string) (bool, error)
}

// DemandPredictor invoca el modelo predictivo externo para un producto y un
// horizonte en días. Un solo intento determinista, sin reintentos; el error
// devuelto envuelve ErrModelTimeout, ErrModelProcess o ErrModelParse.
type DemandPredictor interface {
	Predict(ctx context.Context, productID string, days int) (forecast.ModelOutput, error)
}

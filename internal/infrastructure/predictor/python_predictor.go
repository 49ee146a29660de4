package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	appforecast "github.com/jhoicas/Prediccion-api/internal/application/forecast"
	"github.com/jhoicas/Prediccion-api/internal/domain/forecast"
)

// Verificar en tiempo de compilación que PythonPredictor implementa el puerto.
var _ appforecast.DemandPredictor = (*PythonPredictor)(nil)

// DefaultModelTimeout presupuesto de reloj de pared para una invocación del
// modelo. Al vencerse, el proceso se mata y la llamada falla con
// ErrModelTimeout.
const DefaultModelTimeout = 30 * time.Second

// PythonPredictor adaptador que implementa DemandPredictor lanzando el script
// de predicción como proceso externo:
//
//	<pythonBin> <scriptPath> <productID> <days>
//
// El contrato del script: escribir un único objeto JSON a stdout con
// averageDailyQuantity y totalPredictedQuantity (números >= 0), salir con 0
// en éxito y distinto de 0 en fallo; stderr es texto de diagnóstico.
// Una invocación es un solo intento; los reintentos son decisión del caller.
type PythonPredictor struct {
	pythonBin  string
	scriptPath string
	timeout    time.Duration
}

// NewPythonPredictor construye el adaptador. timeout <= 0 usa
// DefaultModelTimeout (el override existe para tests).
func NewPythonPredictor(pythonBin, scriptPath string, timeout time.Duration) *PythonPredictor {
	if timeout <= 0 {
		timeout = DefaultModelTimeout
	}
	return &PythonPredictor{
		pythonBin:  pythonBin,
		scriptPath: scriptPath,
		timeout:    timeout,
	}
}

// modelPayload estructura cruda de stdout. Punteros para distinguir campo
// ausente de cero.
type modelPayload struct {
	AverageDailyQuantity   *float64 `json:"averageDailyQuantity"`
	TotalPredictedQuantity *float64 `json:"totalPredictedQuantity"`
}

// Predict lanza el proceso, acumula stdout/stderr y resuelve al terminar.
// El timer arranca con el proceso y se cancela apenas este termina por
// cualquier vía; al vencerse el plazo el proceso hijo se mata (nunca queda
// huérfano). La cancelación del ctx del caller también mata el proceso.
func (p *PythonPredictor) Predict(ctx context.Context, productID string, days int) (forecast.ModelOutput, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, p.pythonBin, p.scriptPath, productID, strconv.Itoa(days))

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// Si el script deja procesos nietos con los pipes abiertos, Wait no debe
	// colgarse indefinidamente después de matar al hijo.
	cmd.WaitDelay = 5 * time.Second

	runErr := cmd.Run()

	switch ctx.Err() {
	case context.DeadlineExceeded:
		return forecast.ModelOutput{}, fmt.Errorf("%w (%s)", appforecast.ErrModelTimeout, p.timeout)
	case context.Canceled:
		// Cancelación del caller, no un timeout del modelo. El proceso ya fue
		// matado por CommandContext.
		return forecast.ModelOutput{}, fmt.Errorf("invocación del modelo cancelada: %w", context.Canceled)
	}
	if runErr != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = runErr.Error()
		}
		return forecast.ModelOutput{}, fmt.Errorf("%w: %s", appforecast.ErrModelProcess, detail)
	}

	return parseOutput(stdout.Bytes())
}

// parseOutput valida el payload: JSON bien formado, ambos campos presentes y
// no negativos. Un valor negativo es salida inválida, no se recorta a cero.
func parseOutput(raw []byte) (forecast.ModelOutput, error) {
	var payload modelPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return forecast.ModelOutput{}, fmt.Errorf("%w: %v", appforecast.ErrModelParse, err)
	}
	if payload.AverageDailyQuantity == nil || payload.TotalPredictedQuantity == nil {
		return forecast.ModelOutput{}, fmt.Errorf("%w: faltan campos requeridos", appforecast.ErrModelParse)
	}
	if *payload.AverageDailyQuantity < 0 || *payload.TotalPredictedQuantity < 0 {
		return forecast.ModelOutput{}, fmt.Errorf("%w: cantidades negativas", appforecast.ErrModelParse)
	}
	return forecast.ModelOutput{
		AverageDailyQuantity:   *payload.AverageDailyQuantity,
		TotalPredictedQuantity: *payload.TotalPredictedQuantity,
	}, nil
}

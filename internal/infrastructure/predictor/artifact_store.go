package predictor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	appforecast "github.com/jhoicas/Prediccion-api/internal/application/forecast"
)

var _ appforecast.ArtifactLocator = (*FileArtifactStore)(nil)

// FileArtifactStore localizador de artefactos sobre el filesystem: el
// entrenamiento persiste un modelo por producto como model_<id>.pkl dentro
// de un directorio configurado.
type FileArtifactStore struct {
	dir string
}

// NewFileArtifactStore construye el localizador para el directorio dado.
func NewFileArtifactStore(dir string) *FileArtifactStore {
	return &FileArtifactStore{dir: dir}
}

// ArtifactPath ruta esperada del artefacto de un producto.
func (s *FileArtifactStore) ArtifactPath(productID string) string {
	return filepath.Join(s.dir, fmt.Sprintf("model_%s.pkl", productID))
}

// Exists verifica la existencia del artefacto. La ausencia es el caso normal
// false; solo fallas de I/O del stat devuelven error.
func (s *FileArtifactStore) Exists(ctx context.Context, productID string) (bool, error) {
	_ = ctx // el stat local no es cancelable

	_, err := os.Stat(s.ArtifactPath(productID))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("verificar artefacto del producto %s: %w", productID, err)
}

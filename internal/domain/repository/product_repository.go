package repository

import (
	"context"

	"github.com/jhoicas/Prediccion-api/internal/domain/entity"
)

// ProductRepository define el puerto de lectura del catálogo para el motor
// de pronóstico (DIP). Las implementaciones son read-only.
type ProductRepository interface {
	// GetByID devuelve el snapshot del producto activo, o nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Product, error)

	// ListActive devuelve todos los productos activos ordenados por nombre,
	// el mismo orden en que el reporte masivo debe entregar resultados.
	ListActive(ctx context.Context) ([]*entity.Product, error)
}

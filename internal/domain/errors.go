package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrProductNotFound = errors.New("producto no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrDataSource      = errors.New("error de acceso a datos")
)

package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnknownVariant    = errors.New("variante de tapa inexistente")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

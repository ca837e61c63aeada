package repository

import (
	"time"

	"github.com/jhoicas/Tampas-api/internal/domain/entity"
)

// MovementFilter criterios opcionales para listar movimientos del ledger.
type MovementFilter struct {
	DateFrom  *time.Time
	DateTo    *time.Time
	Type      string
	Direction string
}

// MovementRepository define el puerto de persistencia del ledger de movimientos
// (append-only: no hay update ni delete).
type MovementRepository interface {
	Create(movement *entity.Movement) error
	// List devuelve los movimientos que cumplen el filtro, ordenados por fecha
	// de creación descendente. Cada llamada re-ejecuta el filtro.
	List(filter MovementFilter) ([]entity.Movement, error)
}

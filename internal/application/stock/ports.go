package stock

import (
	"context"

	"github.com/jhoicas/Tampas-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que evaluar y persistir un
// movimiento sea una unidad atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		variantRepo repository.CapVariantRepository,
	) error) error
}

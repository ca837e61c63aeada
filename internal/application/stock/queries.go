package stock

import (
	"context"

	"github.com/jhoicas/Tampas-api/internal/domain/entity"
	"github.com/jhoicas/Tampas-api/internal/domain/repository"
	domstock "github.com/jhoicas/Tampas-api/internal/domain/stock"
)

// QueryUseCase consultas de solo lectura sobre variantes y ledger.
type QueryUseCase struct {
	variantRepo repository.CapVariantRepository
	movRepo     repository.MovementRepository
}

// NewQueryUseCase construye el caso de uso con repos atados al pool.
func NewQueryUseCase(variantRepo repository.CapVariantRepository, movRepo repository.MovementRepository) *QueryUseCase {
	return &QueryUseCase{variantRepo: variantRepo, movRepo: movRepo}
}

// VariantWithStatus variante con su clasificación de stock derivada.
type VariantWithStatus struct {
	entity.CapVariant
	Status domstock.Status
}

// ListVariants devuelve el stock actual con el estado de cada variante.
func (uc *QueryUseCase) ListVariants(ctx context.Context) ([]VariantWithStatus, error) {
	variants, err := uc.variantRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]VariantWithStatus, 0, len(variants))
	for _, v := range variants {
		out = append(out, VariantWithStatus{CapVariant: v, Status: domstock.Classify(v.Quantity)})
	}
	return out, nil
}

// MovementHistory movimientos filtrados (nuevos primero) con sus totales.
type MovementHistory struct {
	Movements []entity.Movement
	Totals    domstock.Totals
}

// ListMovements re-ejecuta el filtro sobre el ledger y recalcula los totales
// sobre la secuencia resultante.
func (uc *QueryUseCase) ListMovements(ctx context.Context, filter repository.MovementFilter) (*MovementHistory, error) {
	movements, err := uc.movRepo.List(filter)
	if err != nil {
		return nil, err
	}
	return &MovementHistory{
		Movements: movements,
		Totals:    domstock.ComputeTotals(movements),
	}, nil
}

package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tampas-api/internal/domain/entity"
	"github.com/jhoicas/Tampas-api/internal/domain/repository"
	domstock "github.com/jhoicas/Tampas-api/internal/domain/stock"
)

// SubmitMovementUseCase registra movimientos de estoque de forma transaccional:
// bloquea la fila de la variante (SELECT FOR UPDATE), evalúa contra la cantidad
// recién leída dentro de la transacción y hace Commit o Rollback. Así
// evaluar+persistir es una sola unidad serializable y dos envíos casi
// simultáneos sobre la misma variante no pueden pasar ambos el chequeo de
// no-negatividad con un snapshot obsoleto.
type SubmitMovementUseCase struct {
	txRunner TxRunner
}

// NewSubmitMovementUseCase construye el caso de uso.
func NewSubmitMovementUseCase(txRunner TxRunner) *SubmitMovementUseCase {
	return &SubmitMovementUseCase{txRunner: txRunner}
}

// MovementInputDTO entrada para registrar un movimiento de estoque.
type MovementInputDTO struct {
	Type        string
	Color       string
	WeightGrams decimal.Decimal
	Quantity    int64
	Direction   string // incoming | outgoing
}

// SubmitResultDTO resultado de un movimiento aceptado.
type SubmitResultDTO struct {
	MovementID        string
	ResultingQuantity int64
	Status            domstock.Status
	NewVariant        bool
}

// Submit valida el movimiento propuesto y, si es admisible, lo anexa al ledger
// y actualiza la vista de variantes, todo en una transacción. Los rechazos
// (ErrInvalidInput, ErrUnknownVariant, ErrInsufficientStock) no persisten nada.
// Cada envío es at-most-once: no hay reintentos, el fallo se reporta al caller.
func (uc *SubmitMovementUseCase) Submit(ctx context.Context, input MovementInputDTO) (*SubmitResultDTO, error) {
	proposed := entity.Movement{
		Type:        input.Type,
		Color:       input.Color,
		WeightGrams: input.WeightGrams,
		Quantity:    input.Quantity,
		Direction:   input.Direction,
	}
	if err := domstock.ValidateProposed(proposed); err != nil {
		return nil, err
	}

	now := time.Now()
	result := &SubmitResultDTO{MovementID: uuid.New().String()}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		variantRepo repository.CapVariantRepository,
	) error {
		// Bloquea la fila de la variante; el snapshot que ve Evaluate es el
		// estado comprometido más reciente, no una lectura anterior al envío.
		locked, err := variantRepo.GetForUpdate(input.Type, input.Color)
		if err != nil {
			return err
		}
		eval, err := evaluateLocked(proposed, locked)
		if err != nil {
			return err
		}

		if eval.NewVariant {
			// Para una variante nueva no hay fila que bloquear: la inserción
			// condicional serializa sobre la PK. Si otra primera entrada ganó
			// la carrera, re-leer bajo bloqueo y re-evaluar contra la cantidad
			// comprometida para que el snapshot siga la suma con signo del ledger.
			inserted, err := variantRepo.InsertIfAbsent(&entity.CapVariant{
				Type:        input.Type,
				Color:       input.Color,
				WeightGrams: eval.WeightGrams,
				Quantity:    eval.ResultingQuantity,
				UpdatedAt:   now,
			})
			if err != nil {
				return err
			}
			if !inserted {
				locked, err = variantRepo.GetForUpdate(input.Type, input.Color)
				if err != nil {
					return err
				}
				if locked == nil {
					return fmt.Errorf("cap variant %s/%s: fila ausente tras conflicto de inserción", input.Type, input.Color)
				}
				eval, err = evaluateLocked(proposed, locked)
				if err != nil {
					return err
				}
			}
		}
		if !eval.NewVariant {
			variant := &entity.CapVariant{
				Type:        input.Type,
				Color:       input.Color,
				WeightGrams: eval.WeightGrams,
				Quantity:    eval.ResultingQuantity,
				UpdatedAt:   now,
			}
			if err := variantRepo.Upsert(variant); err != nil {
				return err
			}
		}

		mov := &entity.Movement{
			ID:          result.MovementID,
			Type:        input.Type,
			Color:       input.Color,
			WeightGrams: eval.WeightGrams,
			Quantity:    input.Quantity,
			Direction:   input.Direction,
			CreatedAt:   now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}

		result.ResultingQuantity = eval.ResultingQuantity
		result.Status = domstock.Classify(eval.ResultingQuantity)
		result.NewVariant = eval.NewVariant
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// evaluateLocked evalúa el movimiento contra la fila bloqueada (o contra un
// snapshot vacío si la variante aún no existe).
func evaluateLocked(proposed entity.Movement, locked *entity.CapVariant) (domstock.Evaluation, error) {
	snap := domstock.Snapshot{}
	if locked != nil {
		snap = domstock.NewSnapshot([]entity.CapVariant{*locked})
	}
	return domstock.Evaluate(proposed, snap)
}

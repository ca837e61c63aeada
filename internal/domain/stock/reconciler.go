// Package stock implementa el núcleo de reconciliación de estoque: decide si
// un movimiento propuesto es admisible contra la vista actual de variantes,
// calcula la cantidad resultante y clasifica la salud del stock.
package stock

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tampas-api/internal/domain"
	"github.com/jhoicas/Tampas-api/internal/domain/catalog"
	"github.com/jhoicas/Tampas-api/internal/domain/entity"
)

// Snapshot vista materializada del stock actual, indexada por (modelo, color)
// para búsqueda O(1) con semántica de coincidencia exacta sensible a mayúsculas.
type Snapshot map[entity.VariantKey]entity.CapVariant

// NewSnapshot construye el snapshot a partir de la lista de variantes del
// repositorio. El reconciliador no mantiene caché propio: cada evaluación
// recibe un snapshot recién leído.
func NewSnapshot(variants []entity.CapVariant) Snapshot {
	s := make(Snapshot, len(variants))
	for _, v := range variants {
		s[v.Key()] = v
	}
	return s
}

// Evaluation resultado de evaluar un movimiento admisible.
type Evaluation struct {
	ResultingQuantity int64
	// WeightGrams es el peso que debe persistirse en la variante. En una
	// actualización se conserva el peso ya almacenado y se descarta el
	// propuesto (procedencia del peso desde la primera entrada); en una
	// variante nueva es el peso propuesto.
	WeightGrams decimal.Decimal
	NewVariant  bool
}

// ValidateProposed valida la forma del movimiento propuesto antes de evaluar:
// cantidad positiva, modelo del catálogo, color no vacío y dirección conocida.
func ValidateProposed(proposed entity.Movement) error {
	if proposed.Quantity <= 0 {
		return domain.ErrInvalidInput
	}
	if proposed.Type == "" || !catalog.IsCapModel(proposed.Type) {
		return domain.ErrInvalidInput
	}
	if proposed.Color == "" {
		return domain.ErrInvalidInput
	}
	if proposed.Direction != entity.DirectionIncoming && proposed.Direction != entity.DirectionOutgoing {
		return domain.ErrInvalidInput
	}
	return nil
}

// Evaluate decide si el movimiento propuesto es admisible contra el snapshot.
// No muta nada: sobre rechazo (ErrInsufficientStock, ErrUnknownVariant) el
// llamador no debe persistir. Asume un movimiento ya validado con
// ValidateProposed.
//
// Reglas:
//   - variante existente: la cantidad resultante es la actual más la cantidad
//     con signo; si quedaría negativa se rechaza con ErrInsufficientStock.
//   - variante inexistente + entrada: se acepta como variante nueva.
//   - variante inexistente + salida: ErrUnknownVariant (no se puede retirar
//     stock de un ítem que no existe).
func Evaluate(proposed entity.Movement, snap Snapshot) (Evaluation, error) {
	existing, found := snap[entity.VariantKey{Type: proposed.Type, Color: proposed.Color}]
	if !found {
		if proposed.Direction == entity.DirectionOutgoing {
			return Evaluation{}, domain.ErrUnknownVariant
		}
		return Evaluation{
			ResultingQuantity: proposed.Quantity,
			WeightGrams:       proposed.WeightGrams,
			NewVariant:        true,
		}, nil
	}

	newQuantity := existing.Quantity + proposed.SignedQuantity()
	if newQuantity < 0 {
		return Evaluation{}, domain.ErrInsufficientStock
	}
	return Evaluation{
		ResultingQuantity: newQuantity,
		WeightGrams:       existing.WeightGrams,
	}, nil
}

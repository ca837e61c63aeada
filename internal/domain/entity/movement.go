package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direcciones de movimiento de stock.
const (
	DirectionIncoming = "incoming" // entrada
	DirectionOutgoing = "outgoing" // salida
)

// Movement representa una entrada del ledger: un cambio de stock aceptado para
// una variante. Inmutable una vez creado; el servidor asigna ID y CreatedAt.
type Movement struct {
	ID          string
	Type        string
	Color       string
	WeightGrams decimal.Decimal
	Quantity    int64  // magnitud, siempre > 0
	Direction   string // incoming | outgoing
	CreatedAt   time.Time
}

// SignedQuantity devuelve la cantidad con signo: positiva para entrada,
// negativa para salida. La suma de cantidades con signo de un (modelo, color)
// reproduce el stock actual de la variante.
func (m Movement) SignedQuantity() int64 {
	if m.Direction == DirectionOutgoing {
		return -m.Quantity
	}
	return m.Quantity
}

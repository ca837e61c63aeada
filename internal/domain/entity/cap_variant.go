package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CapVariant representa el stock actual de una variante de tapa (modelo + color).
// Es una vista derivada del ledger de movimientos; la clave (Type, Color) es
// exacta y sensible a mayúsculas. Se crea implícitamente con la primera entrada
// y nunca se elimina.
type CapVariant struct {
	Type        string
	Color       string
	WeightGrams decimal.Decimal // informativo; se fija con la primera entrada
	Quantity    int64           // invariante: nunca negativo
	UpdatedAt   time.Time
}

// Key devuelve la clave (modelo, color) de la variante.
func (v CapVariant) Key() VariantKey {
	return VariantKey{Type: v.Type, Color: v.Color}
}

// VariantKey identifica una variante por el par exacto (modelo, color).
type VariantKey struct {
	Type  string
	Color string
}

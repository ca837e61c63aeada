package stock

import "github.com/jhoicas/Tampas-api/internal/domain/entity"

// Totals agregados sobre la secuencia de movimientos actualmente en vista
// (por ejemplo, filtrada por rango de fechas).
type Totals struct {
	Entries int64 // Σ quantity de entradas
	Exits   int64 // Σ quantity de salidas
	Net     int64 // Entries - Exits
}

// ComputeTotals reduce la secuencia de movimientos a sus totales. Función pura;
// debe recalcularse cada vez que cambia la secuencia en vista.
func ComputeTotals(movements []entity.Movement) Totals {
	var t Totals
	for _, m := range movements {
		if m.Direction == entity.DirectionIncoming {
			t.Entries += m.Quantity
		} else {
			t.Exits += m.Quantity
		}
		t.Net += m.SignedQuantity()
	}
	return t
}

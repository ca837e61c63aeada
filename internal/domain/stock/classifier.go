package stock

// Status clasifica la salud del stock de una variante.
type Status string

// Estados posibles. Las transiciones las determina únicamente la cantidad al
// cruzar los umbrales tras cada movimiento aceptado; ningún estado es terminal
// y todas las transiciones son reversibles.
const (
	StatusHealthy Status = "healthy" // quantity > 100
	StatusLow     Status = "low"     // 0 < quantity <= 100
	StatusEmpty   Status = "empty"   // quantity == 0
)

// HealthyThreshold umbral por encima del cual el stock se considera sano.
const HealthyThreshold = 100

// Classify devuelve el estado de stock para una cantidad dada.
// Función pura de la cantidad; es la única fuente de esta regla.
func Classify(quantity int64) Status {
	switch {
	case quantity > HealthyThreshold:
		return StatusHealthy
	case quantity > 0:
		return StatusLow
	default:
		return StatusEmpty
	}
}

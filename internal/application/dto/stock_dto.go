package dto

import "github.com/shopspring/decimal"

// SubmitMovementRequest body para POST /api/movements.
type SubmitMovementRequest struct {
	Type        string          `json:"type"`
	Color       string          `json:"color"`
	WeightGrams decimal.Decimal `json:"weight_grams"`
	Quantity    int64           `json:"quantity"`
	Direction   string          `json:"direction"` // incoming | outgoing
}

// SubmitMovementResponse respuesta de un movimiento aceptado.
type SubmitMovementResponse struct {
	Accepted          bool   `json:"accepted"`
	MovementID        string `json:"movement_id"`
	ResultingQuantity int64  `json:"resulting_quantity"`
	Status            string `json:"status"`
}

// VariantDTO elemento de GET /api/variants.
type VariantDTO struct {
	Type        string          `json:"type"`
	Color       string          `json:"color"`
	WeightGrams decimal.Decimal `json:"weight_grams"`
	Quantity    int64           `json:"quantity"`
	Status      string          `json:"status"` // healthy | low | empty
	UpdatedAt   string          `json:"updated_at"`
}

// MovementDTO elemento del historial de movimientos.
type MovementDTO struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Color       string          `json:"color"`
	WeightGrams decimal.Decimal `json:"weight_grams"`
	Quantity    int64           `json:"quantity"`
	Direction   string          `json:"direction"`
	CreatedAt   string          `json:"created_at"`
}

// TotalsDTO agregados de la secuencia de movimientos en vista.
type TotalsDTO struct {
	Entries int64 `json:"entries"`
	Exits   int64 `json:"exits"`
	Net     int64 `json:"net"`
}

// MovementsResponse respuesta de GET /api/movements.
type MovementsResponse struct {
	Movements []MovementDTO `json:"movements"`
	Totals    TotalsDTO     `json:"totals"`
}

// CatalogResponse respuesta de GET /api/catalog.
type CatalogResponse struct {
	CapModels    []string `json:"cap_models"`
	CommonColors []string `json:"common_colors"`
}

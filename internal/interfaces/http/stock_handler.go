package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tampas-api/internal/application/dto"
	appstock "github.com/jhoicas/Tampas-api/internal/application/stock"
	"github.com/jhoicas/Tampas-api/internal/domain"
	"github.com/jhoicas/Tampas-api/internal/domain/catalog"
	"github.com/jhoicas/Tampas-api/internal/domain/repository"
)

// StockHandler maneja las peticiones HTTP de estoque: catálogo, variantes,
// historial de movimientos y registro de movimientos.
type StockHandler struct {
	submit  *appstock.SubmitMovementUseCase
	queries *appstock.QueryUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(submit *appstock.SubmitMovementUseCase, queries *appstock.QueryUseCase) *StockHandler {
	return &StockHandler{submit: submit, queries: queries}
}

// GetCatalog godoc
// @Summary      Catálogo de modelos de tapa y colores comunes
// @Tags         stock
// @Produce      json
// @Success      200  {object}  dto.CatalogResponse
// @Router       /api/catalog [get]
func (h *StockHandler) GetCatalog(c *fiber.Ctx) error {
	return c.JSON(dto.CatalogResponse{
		CapModels:    catalog.CapModels,
		CommonColors: catalog.CommonColors,
	})
}

// ListVariants godoc
// @Summary      Stock actual por variante (modelo + color) con su estado
// @Tags         stock
// @Produce      json
// @Success      200  {array}   dto.VariantDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/variants [get]
func (h *StockHandler) ListVariants(c *fiber.Ctx) error {
	variants, err := h.queries.ListVariants(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.VariantDTO, 0, len(variants))
	for _, v := range variants {
		out = append(out, dto.VariantDTO{
			Type:        v.Type,
			Color:       v.Color,
			WeightGrams: v.WeightGrams,
			Quantity:    v.Quantity,
			Status:      string(v.Status),
			UpdatedAt:   v.UpdatedAt.Format(time.RFC3339),
		})
	}
	return c.JSON(out)
}

// ListMovements godoc
// @Summary      Historial de movimientos filtrado, nuevos primero, con totales
// @Tags         stock
// @Produce      json
// @Param        date_from  query  string  false  "Fecha inicial YYYY-MM-DD (inclusive)"
// @Param        date_to    query  string  false  "Fecha final YYYY-MM-DD (inclusive)"
// @Param        type       query  string  false  "Modelo de tapa exacto"
// @Param        direction  query  string  false  "incoming | outgoing"
// @Success      200  {object}  dto.MovementsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *StockHandler) ListMovements(c *fiber.Ctx) error {
	filter, err := parseMovementFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filtro de fechas inválido (usar YYYY-MM-DD)"})
	}

	history, err := h.queries.ListMovements(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	out := dto.MovementsResponse{
		Movements: make([]dto.MovementDTO, 0, len(history.Movements)),
		Totals: dto.TotalsDTO{
			Entries: history.Totals.Entries,
			Exits:   history.Totals.Exits,
			Net:     history.Totals.Net,
		},
	}
	for _, m := range history.Movements {
		out.Movements = append(out.Movements, dto.MovementDTO{
			ID:          m.ID,
			Type:        m.Type,
			Color:       m.Color,
			WeightGrams: m.WeightGrams,
			Quantity:    m.Quantity,
			Direction:   m.Direction,
			CreatedAt:   m.CreatedAt.Format(time.RFC3339),
		})
	}
	return c.JSON(out)
}

// SubmitMovement godoc
// @Summary      Registrar un movimiento de estoque (entrada o salida)
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitMovementRequest  true  "type, color, weight_grams, quantity, direction"
// @Success      201   {object}  dto.SubmitMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *StockHandler) SubmitMovement(c *fiber.Ctx) error {
	var in dto.SubmitMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cuerpo inválido"})
	}

	result, err := h.submit.Submit(c.Context(), appstock.MovementInputDTO{
		Type:        in.Type,
		Color:       in.Color,
		WeightGrams: in.WeightGrams,
		Quantity:    in.Quantity,
		Direction:   in.Direction,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		case errors.Is(err, domain.ErrUnknownVariant):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "UNKNOWN_VARIANT", Message: "no se puede retirar stock de un ítem inexistente"})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SubmitMovementResponse{
		Accepted:          true,
		MovementID:        result.MovementID,
		ResultingQuantity: result.ResultingQuantity,
		Status:            string(result.Status),
	})
}

// parseMovementFilter interpreta los query params de filtrado. date_to es
// inclusivo: se corre al final del día.
func parseMovementFilter(c *fiber.Ctx) (repository.MovementFilter, error) {
	filter := repository.MovementFilter{
		Type:      c.Query("type"),
		Direction: c.Query("direction"),
	}
	if raw := c.Query("date_from"); raw != "" {
		from, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filter, err
		}
		filter.DateFrom = &from
	}
	if raw := c.Query("date_to"); raw != "" {
		to, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filter, err
		}
		endOfDay := to.Add(24*time.Hour - time.Nanosecond)
		filter.DateTo = &endOfDay
	}
	return filter, nil
}

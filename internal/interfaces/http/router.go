package http

import (
	"github.com/gofiber/fiber/v2"

	appstock "github.com/jhoicas/Tampas-api/internal/application/stock"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SubmitMovement *appstock.SubmitMovementUseCase
	StockQueries   *appstock.QueryUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	handler := NewStockHandler(deps.SubmitMovement, deps.StockQueries)

	api.Get("/catalog", handler.GetCatalog)
	api.Get("/variants", handler.ListVariants)
	api.Get("/movements", handler.ListMovements)
	api.Post("/movements", handler.SubmitMovement)
}

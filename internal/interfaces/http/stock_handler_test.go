package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appstock "github.com/jhoicas/Tampas-api/internal/application/stock"
	"github.com/jhoicas/Tampas-api/internal/domain/entity"
	"github.com/jhoicas/Tampas-api/internal/domain/repository"
	apphttp "github.com/jhoicas/Tampas-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria (sin BD): mismo contrato que los adaptadores de postgres.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	variants  map[entity.VariantKey]entity.CapVariant
	movements []entity.Movement
}

type memRepos struct{ store *memStore }

func (r *memRepos) List() ([]entity.CapVariant, error) {
	out := make([]entity.CapVariant, 0, len(r.store.variants))
	for _, v := range r.store.variants {
		out = append(out, v)
	}
	return out, nil
}

func (r *memRepos) GetForUpdate(capType, color string) (*entity.CapVariant, error) {
	if v, ok := r.store.variants[entity.VariantKey{Type: capType, Color: color}]; ok {
		return &v, nil
	}
	return nil, nil
}

func (r *memRepos) InsertIfAbsent(variant *entity.CapVariant) (bool, error) {
	if _, ok := r.store.variants[variant.Key()]; ok {
		return false, nil
	}
	r.store.variants[variant.Key()] = *variant
	return true, nil
}

func (r *memRepos) Upsert(variant *entity.CapVariant) error {
	r.store.variants[variant.Key()] = *variant
	return nil
}

type memMovements struct{ store *memStore }

func (r *memMovements) Create(movement *entity.Movement) error {
	r.store.movements = append(r.store.movements, *movement)
	return nil
}

func (r *memMovements) List(filter repository.MovementFilter) ([]entity.Movement, error) {
	var out []entity.Movement
	for _, m := range r.store.movements {
		if filter.Type != "" && m.Type != filter.Type {
			continue
		}
		if filter.Direction != "" && m.Direction != filter.Direction {
			continue
		}
		if filter.DateFrom != nil && m.CreatedAt.Before(*filter.DateFrom) {
			continue
		}
		if filter.DateTo != nil && m.CreatedAt.After(*filter.DateTo) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

type memTxRunner struct{ store *memStore }

func (r *memTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	variantRepo repository.CapVariantRepository,
) error) error {
	return fn(&memMovements{store: r.store}, &memRepos{store: r.store})
}

func buildTestApp() (*fiber.App, *memStore) {
	store := &memStore{variants: make(map[entity.VariantKey]entity.CapVariant)}
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		SubmitMovement: appstock.NewSubmitMovementUseCase(&memTxRunner{store: store}),
		StockQueries:   appstock.NewQueryUseCase(&memRepos{store: store}, &memMovements{store: store}),
	})
	return app, store
}

func postMovement(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/movements", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/movements
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmitMovement_EntradaAceptada(t *testing.T) {
	app, store := buildTestApp()

	resp := postMovement(t, app, `{"type":"Tampa Coroa","color":"Preto","weight_grams":"1.8","quantity":120,"direction":"incoming"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, true, body["accepted"])
	assert.Equal(t, float64(120), body["resulting_quantity"])
	assert.Equal(t, "healthy", body["status"], "120 > 100 debe clasificar healthy")
	assert.Len(t, store.movements, 1)
}

func TestSubmitMovement_SalidaVarianteInexistente(t *testing.T) {
	app, store := buildTestApp()

	resp := postMovement(t, app, `{"type":"Tampa Coroa","color":"Preto","quantity":5,"direction":"outgoing"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "UNKNOWN_VARIANT", body["code"])
	assert.Empty(t, store.movements, "un rechazo no debe mutar el ledger")
}

func TestSubmitMovement_StockInsuficiente(t *testing.T) {
	app, _ := buildTestApp()

	resp := postMovement(t, app, `{"type":"Tampa Coroa","color":"Preto","weight_grams":"1.8","quantity":5,"direction":"incoming"}`)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = postMovement(t, app, `{"type":"Tampa Coroa","color":"Preto","quantity":8,"direction":"outgoing"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "INSUFFICIENT_STOCK", body["code"])
}

func TestSubmitMovement_Validacion(t *testing.T) {
	app, _ := buildTestApp()

	resp := postMovement(t, app, `{"type":"Tampa Coroa","color":"Preto","quantity":0,"direction":"incoming"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "VALIDATION", body["code"])
}

// Un cuerpo que no es JSON válido cae en el mismo código de validación que
// cualquier otra entrada rechazada.
func TestSubmitMovement_CuerpoMalformado(t *testing.T) {
	app, store := buildTestApp()

	resp := postMovement(t, app, `{"type":"Tampa Coroa",`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "VALIDATION", body["code"])
	assert.Empty(t, store.movements)
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/variants, /api/movements, /api/catalog
// ──────────────────────────────────────────────────────────────────────────────

func TestListVariants_IncluyeEstado(t *testing.T) {
	app, _ := buildTestApp()

	resp := postMovement(t, app, `{"type":"Anel","color":"Natural","weight_grams":"0.5","quantity":30,"direction":"incoming"}`)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/api/variants", nil)
	getResp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer getResp.Body.Close()

	assert.Equal(t, http.StatusOK, getResp.StatusCode)
	var variants []map[string]any
	require.NoError(t, json.NewDecoder(getResp.Body).Decode(&variants))
	require.Len(t, variants, 1)
	assert.Equal(t, "Anel", variants[0]["type"])
	assert.Equal(t, "low", variants[0]["status"], "30 <= 100 debe clasificar low")
}

func TestListMovements_TotalesYFiltro(t *testing.T) {
	app, _ := buildTestApp()

	for _, body := range []string{
		`{"type":"Bico","color":"Branco","weight_grams":"0.9","quantity":10,"direction":"incoming"}`,
		`{"type":"Bico","color":"Branco","quantity":3,"direction":"outgoing"}`,
		`{"type":"Bico","color":"Branco","weight_grams":"0.9","quantity":5,"direction":"incoming"}`,
	} {
		resp := postMovement(t, app, body)
		resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/movements", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	totals := body["totals"].(map[string]any)
	assert.Equal(t, float64(15), totals["entries"])
	assert.Equal(t, float64(3), totals["exits"])
	assert.Equal(t, float64(12), totals["net"])

	// Filtrado por dirección: los totales se recalculan sobre la vista filtrada
	req = httptest.NewRequest(http.MethodGet, "/api/movements?direction=outgoing", nil)
	filtered, err := app.Test(req, -1)
	require.NoError(t, err)
	defer filtered.Body.Close()

	fbody := decodeBody(t, filtered)
	ftotals := fbody["totals"].(map[string]any)
	assert.Equal(t, float64(0), ftotals["entries"])
	assert.Equal(t, float64(3), ftotals["exits"])
	assert.Len(t, fbody["movements"].([]any), 1)
}

// El rango de fechas es inclusivo en ambos extremos: date_to cubre hasta el
// final del día indicado, y el día siguiente ya queda fuera.
func TestListMovements_FiltroRangoFechasInclusivo(t *testing.T) {
	app, store := buildTestApp()

	day := func(value string) time.Time {
		ts, err := time.Parse(time.RFC3339, value)
		require.NoError(t, err)
		return ts
	}
	store.movements = []entity.Movement{
		{ID: "m1", Type: "Bico", Color: "Branco", Quantity: 4, Direction: entity.DirectionIncoming, CreatedAt: day("2026-08-25T10:00:00Z")},
		{ID: "m2", Type: "Bico", Color: "Branco", Quantity: 7, Direction: entity.DirectionIncoming, CreatedAt: day("2026-08-26T23:30:00Z")},
		{ID: "m3", Type: "Bico", Color: "Branco", Quantity: 2, Direction: entity.DirectionIncoming, CreatedAt: day("2026-08-27T00:10:00Z")},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/movements?date_from=2026-08-26&date_to=2026-08-26", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	movements := body["movements"].([]any)
	require.Len(t, movements, 1, "solo el movimiento del día filtrado debe entrar")
	assert.Equal(t, "m2", movements[0].(map[string]any)["id"],
		"un movimiento a las 23:30 del día date_to es inclusivo; el del día siguiente queda fuera")

	totals := body["totals"].(map[string]any)
	assert.Equal(t, float64(7), totals["entries"], "los totales se calculan sobre la vista filtrada")
}

func TestListMovements_FiltroFechaInvalido(t *testing.T) {
	app, _ := buildTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/movements?date_from=29-11-2023", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetCatalog(t *testing.T) {
	app, _ := buildTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/catalog", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	models := body["cap_models"].([]any)
	assert.Contains(t, models, "Push Pull 20/410")
	assert.Len(t, body["common_colors"].([]any), 8)
}

// Package catalog contiene el catálogo fijo de modelos de tapa que fabrica la
// empresa y la paleta de colores comunes del formulario de movimientos.
package catalog

// CapModels modelos de tapa válidos. El campo tipo de un movimiento debe ser
// exactamente uno de estos valores.
var CapModels = []string{
	"Push Pull 20/410",
	"Push Pull 24/410",
	"Push Pull 28/410",
	"Push Pull 28/410 DS",
	"Flip Top standard 18/410",
	"Flip Top standard 20/410",
	"Flip Top Ômega 20/410",
	"Flip Top Ômega 24/410",
	"Flip Top Ômega 24/415",
	"Flip Top Ômega 28/410",
	"Disc Top rosca 24/410",
	"Disc Top rosca 24/410 com anel",
	"Disc Top rosca 24/415",
	"Disc Top rosca 24/415 com anel",
	"Disc Top rosca 28/410",
	"Disc Top rosca 28/410 com anel",
	"Batoque Bolha 13mm",
	"Batoque com furo 13mm",
	"Batoque 30mm",
	"Catraca com batoque",
	"Tampa Lisa",
	"Tampa para rosca aletada",
	"Tampa Cheirinho",
	"Baleiro rosca 35mm",
	"Refil rosca 18mm",
	"Refil rosca 20/410",
	"Refil rosca 24/410",
	"Refil rosca 28/410",
	"Tampa para pote 250g / 500g",
	"Tampa para pote 1Kg - r87",
	"Tampa Inserto",
	"Tampa Coroa",
	"Sobretampa V. Pressão",
	"Bico",
	"Anel",
	"Bico Push Pull 28/410",
	"Bico Push Pull 20/410",
}

// CommonColors paleta de colores sugerida para el formulario. El color de un
// movimiento es texto libre: esta lista no restringe, solo sugiere.
var CommonColors = []string{
	"Branco",
	"Preto",
	"Vermelho",
	"Verde",
	"Azul",
	"Amarelo",
	"Natural",
	"Transparente",
}

var capModelSet = func() map[string]struct{} {
	s := make(map[string]struct{}, len(CapModels))
	for _, m := range CapModels {
		s[m] = struct{}{}
	}
	return s
}()

// IsCapModel indica si el tipo corresponde a un modelo del catálogo
// (comparación exacta, sensible a mayúsculas).
func IsCapModel(capType string) bool {
	_, ok := capModelSet[capType]
	return ok
}

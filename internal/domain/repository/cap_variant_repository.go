package repository

import "github.com/jhoicas/Tampas-api/internal/domain/entity"

// CapVariantRepository define el puerto para consultar/actualizar la vista de
// stock por variante. Usado dentro de transacciones para garantizar consistencia.
type CapVariantRepository interface {
	List() ([]entity.CapVariant, error)
	// GetForUpdate bloquea la fila de la variante (SELECT FOR UPDATE); devuelve
	// nil si la variante aún no existe.
	GetForUpdate(capType, color string) (*entity.CapVariant, error)
	// InsertIfAbsent inserta la variante solo si la fila no existe (ON CONFLICT
	// DO NOTHING) y reporta si insertó. Si otra transacción está insertando la
	// misma clave, espera su desenlace: así dos primeras entradas concurrentes
	// se serializan sobre la PK (type, color).
	InsertIfAbsent(variant *entity.CapVariant) (bool, error)
	Upsert(variant *entity.CapVariant) error
}

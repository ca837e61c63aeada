package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Tampas-api/internal/domain/entity"
	"github.com/jhoicas/Tampas-api/internal/domain/repository"
)

var _ repository.CapVariantRepository = (*CapVariantRepo)(nil)

// CapVariantRepo implementación de CapVariantRepository sobre PostgreSQL
// (usable con pool o tx). La tabla cap_variants es la vista materializada del
// ledger, con PK (type, color).
type CapVariantRepo struct {
	q Querier
}

// NewCapVariantRepository construye el adaptador de variantes. Pasar pool o tx (Querier).
func NewCapVariantRepository(q Querier) *CapVariantRepo {
	return &CapVariantRepo{q: q}
}

// List devuelve todas las variantes, ordenadas por modelo y color para un
// listado estable.
func (r *CapVariantRepo) List() ([]entity.CapVariant, error) {
	query := `
		SELECT type, color, weight_grams, quantity, updated_at
		FROM cap_variants ORDER BY type, color`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list cap variants: %w", err)
	}
	defer rows.Close()
	var list []entity.CapVariant
	for rows.Next() {
		var v entity.CapVariant
		if err := rows.Scan(&v.Type, &v.Color, &v.WeightGrams, &v.Quantity, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cap variant: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

// GetForUpdate obtiene la variante y bloquea la fila (SELECT FOR UPDATE).
// Devuelve nil si la variante aún no existe: la inserción posterior queda
// protegida por la PK (type, color).
func (r *CapVariantRepo) GetForUpdate(capType, color string) (*entity.CapVariant, error) {
	query := `
		SELECT type, color, weight_grams, quantity, updated_at
		FROM cap_variants WHERE type = $1 AND color = $2
		FOR UPDATE`
	var v entity.CapVariant
	err := r.q.QueryRow(context.Background(), query, capType, color).Scan(
		&v.Type, &v.Color, &v.WeightGrams, &v.Quantity, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cap variant for update: %w", err)
	}
	return &v, nil
}

// InsertIfAbsent inserta la variante solo si la fila (type, color) no existe y
// reporta si insertó. El ON CONFLICT DO NOTHING espera a cualquier inserción
// concurrente de la misma clave: dos primeras entradas simultáneas se
// serializan aquí y la perdedora debe re-leer bajo bloqueo y re-evaluar.
func (r *CapVariantRepo) InsertIfAbsent(variant *entity.CapVariant) (bool, error) {
	query := `
		INSERT INTO cap_variants (type, color, weight_grams, quantity, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (type, color) DO NOTHING`
	tag, err := r.q.Exec(context.Background(), query,
		variant.Type, variant.Color, variant.WeightGrams, variant.Quantity,
	)
	if err != nil {
		return false, fmt.Errorf("insert cap variant: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// Upsert actualiza la variante (por modelo y color) con la fila ya bloqueada.
// El peso solo se escribe en el insert; en el update se conserva el almacenado.
func (r *CapVariantRepo) Upsert(variant *entity.CapVariant) error {
	query := `
		INSERT INTO cap_variants (type, color, weight_grams, quantity, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (type, color)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		variant.Type, variant.Color, variant.WeightGrams, variant.Quantity,
	)
	if err != nil {
		return fmt.Errorf("upsert cap variant: %w", err)
	}
	return nil
}

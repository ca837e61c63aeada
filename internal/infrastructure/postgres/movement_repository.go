package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/Tampas-api/internal/domain/entity"
	"github.com/jhoicas/Tampas-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del ledger de movimientos sobre PostgreSQL
// (usable con pool o tx). Append-only: solo INSERT y SELECT.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create anexa un movimiento al ledger.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movements (id, type, color, weight_grams, quantity, direction, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.Type, movement.Color, movement.WeightGrams,
		movement.Quantity, movement.Direction, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// List devuelve los movimientos que cumplen el filtro, nuevos primero.
func (r *MovementRepo) List(filter repository.MovementFilter) ([]entity.Movement, error) {
	query := `
		SELECT id, type, color, weight_grams, quantity, direction, created_at
		FROM movements WHERE 1=1`
	var args []any
	pos := 1
	if filter.DateFrom != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, *filter.DateFrom)
		pos++
	}
	if filter.DateTo != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", pos)
		args = append(args, *filter.DateTo)
		pos++
	}
	if filter.Type != "" {
		query += fmt.Sprintf(" AND type = $%d", pos)
		args = append(args, filter.Type)
		pos++
	}
	if filter.Direction != "" {
		query += fmt.Sprintf(" AND direction = $%d", pos)
		args = append(args, filter.Direction)
		pos++
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.Type, &m.Color, &m.WeightGrams,
			&m.Quantity, &m.Direction, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stock-monitor/internal/domain/entity"
	"github.com/tu-usuario/stock-monitor/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación append-only del libro de movimientos sobre
// PostgreSQL. El ID creciente lo asigna la secuencia BIGSERIAL de la tabla.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Append inserta el movimiento y escribe el ID asignado por la secuencia.
func (r *MovementRepo) Append(movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (item_id, movement_type, quantity, reference, notes, actor_id, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		movement.ItemID, movement.Type, movement.Quantity,
		movement.Reference, movement.Notes, movement.ActorID, movement.Timestamp,
	).Scan(&movement.ID)
	if err != nil {
		return fmt.Errorf("append movement: %w", err)
	}
	return nil
}

// LastTimestamp devuelve el timestamp del último movimiento del libro
// (zero time si el libro está vacío).
func (r *MovementRepo) LastTimestamp() (time.Time, error) {
	var ts time.Time
	err := r.q.QueryRow(context.Background(),
		`SELECT timestamp FROM stock_movements ORDER BY id DESC LIMIT 1`).Scan(&ts)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("last movement timestamp: %w", err)
	}
	return ts, nil
}

// ListByItem lista los movimientos de un ítem, del más antiguo al más reciente.
// limit <= 0 lista sin paginación.
func (r *MovementRepo) ListByItem(itemID string, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, item_id, movement_type, quantity, reference, notes, actor_id, timestamp
		FROM stock_movements WHERE item_id = $1 ORDER BY id`
	args := []any{itemID}
	if limit > 0 {
		query += " LIMIT $2 OFFSET $3"
		args = append(args, limit, offset)
	}
	return r.list(query, args...)
}

// ListByItemSince lista los movimientos de un ítem con timestamp >= since.
func (r *MovementRepo) ListByItemSince(itemID string, since time.Time) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, item_id, movement_type, quantity, reference, notes, actor_id, timestamp
		FROM stock_movements WHERE item_id = $1 AND timestamp >= $2 ORDER BY id`
	return r.list(query, itemID, since)
}

// SumOutSince suma las salidas de un ítem dentro de la ventana.
func (r *MovementRepo) SumOutSince(itemID string, since time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(), `
		SELECT COALESCE(SUM(quantity), 0)
		FROM stock_movements
		WHERE item_id = $1 AND movement_type = 'out' AND timestamp >= $2`,
		itemID, since,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum out movements: %w", err)
	}
	return total, nil
}

func (r *MovementRepo) list(query string, args ...any) ([]*entity.StockMovement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.ItemID, &m.Type, &m.Quantity,
			&m.Reference, &m.Notes, &m.ActorID, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stock-monitor/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia del libro de movimientos.
// El libro es append-only: no existen operaciones de update ni delete.
type MovementRepository interface {
	// Append persiste el movimiento asignándole un ID estrictamente creciente
	// y único en todo el libro, y lo escribe en movement.ID.
	Append(movement *entity.StockMovement) error

	// LastTimestamp devuelve el timestamp del último movimiento del libro
	// (zero time si está vacío). El ledger lo usa para garantizar timestamps
	// no decrecientes.
	LastTimestamp() (time.Time, error)

	// ListByItem devuelve los movimientos de un ítem, del más antiguo al más
	// reciente.
	ListByItem(itemID string, limit, offset int) ([]*entity.StockMovement, error)

	// ListByItemSince devuelve los movimientos de un ítem con timestamp >= since,
	// del más antiguo al más reciente.
	ListByItemSince(itemID string, since time.Time) ([]*entity.StockMovement, error)

	// SumOutSince suma las cantidades de salidas (type=out) de un ítem con
	// timestamp >= since. Cero si no hay salidas en la ventana.
	SumOutSince(itemID string, since time.Time) (decimal.Decimal, error)
}

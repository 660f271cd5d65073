package ledger

import (
	"context"

	"github.com/tu-usuario/stock-monitor/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción del backend de
// almacenamiento, pasando repositorios atados a esa transacción.
// Garantiza la atomicidad del ledger: actualización de cantidad y append
// del movimiento se confirman o descartan como una sola unidad.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		movRepo repository.MovementRepository,
	) error) error
}

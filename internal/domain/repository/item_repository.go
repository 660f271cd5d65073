package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stock-monitor/internal/domain/entity"
)

// ItemFilter restringe un listado de ítems (campos vacíos = sin filtro, AND entre sí).
type ItemFilter struct {
	SupplierID  string
	WarehouseID string
}

// ItemRepository define el puerto de persistencia para Item (DIP).
// UpdateQuantity existe solo para el ledger: ningún otro componente
// debe mutar CurrentQuantity.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	GetBySKU(sku string) (*entity.Item, error)

	// GetByIDForUpdate obtiene el ítem tomando el bloqueo de escritura que
	// corresponda al backend (SELECT FOR UPDATE en SQL). Solo válido dentro
	// de una transacción del TxRunner.
	GetByIDForUpdate(id string) (*entity.Item, error)

	UpdateQuantity(id string, quantity decimal.Decimal, updatedAt time.Time) error
	Update(item *entity.Item) error
	List(filter ItemFilter, limit, offset int) ([]*entity.Item, error)
	Delete(id string) error
}

package ledger

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stock-monitor/internal/domain"
	"github.com/tu-usuario/stock-monitor/internal/domain/entity"
	"github.com/tu-usuario/stock-monitor/internal/domain/repository"
)

// UseCase es el ledger de movimientos: único escritor autorizado de
// CurrentQuantity. Cada Apply es una lectura-modificación-escritura atómica
// por ítem (bloqueo de fila en SQL, mutex de store en el backend de archivo)
// más el append del movimiento resultante, dentro de una misma transacción.
type UseCase struct {
	txRunner TxRunner
	itemRepo repository.ItemRepository
	movRepo  repository.MovementRepository
}

// NewUseCase construye el ledger. itemRepo y movRepo se usan solo para
// lecturas; las escrituras pasan siempre por txRunner.
func NewUseCase(txRunner TxRunner, itemRepo repository.ItemRepository, movRepo repository.MovementRepository) *UseCase {
	return &UseCase{txRunner: txRunner, itemRepo: itemRepo, movRepo: movRepo}
}

// ApplyInput entrada para registrar un movimiento.
// Quantity es la magnitud solicitada: > 0 para in/out, >= 0 para adjustment
// (valor absoluto nuevo). ActorID puede ser nil (movimiento anónimo).
type ApplyInput struct {
	ItemID    string
	Type      string
	Quantity  decimal.Decimal
	ActorID   *string
	Reference string
	Notes     string
}

// Apply valida la entrada, actualiza la cantidad del ítem según el tipo y
// agrega el movimiento al libro, todo en una transacción:
//
//	in         → CurrentQuantity += Quantity
//	out        → CurrentQuantity = max(0, CurrentQuantity - Quantity)
//	adjustment → CurrentQuantity = Quantity
//
// La salida se recorta a cero en lugar de rechazarse; el movimiento guarda
// la cantidad solicitada, así el libro conserva la demanda real.
// No retorna éxito hasta que el append quedó confirmado de forma durable.
func (uc *UseCase) Apply(ctx context.Context, input ApplyInput) (*entity.StockMovement, error) {
	if !entity.ValidMovementType(input.Type) {
		return nil, domain.ErrInvalidInput
	}
	switch input.Type {
	case entity.MovementTypeIn, entity.MovementTypeOut:
		if input.Quantity.LessThanOrEqual(decimal.Zero) {
			return nil, domain.ErrInvalidQuantity
		}
	case entity.MovementTypeAdjustment:
		if input.Quantity.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidQuantity
		}
	}

	var appended *entity.StockMovement
	err := uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository, movRepo repository.MovementRepository) error {
		// Bloquea la fila del ítem: dos Apply sobre el mismo ítem se serializan,
		// sobre ítems distintos avanzan en paralelo.
		item, err := itemRepo.GetByIDForUpdate(input.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrItemNotFound
		}

		newQty := applyQuantity(item.CurrentQuantity, input.Type, input.Quantity)
		now := time.Now().UTC()
		if err := itemRepo.UpdateQuantity(item.ID, newQty, now); err != nil {
			return err
		}

		// Timestamp monotónico no decreciente en todo el libro.
		ts := now
		if last, err := movRepo.LastTimestamp(); err != nil {
			return err
		} else if ts.Before(last) {
			ts = last
		}

		mov := &entity.StockMovement{
			ItemID:    item.ID,
			Type:      input.Type,
			Quantity:  input.Quantity,
			Reference: input.Reference,
			Notes:     input.Notes,
			ActorID:   input.ActorID,
			Timestamp: ts,
		}
		if err := movRepo.Append(mov); err != nil {
			return err
		}
		appended = mov
		return nil
	})
	if err != nil {
		return nil, err
	}
	return appended, nil
}

// applyQuantity calcula la nueva cantidad según el tipo de movimiento.
func applyQuantity(current decimal.Decimal, movementType string, quantity decimal.Decimal) decimal.Decimal {
	switch movementType {
	case entity.MovementTypeIn:
		return current.Add(quantity)
	case entity.MovementTypeOut:
		next := current.Sub(quantity)
		if next.LessThan(decimal.Zero) {
			return decimal.Zero
		}
		return next
	default: // adjustment
		return quantity
	}
}

// History devuelve los movimientos de un ítem del más antiguo al más reciente.
func (uc *UseCase) History(itemID string, limit, offset int) ([]*entity.StockMovement, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	return uc.movRepo.ListByItem(itemID, limit, offset)
}

// ListRecent devuelve los movimientos de un ítem con timestamp >= since.
func (uc *UseCase) ListRecent(itemID string, since time.Time) ([]*entity.StockMovement, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	return uc.movRepo.ListByItemSince(itemID, since)
}

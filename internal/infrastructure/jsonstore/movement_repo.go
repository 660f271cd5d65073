package jsonstore

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stock-monitor/internal/domain/entity"
	"github.com/tu-usuario/stock-monitor/internal/domain/repository"
)

var (
	_ repository.MovementRepository = (*docMovementRepo)(nil)
	_ repository.MovementRepository = (*storeMovementRepo)(nil)
)

// docMovementRepo opera sobre un documento cargado dentro de una transacción.
type docMovementRepo struct {
	doc *document
}

// Append asigna el siguiente ID (máximo del libro + 1) y agrega el registro.
func (r *docMovementRepo) Append(movement *entity.StockMovement) error {
	var maxID int64
	for _, rec := range r.doc.StockMovements {
		if rec.ID > maxID {
			maxID = rec.ID
		}
	}
	movement.ID = maxID + 1
	r.doc.StockMovements = append(r.doc.StockMovements, movementFromEntity(movement))
	return nil
}

func (r *docMovementRepo) LastTimestamp() (time.Time, error) {
	var last time.Time
	for _, rec := range r.doc.StockMovements {
		if rec.Timestamp.After(last) {
			last = rec.Timestamp
		}
	}
	return last, nil
}

func (r *docMovementRepo) ListByItem(itemID string, limit, offset int) ([]*entity.StockMovement, error) {
	var list []*entity.StockMovement
	for _, rec := range r.doc.StockMovements {
		if string(rec.ItemID) == itemID {
			list = append(list, movementToEntity(rec))
		}
	}
	if offset > 0 {
		if offset >= len(list) {
			return nil, nil
		}
		list = list[offset:]
	}
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list, nil
}

func (r *docMovementRepo) ListByItemSince(itemID string, since time.Time) ([]*entity.StockMovement, error) {
	var list []*entity.StockMovement
	for _, rec := range r.doc.StockMovements {
		if string(rec.ItemID) == itemID && !rec.Timestamp.Before(since) {
			list = append(list, movementToEntity(rec))
		}
	}
	return list, nil
}

func (r *docMovementRepo) SumOutSince(itemID string, since time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, rec := range r.doc.StockMovements {
		if string(rec.ItemID) == itemID && rec.MovementType == entity.MovementTypeOut && !rec.Timestamp.Before(since) {
			total = total.Add(rec.Quantity)
		}
	}
	return total, nil
}

// storeMovementRepo es la vista de lectura fuera de transacción.
// Append fuera de Store.Run pasa por una transacción propia.
type storeMovementRepo struct {
	s *Store
}

func (r *storeMovementRepo) Append(movement *entity.StockMovement) error {
	return r.s.Run(context.Background(), func(_ repository.ItemRepository, movRepo repository.MovementRepository) error {
		return movRepo.Append(movement)
	})
}

func (r *storeMovementRepo) LastTimestamp() (ts time.Time, err error) {
	err = r.s.withSnapshot(func(doc *document) error {
		ts, err = (&docMovementRepo{doc: doc}).LastTimestamp()
		return err
	})
	return ts, err
}

func (r *storeMovementRepo) ListByItem(itemID string, limit, offset int) (list []*entity.StockMovement, err error) {
	err = r.s.withSnapshot(func(doc *document) error {
		list, err = (&docMovementRepo{doc: doc}).ListByItem(itemID, limit, offset)
		return err
	})
	return list, err
}

func (r *storeMovementRepo) ListByItemSince(itemID string, since time.Time) (list []*entity.StockMovement, err error) {
	err = r.s.withSnapshot(func(doc *document) error {
		list, err = (&docMovementRepo{doc: doc}).ListByItemSince(itemID, since)
		return err
	})
	return list, err
}

func (r *storeMovementRepo) SumOutSince(itemID string, since time.Time) (total decimal.Decimal, err error) {
	err = r.s.withSnapshot(func(doc *document) error {
		total, err = (&docMovementRepo{doc: doc}).SumOutSince(itemID, since)
		return err
	})
	return total, err
}

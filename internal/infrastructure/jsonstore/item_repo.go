package jsonstore

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stock-monitor/internal/domain"
	"github.com/tu-usuario/stock-monitor/internal/domain/entity"
	"github.com/tu-usuario/stock-monitor/internal/domain/repository"
)

var (
	_ repository.ItemRepository = (*docItemRepo)(nil)
	_ repository.ItemRepository = (*storeItemRepo)(nil)
)

// docItemRepo opera sobre un documento ya cargado, dentro de una transacción
// del Store. Las mutaciones solo llegan a disco si la transacción confirma.
type docItemRepo struct {
	doc *document
}

func (r *docItemRepo) Create(item *entity.Item) error {
	for _, rec := range r.doc.InventoryItems {
		if rec.SKU == item.SKU {
			return domain.ErrDuplicateSKU
		}
	}
	r.doc.InventoryItems = append(r.doc.InventoryItems, itemFromEntity(item))
	return nil
}

func (r *docItemRepo) GetByID(id string) (*entity.Item, error) {
	for _, rec := range r.doc.InventoryItems {
		if string(rec.ID) == id {
			return itemToEntity(rec), nil
		}
	}
	return nil, nil
}

func (r *docItemRepo) GetBySKU(sku string) (*entity.Item, error) {
	for _, rec := range r.doc.InventoryItems {
		if rec.SKU == sku {
			return itemToEntity(rec), nil
		}
	}
	return nil, nil
}

// GetByIDForUpdate equivale a GetByID: el lock de escritura del Store ya
// serializa la transacción completa.
func (r *docItemRepo) GetByIDForUpdate(id string) (*entity.Item, error) {
	return r.GetByID(id)
}

func (r *docItemRepo) UpdateQuantity(id string, quantity decimal.Decimal, _ time.Time) error {
	for i := range r.doc.InventoryItems {
		if string(r.doc.InventoryItems[i].ID) == id {
			r.doc.InventoryItems[i].CurrentQuantity = quantity
			return nil
		}
	}
	return domain.ErrItemNotFound
}

func (r *docItemRepo) Update(item *entity.Item) error {
	for i := range r.doc.InventoryItems {
		if string(r.doc.InventoryItems[i].ID) == item.ID {
			// Conserva la cantidad proyectada: Update es solo de catálogo.
			current := r.doc.InventoryItems[i].CurrentQuantity
			rec := itemFromEntity(item)
			rec.CurrentQuantity = current
			r.doc.InventoryItems[i] = rec
			return nil
		}
	}
	return domain.ErrItemNotFound
}

func (r *docItemRepo) List(filter repository.ItemFilter, limit, offset int) ([]*entity.Item, error) {
	var list []*entity.Item
	for _, rec := range r.doc.InventoryItems {
		if filter.SupplierID != "" && rec.Supplier != filter.SupplierID {
			continue
		}
		if filter.WarehouseID != "" && rec.Warehouse != filter.WarehouseID {
			continue
		}
		list = append(list, itemToEntity(rec))
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

func (r *docItemRepo) Delete(id string) error {
	for i := range r.doc.InventoryItems {
		if string(r.doc.InventoryItems[i].ID) == id {
			r.doc.InventoryItems = append(r.doc.InventoryItems[:i], r.doc.InventoryItems[i+1:]...)
			return nil
		}
	}
	return domain.ErrItemNotFound
}

// storeItemRepo es la vista de lectura fuera de transacción: cada operación
// carga un snapshot consistente del archivo. Las mutaciones directas se
// rechazan; deben pasar por Store.Run.
type storeItemRepo struct {
	s *Store
}

func (r *storeItemRepo) Create(item *entity.Item) error {
	return r.s.Run(context.Background(), func(itemRepo repository.ItemRepository, _ repository.MovementRepository) error {
		return itemRepo.Create(item)
	})
}

func (r *storeItemRepo) GetByID(id string) (item *entity.Item, err error) {
	err = r.s.withSnapshot(func(doc *document) error {
		item, err = (&docItemRepo{doc: doc}).GetByID(id)
		return err
	})
	return item, err
}

func (r *storeItemRepo) GetBySKU(sku string) (item *entity.Item, err error) {
	err = r.s.withSnapshot(func(doc *document) error {
		item, err = (&docItemRepo{doc: doc}).GetBySKU(sku)
		return err
	})
	return item, err
}

func (r *storeItemRepo) GetByIDForUpdate(id string) (*entity.Item, error) {
	return r.GetByID(id)
}

func (r *storeItemRepo) UpdateQuantity(id string, quantity decimal.Decimal, updatedAt time.Time) error {
	return r.s.Run(context.Background(), func(itemRepo repository.ItemRepository, _ repository.MovementRepository) error {
		return itemRepo.UpdateQuantity(id, quantity, updatedAt)
	})
}

func (r *storeItemRepo) Update(item *entity.Item) error {
	return r.s.Run(context.Background(), func(itemRepo repository.ItemRepository, _ repository.MovementRepository) error {
		return itemRepo.Update(item)
	})
}

func (r *storeItemRepo) List(filter repository.ItemFilter, limit, offset int) (list []*entity.Item, err error) {
	err = r.s.withSnapshot(func(doc *document) error {
		list, err = (&docItemRepo{doc: doc}).List(filter, limit, offset)
		return err
	})
	return list, err
}

func (r *storeItemRepo) Delete(id string) error {
	return r.s.Run(context.Background(), func(itemRepo repository.ItemRepository, _ repository.MovementRepository) error {
		return itemRepo.Delete(id)
	})
}

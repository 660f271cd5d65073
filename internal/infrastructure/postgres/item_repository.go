package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stock-monitor/internal/domain"
	"github.com/tu-usuario/stock-monitor/internal/domain/entity"
	"github.com/tu-usuario/stock-monitor/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = `id, name, description, sku, category, unit, current_quantity,
	min_quantity, reorder_quantity, unit_cost, supplier_id, warehouse_id,
	created_by, created_at, updated_at`

// ItemRepo implementación de ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un ítem nuevo. ErrDuplicateSKU si el SKU ya existe.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO inventory_items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Description, item.SKU, item.Category, item.Unit,
		item.CurrentQuantity, item.MinQuantity, item.ReorderQuantity, item.UnitCost,
		item.SupplierID, item.WarehouseID, item.CreatedBy, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateSKU
		}
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID; nil si no existe.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	return r.get(`SELECT `+itemColumns+` FROM inventory_items WHERE id = $1`, id)
}

// GetBySKU obtiene un ítem por SKU; nil si no existe.
func (r *ItemRepo) GetBySKU(sku string) (*entity.Item, error) {
	return r.get(`SELECT `+itemColumns+` FROM inventory_items WHERE sku = $1`, sku)
}

// GetByIDForUpdate obtiene el ítem bloqueando su fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción del TxRunner.
func (r *ItemRepo) GetByIDForUpdate(id string) (*entity.Item, error) {
	return r.get(`SELECT `+itemColumns+` FROM inventory_items WHERE id = $1 FOR UPDATE`, id)
}

func (r *ItemRepo) get(query string, arg any) (*entity.Item, error) {
	var i entity.Item
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&i.ID, &i.Name, &i.Description, &i.SKU, &i.Category, &i.Unit,
		&i.CurrentQuantity, &i.MinQuantity, &i.ReorderQuantity, &i.UnitCost,
		&i.SupplierID, &i.WarehouseID, &i.CreatedBy, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &i, nil
}

// UpdateQuantity escribe la nueva cantidad proyectada. Reservado al ledger.
func (r *ItemRepo) UpdateQuantity(id string, quantity decimal.Decimal, updatedAt time.Time) error {
	query := `UPDATE inventory_items SET current_quantity = $2, updated_at = $3 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, quantity, updatedAt)
	if err != nil {
		return fmt.Errorf("update item quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// Update actualiza los campos de catálogo de un ítem (no toca current_quantity).
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE inventory_items
		SET name = $2, description = $3, category = $4, unit = $5,
		    min_quantity = $6, reorder_quantity = $7, unit_cost = $8,
		    supplier_id = $9, warehouse_id = $10, updated_at = $11
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Description, item.Category, item.Unit,
		item.MinQuantity, item.ReorderQuantity, item.UnitCost,
		item.SupplierID, item.WarehouseID, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// List lista ítems con filtros opcionales (AND, coincidencia exacta).
// limit <= 0 lista sin paginación.
func (r *ItemRepo) List(filter repository.ItemFilter, limit, offset int) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.SupplierID != "" {
		query += fmt.Sprintf(" AND supplier_id = $%d", pos)
		args = append(args, filter.SupplierID)
		pos++
	}
	if filter.WarehouseID != "" {
		query += fmt.Sprintf(" AND warehouse_id = $%d", pos)
		args = append(args, filter.WarehouseID)
		pos++
	}
	query += " ORDER BY name"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", pos, pos+1)
		args = append(args, limit, offset)
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var i entity.Item
		if err := rows.Scan(
			&i.ID, &i.Name, &i.Description, &i.SKU, &i.Category, &i.Unit,
			&i.CurrentQuantity, &i.MinQuantity, &i.ReorderQuantity, &i.UnitCost,
			&i.SupplierID, &i.WarehouseID, &i.CreatedBy, &i.CreatedAt, &i.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// Delete elimina un ítem del catálogo.
func (r *ItemRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

package jsonstore

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stock-monitor/internal/domain/entity"
)

// document es el contenido completo del archivo. Los nombres de campo y los
// tres valores de movement_type (in/out/adjustment) son el contrato de wire
// contra los datos existentes.
type document struct {
	InventoryItems []itemRecord     `json:"inventory_items"`
	StockMovements []movementRecord `json:"stock_movements"`
}

// flexID acepta IDs numéricos o string al decodificar: los archivos históricos
// del monitor usan enteros, los nuevos usan UUIDs. Al codificar conserva la
// forma numérica cuando el valor lo es.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id inválido: %s", data)
	}
	*f = flexID(n.String())
	return nil
}

func (f flexID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseInt(string(f), 10, 64); err == nil {
		return []byte(f), nil
	}
	return json.Marshal(string(f))
}

// itemRecord representación en archivo de un ítem.
type itemRecord struct {
	ID              flexID          `json:"id"`
	Name            string          `json:"name"`
	SKU             string          `json:"sku"`
	CurrentQuantity decimal.Decimal `json:"current_quantity"`
	MinQuantity     decimal.Decimal `json:"min_quantity"`
	Unit            string          `json:"unit"`
	Supplier        string          `json:"supplier"`
	Warehouse       string          `json:"warehouse"`

	// Campos aditivos; los archivos históricos no los traen.
	Description     string          `json:"description,omitempty"`
	Category        string          `json:"category,omitempty"`
	ReorderQuantity decimal.Decimal `json:"reorder_quantity,omitempty"`
	UnitCost        decimal.Decimal `json:"unit_cost,omitempty"`
}

// movementRecord representación en archivo de un movimiento.
type movementRecord struct {
	ID           int64           `json:"id"`
	ItemID       flexID          `json:"item_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	MovementType string          `json:"movement_type"`
	Notes        string          `json:"notes"`
	Timestamp    time.Time       `json:"timestamp"`

	Reference string  `json:"reference,omitempty"`
	ActorID   *string `json:"actor_id,omitempty"`
}

// En el backend de archivo las referencias débiles a proveedor/bodega son los
// nombres del documento; el core nunca las desreferencia.
func itemToEntity(rec itemRecord) *entity.Item {
	item := &entity.Item{
		ID:              string(rec.ID),
		Name:            rec.Name,
		Description:     rec.Description,
		SKU:             rec.SKU,
		Category:        rec.Category,
		Unit:            rec.Unit,
		CurrentQuantity: rec.CurrentQuantity,
		MinQuantity:     rec.MinQuantity,
		ReorderQuantity: rec.ReorderQuantity,
		UnitCost:        rec.UnitCost,
	}
	if rec.Supplier != "" {
		s := rec.Supplier
		item.SupplierID = &s
	}
	if rec.Warehouse != "" {
		w := rec.Warehouse
		item.WarehouseID = &w
	}
	return item
}

func itemFromEntity(item *entity.Item) itemRecord {
	rec := itemRecord{
		ID:              flexID(item.ID),
		Name:            item.Name,
		Description:     item.Description,
		SKU:             item.SKU,
		Category:        item.Category,
		Unit:            item.Unit,
		CurrentQuantity: item.CurrentQuantity,
		MinQuantity:     item.MinQuantity,
		ReorderQuantity: item.ReorderQuantity,
		UnitCost:        item.UnitCost,
	}
	if item.SupplierID != nil {
		rec.Supplier = *item.SupplierID
	}
	if item.WarehouseID != nil {
		rec.Warehouse = *item.WarehouseID
	}
	return rec
}

func movementToEntity(rec movementRecord) *entity.StockMovement {
	return &entity.StockMovement{
		ID:        rec.ID,
		ItemID:    string(rec.ItemID),
		Type:      rec.MovementType,
		Quantity:  rec.Quantity,
		Reference: rec.Reference,
		Notes:     rec.Notes,
		ActorID:   rec.ActorID,
		Timestamp: rec.Timestamp,
	}
}

func movementFromEntity(m *entity.StockMovement) movementRecord {
	return movementRecord{
		ID:           m.ID,
		ItemID:       flexID(m.ItemID),
		Quantity:     m.Quantity,
		MovementType: m.Type,
		Notes:        m.Notes,
		Timestamp:    m.Timestamp,
		Reference:    m.Reference,
		ActorID:      m.ActorID,
	}
}

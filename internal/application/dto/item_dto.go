package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest body para POST /api/items/.
type CreateItemRequest struct {
	Name            string           `json:"name" validate:"required"`
	Description     string           `json:"description"`
	SKU             string           `json:"sku" validate:"required"`
	Category        string           `json:"category" validate:"required,oneof=raw_material packaging chemical component other"`
	Unit            string           `json:"unit" validate:"required,oneof=kg g L mL pc m cm"`
	CurrentQuantity decimal.Decimal  `json:"current_quantity"`
	MinQuantity     decimal.Decimal  `json:"min_quantity"`
	ReorderQuantity decimal.Decimal  `json:"reorder_quantity"`
	UnitCost        decimal.Decimal  `json:"unit_cost"`
	SupplierID      *string          `json:"supplier_id,omitempty"`
	WarehouseID     *string          `json:"warehouse_id,omitempty"`
}

// UpdateItemRequest body para PUT /api/items/:id. No incluye current_quantity:
// la cantidad solo la muta el ledger vía movimientos.
type UpdateItemRequest struct {
	Name            string          `json:"name" validate:"required"`
	Description     string          `json:"description"`
	Category        string          `json:"category" validate:"required,oneof=raw_material packaging chemical component other"`
	Unit            string          `json:"unit" validate:"required,oneof=kg g L mL pc m cm"`
	MinQuantity     decimal.Decimal `json:"min_quantity"`
	ReorderQuantity decimal.Decimal `json:"reorder_quantity"`
	UnitCost        decimal.Decimal `json:"unit_cost"`
	SupplierID      *string         `json:"supplier_id,omitempty"`
	WarehouseID     *string         `json:"warehouse_id,omitempty"`
}

// ItemResponse representación JSON de un ítem con su estado derivado.
type ItemResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	SKU             string          `json:"sku"`
	Category        string          `json:"category"`
	Unit            string          `json:"unit"`
	CurrentQuantity decimal.Decimal `json:"current_quantity"`
	MinQuantity     decimal.Decimal `json:"min_quantity"`
	ReorderQuantity decimal.Decimal `json:"reorder_quantity"`
	UnitCost        decimal.Decimal `json:"unit_cost"`
	SupplierID      *string         `json:"supplier_id,omitempty"`
	WarehouseID     *string         `json:"warehouse_id,omitempty"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

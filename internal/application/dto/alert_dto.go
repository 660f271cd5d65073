package dto

import "github.com/shopspring/decimal"

// StockAlertDTO un ítem cuyo estado de stock requiere atención.
type StockAlertDTO struct {
	ItemID          string          `json:"item_id"`
	ItemName        string          `json:"item_name"`
	SKU             string          `json:"sku"`
	CurrentQuantity decimal.Decimal `json:"current_quantity"`
	MinQuantity     decimal.Decimal `json:"min_quantity"`
	Status          string          `json:"status"`
	WarehouseID     string          `json:"warehouse_id,omitempty"`
}

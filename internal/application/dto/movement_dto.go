package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ApplyMovementRequest body para POST /api/stock-movements/.
type ApplyMovementRequest struct {
	ItemID    string          `json:"item_id" validate:"required"`
	Type      string          `json:"movement_type" validate:"required,oneof=in out adjustment"`
	Quantity  decimal.Decimal `json:"quantity"`
	Reference string          `json:"reference"`
	Notes     string          `json:"notes"`
}

// MovementResponse representación JSON de un movimiento del libro.
type MovementResponse struct {
	ID        int64           `json:"id"`
	ItemID    string          `json:"item_id"`
	Type      string          `json:"movement_type"`
	Quantity  decimal.Decimal `json:"quantity"`
	Reference string          `json:"reference,omitempty"`
	Notes     string          `json:"notes,omitempty"`
	ActorID   *string         `json:"actor_id,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

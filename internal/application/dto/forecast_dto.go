package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShortagePredictionDTO fecha estimada de quiebre de stock para un ítem.
// Cuando AvgDailyUsage es cero, ShortageDate es el centinela "ahora + 30 días"
// (sin estimación confiable), no un pronóstico.
type ShortagePredictionDTO struct {
	ItemID          string          `json:"item_id"`
	Name            string          `json:"name"`
	SKU             string          `json:"sku"`
	CurrentQuantity decimal.Decimal `json:"current_quantity"`
	AvgDailyUsage   decimal.Decimal `json:"avg_daily_usage"`
	ShortageDate    time.Time       `json:"shortage_date"`
	Status          string          `json:"status"`
}

package stock

import (
	"time"

	"github.com/shopspring/decimal"
)

// FallbackDays es el horizonte devuelto cuando no hay consumo medible:
// el resultado "ahora + 30 días" es un centinela de "sin estimación
// confiable", no un pronóstico real.
const FallbackDays = 30

// ShortageDate extrapola la fecha estimada de quiebre de stock a partir del
// consumo diario promedio. Nunca falla y nunca devuelve una fecha anterior
// a now:
//
//	usage <= 0    → now + FallbackDays
//	current <= 0  → now (ya está agotado)
//	en otro caso  → now + (current / usage) días, con aritmética fraccional
func ShortageDate(now time.Time, current, avgDailyUsage decimal.Decimal) time.Time {
	if avgDailyUsage.LessThanOrEqual(decimal.Zero) {
		return now.AddDate(0, 0, FallbackDays)
	}
	if current.LessThanOrEqual(decimal.Zero) {
		return now
	}
	days := current.Div(avgDailyUsage).InexactFloat64()
	return now.Add(time.Duration(days * float64(24*time.Hour)))
}

// AverageDailyUsage calcula el consumo diario promedio: suma de salidas en la
// ventana dividida por los días de la ventana. Sin salidas → cero.
func AverageDailyUsage(totalOut decimal.Decimal, lookbackDays int) decimal.Decimal {
	if lookbackDays <= 0 || totalOut.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return totalOut.Div(decimal.NewFromInt(int64(lookbackDays)))
}

package stock

import "github.com/shopspring/decimal"

// Status es el semáforo de stock derivado de cantidad actual vs. mínima.
// Los valores string son el contrato de wire (green/yellow/red).
type Status string

const (
	StatusNormal   Status = "green"
	StatusWarning  Status = "yellow"
	StatusCritical Status = "red"
)

// ValidStatus reporta si s corresponde a un estado conocido.
func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusNormal, StatusWarning, StatusCritical:
		return true
	}
	return false
}

// warningMultiplier: el umbral de WARNING es MinQuantity * 1.5.
// Constante de política, no configurable por ítem.
var warningMultiplier = decimal.NewFromFloat(1.5)

// Classify deriva el estado de stock (función pura, total y determinista).
//
//	current <= 0              → CRITICAL
//	current <= min * 1.5      → WARNING
//	en otro caso              → NORMAL
func Classify(current, min decimal.Decimal) Status {
	if current.LessThanOrEqual(decimal.Zero) {
		return StatusCritical
	}
	if current.LessThanOrEqual(min.Mul(warningMultiplier)) {
		return StatusWarning
	}
	return StatusNormal
}

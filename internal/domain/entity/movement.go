package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock. Los valores son el contrato de wire
// contra los datos existentes: no cambiar.
const (
	MovementTypeIn         = "in"         // entrada
	MovementTypeOut        = "out"        // salida
	MovementTypeAdjustment = "adjustment" // ajuste absoluto (conteo físico)
)

// ValidMovementType reporta si s es uno de los tres tipos conocidos.
func ValidMovementType(s string) bool {
	return s == MovementTypeIn || s == MovementTypeOut || s == MovementTypeAdjustment
}

// StockMovement es el registro inmutable de un cambio de cantidad.
// ID y Timestamp los asigna el ledger al momento del append: el ID es
// estrictamente creciente en todo el libro y el Timestamp nunca retrocede.
// Quantity guarda la magnitud tal como fue solicitada, incluso cuando una
// salida se recorta a cero; el tipo distingue el signo del efecto.
type StockMovement struct {
	ID        int64
	ItemID    string
	Type      string
	Quantity  decimal.Decimal
	Reference string
	Notes     string
	ActorID   *string // usuario autenticado; nil si anónimo
	Timestamp time.Time
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de materia prima.
const (
	CategoryRawMaterial = "raw_material"
	CategoryPackaging   = "packaging"
	CategoryChemical    = "chemical"
	CategoryComponent   = "component"
	CategoryOther       = "other"
)

// Unidades de medida soportadas.
const (
	UnitKilogram   = "kg"
	UnitGram       = "g"
	UnitLiter      = "L"
	UnitMilliliter = "mL"
	UnitPiece      = "pc"
	UnitMeter      = "m"
	UnitCentimeter = "cm"
)

// Item representa una materia prima del catálogo.
// CurrentQuantity es la proyección autoritativa del libro de movimientos:
// SOLO el ledger la muta; categoria y unidad son etiquetas informativas.
type Item struct {
	ID              string
	Name            string
	Description     string
	SKU             string // único en todo el catálogo
	Category        string
	Unit            string
	CurrentQuantity decimal.Decimal // nunca negativa
	MinQuantity     decimal.Decimal // umbral de reorden
	ReorderQuantity decimal.Decimal
	UnitCost        decimal.Decimal
	SupplierID      *string // referencia débil, puede ser nil
	WarehouseID     *string // referencia débil, puede ser nil
	CreatedBy       *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

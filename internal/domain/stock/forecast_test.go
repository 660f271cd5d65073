package stock_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/stock-monitor/internal/domain/stock"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// Sin consumo medible la fecha es el centinela "now + 30 días" exacto.
func TestShortageDate_SinConsumo_Centinela(t *testing.T) {
	current := decimal.RequireFromString("100")

	got := stock.ShortageDate(testNow, current, decimal.Zero)
	assert.Equal(t, testNow.AddDate(0, 0, stock.FallbackDays), got)

	// Consumo negativo cae en el mismo centinela.
	got = stock.ShortageDate(testNow, current, decimal.RequireFromString("-5"))
	assert.Equal(t, testNow.AddDate(0, 0, stock.FallbackDays), got)
}

// Ítem ya agotado: el quiebre es ahora, no en el futuro.
func TestShortageDate_SinStock_EsAhora(t *testing.T) {
	usage := decimal.RequireFromString("10")

	got := stock.ShortageDate(testNow, decimal.Zero, usage)
	assert.Equal(t, testNow, got)

	got = stock.ShortageDate(testNow, decimal.RequireFromString("-1"), usage)
	assert.Equal(t, testNow, got)
}

// Extrapolación lineal: 100 unidades a 10/día se agotan en 10 días.
func TestShortageDate_ExtrapolacionLineal(t *testing.T) {
	got := stock.ShortageDate(testNow,
		decimal.RequireFromString("100"),
		decimal.RequireFromString("10"))
	assert.Equal(t, testNow.AddDate(0, 0, 10), got)
}

// El cociente fraccional no se trunca a días enteros: 5 unidades a 2/día
// son 2.5 días, es decir 60 horas.
func TestShortageDate_DiasFraccionales(t *testing.T) {
	got := stock.ShortageDate(testNow,
		decimal.RequireFromString("5"),
		decimal.RequireFromString("2"))
	assert.Equal(t, testNow.Add(60*time.Hour), got)
}

// La fecha de quiebre nunca es anterior a now, para cualquier combinación.
func TestShortageDate_NuncaEnElPasado(t *testing.T) {
	quantities := []string{"-10", "0", "0.001", "1", "500", "100000"}
	usages := []string{"-1", "0", "0.5", "3", "1000"}

	for _, q := range quantities {
		for _, u := range usages {
			got := stock.ShortageDate(testNow,
				decimal.RequireFromString(q),
				decimal.RequireFromString(u))
			assert.False(t, got.Before(testNow),
				"quiebre en el pasado para current=%s usage=%s", q, u)
		}
	}
}

func TestAverageDailyUsage(t *testing.T) {
	// 300 unidades en 30 días → 10/día.
	got := stock.AverageDailyUsage(decimal.RequireFromString("300"), 30)
	assert.True(t, got.Equal(decimal.RequireFromString("10")), "got %s", got)

	// Sin salidas → cero.
	assert.True(t, stock.AverageDailyUsage(decimal.Zero, 30).IsZero())

	// Ventana degenerada → cero, nunca división por cero.
	assert.True(t, stock.AverageDailyUsage(decimal.RequireFromString("300"), 0).IsZero())
	assert.True(t, stock.AverageDailyUsage(decimal.RequireFromString("300"), -5).IsZero())
}

package forecast_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/stock-monitor/internal/application/forecast"
	"github.com/tu-usuario/stock-monitor/internal/domain"
	"github.com/tu-usuario/stock-monitor/internal/domain/entity"
	"github.com/tu-usuario/stock-monitor/internal/domain/repository"
	"github.com/tu-usuario/stock-monitor/internal/domain/stock"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs
// ──────────────────────────────────────────────────────────────────────────────

type stubItemRepo struct {
	items map[string]*entity.Item
}

func (r *stubItemRepo) Create(*entity.Item) error { return nil }

func (r *stubItemRepo) GetByID(id string) (*entity.Item, error) {
	return r.items[id], nil
}

func (r *stubItemRepo) GetBySKU(string) (*entity.Item, error)         { return nil, nil }
func (r *stubItemRepo) GetByIDForUpdate(string) (*entity.Item, error) { return nil, nil }
func (r *stubItemRepo) UpdateQuantity(string, decimal.Decimal, time.Time) error {
	return nil
}
func (r *stubItemRepo) Update(*entity.Item) error { return nil }
func (r *stubItemRepo) Delete(string) error       { return nil }

func (r *stubItemRepo) List(repository.ItemFilter, int, int) ([]*entity.Item, error) {
	out := make([]*entity.Item, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	return out, nil
}

// stubMovementRepo responde SumOutSince con un total fijo por ítem.
type stubMovementRepo struct {
	outTotals map[string]decimal.Decimal
}

func (r *stubMovementRepo) Append(*entity.StockMovement) error { return nil }
func (r *stubMovementRepo) LastTimestamp() (time.Time, error)  { return time.Time{}, nil }
func (r *stubMovementRepo) ListByItem(string, int, int) ([]*entity.StockMovement, error) {
	return nil, nil
}
func (r *stubMovementRepo) ListByItemSince(string, time.Time) ([]*entity.StockMovement, error) {
	return nil, nil
}

func (r *stubMovementRepo) SumOutSince(itemID string, _ time.Time) (decimal.Decimal, error) {
	if total, ok := r.outTotals[itemID]; ok {
		return total, nil
	}
	return decimal.Zero, nil
}

func forecastItem(id, current, min string) *entity.Item {
	return &entity.Item{
		ID:              id,
		Name:            "Ítem " + id,
		SKU:             "SKU-" + id,
		CurrentQuantity: decimal.RequireFromString(current),
		MinQuantity:     decimal.RequireFromString(min),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Consumo derivado del libro: 300 de salida en 30 días → 10/día, 100 unidades
// duran ~10 días.
func TestPredictShortage_ConsumoDesdeElLibro(t *testing.T) {
	itemRepo := &stubItemRepo{items: map[string]*entity.Item{
		"item-1": forecastItem("item-1", "100", "20"),
	}}
	movRepo := &stubMovementRepo{outTotals: map[string]decimal.Decimal{
		"item-1": decimal.RequireFromString("300"),
	}}
	uc := forecast.NewUseCase(itemRepo, movRepo)

	before := time.Now().UTC()
	got, err := uc.PredictShortage("item-1", 30, nil)
	require.NoError(t, err)

	expected := before.AddDate(0, 0, 10)
	assert.WithinDuration(t, expected, got, time.Minute)
}

// Un consumo explícito del llamador omite el cálculo desde el libro.
func TestPredictShortage_ConsumoExplicito(t *testing.T) {
	itemRepo := &stubItemRepo{items: map[string]*entity.Item{
		"item-1": forecastItem("item-1", "50", "20"),
	}}
	uc := forecast.NewUseCase(itemRepo, &stubMovementRepo{})

	usage := decimal.RequireFromString("25")
	before := time.Now().UTC()
	got, err := uc.PredictShortage("item-1", 30, &usage)
	require.NoError(t, err)

	assert.WithinDuration(t, before.AddDate(0, 0, 2), got, time.Minute)
}

// Sin salidas registradas la fecha es el centinela "ahora + 30 días".
func TestPredictShortage_SinSalidas_Centinela(t *testing.T) {
	itemRepo := &stubItemRepo{items: map[string]*entity.Item{
		"item-1": forecastItem("item-1", "100", "20"),
	}}
	uc := forecast.NewUseCase(itemRepo, &stubMovementRepo{})

	before := time.Now().UTC()
	got, err := uc.PredictShortage("item-1", 30, nil)
	require.NoError(t, err)

	assert.WithinDuration(t, before.AddDate(0, 0, stock.FallbackDays), got, time.Minute)
}

func TestPredictShortage_ItemInexistente(t *testing.T) {
	uc := forecast.NewUseCase(&stubItemRepo{items: map[string]*entity.Item{}}, &stubMovementRepo{})

	_, err := uc.PredictShortage("no-existe", 30, nil)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

// PredictAll cubre todo el catálogo y adjunta el semáforo de cada ítem.
func TestPredictAll_TodoElCatalogo(t *testing.T) {
	itemRepo := &stubItemRepo{items: map[string]*entity.Item{
		"item-1": forecastItem("item-1", "100", "20"), // green, con consumo
		"item-2": forecastItem("item-2", "0", "20"),   // red, sin consumo
	}}
	movRepo := &stubMovementRepo{outTotals: map[string]decimal.Decimal{
		"item-1": decimal.RequireFromString("60"),
	}}
	uc := forecast.NewUseCase(itemRepo, movRepo)

	predictions, err := uc.PredictAll(30)
	require.NoError(t, err)
	require.Len(t, predictions, 2)

	byID := map[string]int{}
	for i, p := range predictions {
		byID[p.ItemID] = i
	}

	withUsage := predictions[byID["item-1"]]
	assert.True(t, withUsage.AvgDailyUsage.Equal(decimal.RequireFromString("2")))
	assert.Equal(t, "green", withUsage.Status)

	exhausted := predictions[byID["item-2"]]
	assert.True(t, exhausted.AvgDailyUsage.IsZero())
	assert.Equal(t, "red", exhausted.Status)
	// Sin consumo, incluso agotado, aplica el centinela de 30 días.
	assert.WithinDuration(t, time.Now().UTC().AddDate(0, 0, stock.FallbackDays),
		exhausted.ShortageDate, time.Minute)
}

package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/stock-monitor/internal/application/ledger"
	"github.com/tu-usuario/stock-monitor/internal/domain"
	"github.com/tu-usuario/stock-monitor/internal/domain/entity"
	"github.com/tu-usuario/stock-monitor/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeItemRepo struct {
	items map[string]*entity.Item
}

func newFakeItemRepo(items ...*entity.Item) *fakeItemRepo {
	r := &fakeItemRepo{items: map[string]*entity.Item{}}
	for _, item := range items {
		copied := *item
		r.items[item.ID] = &copied
	}
	return r
}

func (r *fakeItemRepo) clone() *fakeItemRepo {
	c := &fakeItemRepo{items: map[string]*entity.Item{}}
	for id, item := range r.items {
		copied := *item
		c.items[id] = &copied
	}
	return c
}

func (r *fakeItemRepo) restore(from *fakeItemRepo) { r.items = from.items }

func (r *fakeItemRepo) Create(item *entity.Item) error {
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	copied := *item
	return &copied, nil
}

func (r *fakeItemRepo) GetBySKU(sku string) (*entity.Item, error) {
	for _, item := range r.items {
		if item.SKU == sku {
			copied := *item
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeItemRepo) GetByIDForUpdate(id string) (*entity.Item, error) {
	return r.GetByID(id)
}

func (r *fakeItemRepo) UpdateQuantity(id string, quantity decimal.Decimal, updatedAt time.Time) error {
	item, ok := r.items[id]
	if !ok {
		return domain.ErrItemNotFound
	}
	item.CurrentQuantity = quantity
	item.UpdatedAt = updatedAt
	return nil
}

func (r *fakeItemRepo) Update(item *entity.Item) error {
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *fakeItemRepo) List(_ repository.ItemFilter, _, _ int) ([]*entity.Item, error) {
	out := make([]*entity.Item, 0, len(r.items))
	for _, item := range r.items {
		copied := *item
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeItemRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

type fakeMovementRepo struct {
	movements []*entity.StockMovement
	appendErr error
}

func (r *fakeMovementRepo) Append(movement *entity.StockMovement) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	var maxID int64
	for _, m := range r.movements {
		if m.ID > maxID {
			maxID = m.ID
		}
	}
	movement.ID = maxID + 1
	copied := *movement
	r.movements = append(r.movements, &copied)
	return nil
}

func (r *fakeMovementRepo) LastTimestamp() (time.Time, error) {
	if len(r.movements) == 0 {
		return time.Time{}, nil
	}
	return r.movements[len(r.movements)-1].Timestamp, nil
}

func (r *fakeMovementRepo) ListByItem(itemID string, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.movements {
		if m.ItemID == itemID {
			out = append(out, m)
		}
	}
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeMovementRepo) ListByItemSince(itemID string, since time.Time) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.movements {
		if m.ItemID == itemID && !m.Timestamp.Before(since) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) SumOutSince(itemID string, since time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, m := range r.movements {
		if m.ItemID == itemID && m.Type == entity.MovementTypeOut && !m.Timestamp.Before(since) {
			total = total.Add(m.Quantity)
		}
	}
	return total, nil
}

// fakeTxRunner ejecuta fn sobre los repos y descarta las mutaciones de ítems
// si fn falla, imitando el rollback de la transacción real.
type fakeTxRunner struct {
	itemRepo *fakeItemRepo
	movRepo  *fakeMovementRepo
}

func (tx *fakeTxRunner) Run(_ context.Context, fn func(repository.ItemRepository, repository.MovementRepository) error) error {
	snapshot := tx.itemRepo.clone()
	if err := fn(tx.itemRepo, tx.movRepo); err != nil {
		tx.itemRepo.restore(snapshot)
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func newTestLedger(items ...*entity.Item) (*ledger.UseCase, *fakeItemRepo, *fakeMovementRepo) {
	itemRepo := newFakeItemRepo(items...)
	movRepo := &fakeMovementRepo{}
	tx := &fakeTxRunner{itemRepo: itemRepo, movRepo: movRepo}
	return ledger.NewUseCase(tx, itemRepo, movRepo), itemRepo, movRepo
}

func testItem(id, sku, quantity string) *entity.Item {
	return &entity.Item{
		ID:              id,
		Name:            "Harina de trigo",
		SKU:             sku,
		CurrentQuantity: decimal.RequireFromString(quantity),
		MinQuantity:     decimal.RequireFromString("20"),
		Unit:            entity.UnitKilogram,
	}
}

func mustQuantity(t *testing.T, repo *fakeItemRepo, id string) decimal.Decimal {
	t.Helper()
	item, err := repo.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, item)
	return item.CurrentQuantity
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Apply
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_EntradaSumaCantidad(t *testing.T) {
	uc, itemRepo, _ := newTestLedger(testItem("item-1", "MP-001", "100"))

	mov, err := uc.Apply(context.Background(), ledger.ApplyInput{
		ItemID:   "item-1",
		Type:     entity.MovementTypeIn,
		Quantity: decimal.RequireFromString("25.5"),
	})
	require.NoError(t, err)
	require.NotNil(t, mov)

	assert.True(t, mustQuantity(t, itemRepo, "item-1").Equal(decimal.RequireFromString("125.5")))
	assert.Equal(t, entity.MovementTypeIn, mov.Type)
	assert.True(t, mov.Quantity.Equal(decimal.RequireFromString("25.5")))
}

func TestApply_SalidaRestaCantidad(t *testing.T) {
	uc, itemRepo, _ := newTestLedger(testItem("item-1", "MP-001", "100"))

	_, err := uc.Apply(context.Background(), ledger.ApplyInput{
		ItemID:   "item-1",
		Type:     entity.MovementTypeOut,
		Quantity: decimal.RequireFromString("40"),
	})
	require.NoError(t, err)

	assert.True(t, mustQuantity(t, itemRepo, "item-1").Equal(decimal.RequireFromString("60")))
}

// La salida que excede el stock se recorta a cero, pero el movimiento guarda
// la cantidad solicitada: el libro conserva la demanda real.
func TestApply_SalidaExcesivaRecortaACero(t *testing.T) {
	uc, itemRepo, _ := newTestLedger(testItem("item-1", "MP-001", "10"))

	mov, err := uc.Apply(context.Background(), ledger.ApplyInput{
		ItemID:   "item-1",
		Type:     entity.MovementTypeOut,
		Quantity: decimal.RequireFromString("35"),
	})
	require.NoError(t, err)

	assert.True(t, mustQuantity(t, itemRepo, "item-1").IsZero())
	assert.True(t, mov.Quantity.Equal(decimal.RequireFromString("35")),
		"el movimiento debe conservar la cantidad solicitada, no la aplicada")
}

// adjustment fija el valor absoluto, incluido cero.
func TestApply_AjusteFijaValorAbsoluto(t *testing.T) {
	uc, itemRepo, _ := newTestLedger(testItem("item-1", "MP-001", "100"))

	_, err := uc.Apply(context.Background(), ledger.ApplyInput{
		ItemID:   "item-1",
		Type:     entity.MovementTypeAdjustment,
		Quantity: decimal.RequireFromString("73.25"),
	})
	require.NoError(t, err)
	assert.True(t, mustQuantity(t, itemRepo, "item-1").Equal(decimal.RequireFromString("73.25")))

	_, err = uc.Apply(context.Background(), ledger.ApplyInput{
		ItemID:   "item-1",
		Type:     entity.MovementTypeAdjustment,
		Quantity: decimal.Zero,
	})
	require.NoError(t, err)
	assert.True(t, mustQuantity(t, itemRepo, "item-1").IsZero())
}

func TestApply_ValidacionDeEntrada(t *testing.T) {
	uc, _, _ := newTestLedger(testItem("item-1", "MP-001", "100"))

	// Tipo desconocido.
	_, err := uc.Apply(context.Background(), ledger.ApplyInput{
		ItemID: "item-1", Type: "transfer", Quantity: decimal.NewFromInt(5),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// in/out requieren cantidad positiva.
	for _, mt := range []string{entity.MovementTypeIn, entity.MovementTypeOut} {
		_, err = uc.Apply(context.Background(), ledger.ApplyInput{
			ItemID: "item-1", Type: mt, Quantity: decimal.Zero,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "tipo %s con cantidad cero", mt)

		_, err = uc.Apply(context.Background(), ledger.ApplyInput{
			ItemID: "item-1", Type: mt, Quantity: decimal.NewFromInt(-3),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "tipo %s con cantidad negativa", mt)
	}

	// adjustment admite cero pero no negativos.
	_, err = uc.Apply(context.Background(), ledger.ApplyInput{
		ItemID: "item-1", Type: entity.MovementTypeAdjustment, Quantity: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestApply_ItemInexistente(t *testing.T) {
	uc, _, movRepo := newTestLedger(testItem("item-1", "MP-001", "100"))

	_, err := uc.Apply(context.Background(), ledger.ApplyInput{
		ItemID:   "no-existe",
		Type:     entity.MovementTypeIn,
		Quantity: decimal.NewFromInt(5),
	})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.Empty(t, movRepo.movements, "un Apply fallido no debe dejar movimientos")
}

// Los IDs del libro son estrictamente crecientes en todo el libro, incluso
// mezclando movimientos de ítems distintos.
func TestApply_IDsEstrictamenteCrecientes(t *testing.T) {
	uc, _, movRepo := newTestLedger(
		testItem("item-1", "MP-001", "100"),
		testItem("item-2", "MP-002", "100"),
	)

	ids := []string{"item-1", "item-2", "item-1", "item-2", "item-1"}
	for _, id := range ids {
		_, err := uc.Apply(context.Background(), ledger.ApplyInput{
			ItemID: id, Type: entity.MovementTypeIn, Quantity: decimal.NewFromInt(1),
		})
		require.NoError(t, err)
	}

	require.Len(t, movRepo.movements, len(ids))
	for i := 1; i < len(movRepo.movements); i++ {
		assert.Greater(t, movRepo.movements[i].ID, movRepo.movements[i-1].ID)
	}
}

// Los timestamps del libro nunca retroceden en orden de ID.
func TestApply_TimestampsNoDecrecientes(t *testing.T) {
	uc, _, movRepo := newTestLedger(testItem("item-1", "MP-001", "100"))

	for i := 0; i < 5; i++ {
		_, err := uc.Apply(context.Background(), ledger.ApplyInput{
			ItemID: "item-1", Type: entity.MovementTypeIn, Quantity: decimal.NewFromInt(1),
		})
		require.NoError(t, err)
	}

	for i := 1; i < len(movRepo.movements); i++ {
		assert.False(t, movRepo.movements[i].Timestamp.Before(movRepo.movements[i-1].Timestamp))
	}
}

// Si el append del movimiento falla, la cantidad del ítem no cambia: o ambos
// efectos quedan o ninguno.
func TestApply_FalloDeAppendRevierteCantidad(t *testing.T) {
	uc, itemRepo, movRepo := newTestLedger(testItem("item-1", "MP-001", "100"))
	movRepo.appendErr = errors.New("disco lleno")

	_, err := uc.Apply(context.Background(), ledger.ApplyInput{
		ItemID:   "item-1",
		Type:     entity.MovementTypeIn,
		Quantity: decimal.NewFromInt(50),
	})
	require.Error(t, err)

	assert.True(t, mustQuantity(t, itemRepo, "item-1").Equal(decimal.RequireFromString("100")),
		"la cantidad debe quedar intacta si el movimiento no se confirmó")
	assert.Empty(t, movRepo.movements)
}

// Reproducir el libro desde la cantidad inicial del ítem llega exactamente a
// la cantidad actual: el libro es la única fuente de mutación.
func TestApply_ReproducirLibroEquivaleAlEstado(t *testing.T) {
	uc, itemRepo, movRepo := newTestLedger(testItem("item-1", "MP-001", "100"))

	inputs := []ledger.ApplyInput{
		{ItemID: "item-1", Type: entity.MovementTypeIn, Quantity: decimal.RequireFromString("30")},
		{ItemID: "item-1", Type: entity.MovementTypeOut, Quantity: decimal.RequireFromString("45.5")},
		{ItemID: "item-1", Type: entity.MovementTypeAdjustment, Quantity: decimal.RequireFromString("200")},
		{ItemID: "item-1", Type: entity.MovementTypeOut, Quantity: decimal.RequireFromString("500")}, // recorte a cero
		{ItemID: "item-1", Type: entity.MovementTypeIn, Quantity: decimal.RequireFromString("12.75")},
	}
	for _, in := range inputs {
		_, err := uc.Apply(context.Background(), in)
		require.NoError(t, err)
	}

	// Reproducción manual con la misma semántica.
	replayed := decimal.RequireFromString("100")
	for _, m := range movRepo.movements {
		switch m.Type {
		case entity.MovementTypeIn:
			replayed = replayed.Add(m.Quantity)
		case entity.MovementTypeOut:
			replayed = replayed.Sub(m.Quantity)
			if replayed.IsNegative() {
				replayed = decimal.Zero
			}
		case entity.MovementTypeAdjustment:
			replayed = m.Quantity
		}
	}

	assert.True(t, mustQuantity(t, itemRepo, "item-1").Equal(replayed))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests History / ListRecent
// ──────────────────────────────────────────────────────────────────────────────

func TestHistory_OrdenYPaginacion(t *testing.T) {
	uc, _, _ := newTestLedger(testItem("item-1", "MP-001", "100"))

	for i := 0; i < 6; i++ {
		_, err := uc.Apply(context.Background(), ledger.ApplyInput{
			ItemID: "item-1", Type: entity.MovementTypeIn, Quantity: decimal.NewFromInt(int64(i + 1)),
		})
		require.NoError(t, err)
	}

	all, err := uc.History("item-1", 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 6)
	for i := 1; i < len(all); i++ {
		assert.Greater(t, all[i].ID, all[i-1].ID, "el historial va del más antiguo al más reciente")
	}

	page, err := uc.History("item-1", 2, 3)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, all[3].ID, page[0].ID)

	_, err = uc.History("no-existe", 0, 0)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestListRecent_FiltraPorVentana(t *testing.T) {
	uc, _, movRepo := newTestLedger(testItem("item-1", "MP-001", "100"))

	old := &entity.StockMovement{
		ItemID:    "item-1",
		Type:      entity.MovementTypeOut,
		Quantity:  decimal.NewFromInt(5),
		Timestamp: time.Now().UTC().AddDate(0, 0, -60),
	}
	require.NoError(t, movRepo.Append(old))

	_, err := uc.Apply(context.Background(), ledger.ApplyInput{
		ItemID: "item-1", Type: entity.MovementTypeIn, Quantity: decimal.NewFromInt(1),
	})
	require.NoError(t, err)

	recent, err := uc.ListRecent("item-1", time.Now().UTC().AddDate(0, 0, -30))
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, entity.MovementTypeIn, recent[0].Type)

	_, err = uc.ListRecent("no-existe", time.Now())
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

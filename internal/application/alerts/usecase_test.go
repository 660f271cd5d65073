package alerts_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/stock-monitor/internal/application/alerts"
	"github.com/tu-usuario/stock-monitor/internal/domain"
	"github.com/tu-usuario/stock-monitor/internal/domain/entity"
	"github.com/tu-usuario/stock-monitor/internal/domain/repository"
)

// stubItemRepo implementa solo List; el agregador de alertas no usa nada más.
type stubItemRepo struct {
	items []*entity.Item
}

func (r *stubItemRepo) Create(*entity.Item) error                  { return nil }
func (r *stubItemRepo) GetByID(string) (*entity.Item, error)       { return nil, nil }
func (r *stubItemRepo) GetBySKU(string) (*entity.Item, error)      { return nil, nil }
func (r *stubItemRepo) GetByIDForUpdate(string) (*entity.Item, error) {
	return nil, nil
}
func (r *stubItemRepo) UpdateQuantity(string, decimal.Decimal, time.Time) error { return nil }
func (r *stubItemRepo) Update(*entity.Item) error                               { return nil }
func (r *stubItemRepo) Delete(string) error                                     { return nil }

func (r *stubItemRepo) List(filter repository.ItemFilter, _, _ int) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, item := range r.items {
		if filter.SupplierID != "" && (item.SupplierID == nil || *item.SupplierID != filter.SupplierID) {
			continue
		}
		if filter.WarehouseID != "" && (item.WarehouseID == nil || *item.WarehouseID != filter.WarehouseID) {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func alertItem(id, name, current, min string, supplierID, warehouseID *string) *entity.Item {
	return &entity.Item{
		ID:              id,
		Name:            name,
		SKU:             "SKU-" + id,
		CurrentQuantity: decimal.RequireFromString(current),
		MinQuantity:     decimal.RequireFromString(min),
		SupplierID:      supplierID,
		WarehouseID:     warehouseID,
	}
}

func strPtr(s string) *string { return &s }

// Sin filtro de status solo aparecen los ítems en yellow o red.
func TestListAlerts_SinFiltroExcluyeGreen(t *testing.T) {
	repo := &stubItemRepo{items: []*entity.Item{
		alertItem("a", "Harina", "150", "50", nil, nil),  // green
		alertItem("b", "Azúcar", "30", "50", nil, nil),   // yellow
		alertItem("c", "Levadura", "0", "10", nil, nil),  // red
	}}
	uc := alerts.NewUseCase(repo)

	list, err := uc.ListAlerts(alerts.Filter{})
	require.NoError(t, err)
	require.Len(t, list, 2)

	statuses := map[string]string{}
	for _, a := range list {
		statuses[a.ItemID] = a.Status
	}
	assert.Equal(t, "yellow", statuses["b"])
	assert.Equal(t, "red", statuses["c"])
}

// Un filtro de status explícito devuelve exactamente ese estado, incluido green.
func TestListAlerts_FiltroExplicitoIncluyeGreen(t *testing.T) {
	repo := &stubItemRepo{items: []*entity.Item{
		alertItem("a", "Harina", "150", "50", nil, nil),
		alertItem("b", "Azúcar", "30", "50", nil, nil),
	}}
	uc := alerts.NewUseCase(repo)

	list, err := uc.ListAlerts(alerts.Filter{Status: "green"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "a", list[0].ItemID)
	assert.Equal(t, "green", list[0].Status)
}

func TestListAlerts_StatusInvalido(t *testing.T) {
	uc := alerts.NewUseCase(&stubItemRepo{})

	_, err := uc.ListAlerts(alerts.Filter{Status: "amarillo"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Los filtros de proveedor y bodega se combinan con AND.
func TestListAlerts_FiltrosCombinadosConAND(t *testing.T) {
	repo := &stubItemRepo{items: []*entity.Item{
		alertItem("a", "Harina", "5", "50", strPtr("prov-1"), strPtr("bod-1")),
		alertItem("b", "Azúcar", "5", "50", strPtr("prov-1"), strPtr("bod-2")),
		alertItem("c", "Levadura", "5", "50", strPtr("prov-2"), strPtr("bod-1")),
	}}
	uc := alerts.NewUseCase(repo)

	list, err := uc.ListAlerts(alerts.Filter{SupplierID: "prov-1", WarehouseID: "bod-1"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "a", list[0].ItemID)
}

// Catálogo completamente sano: lista vacía, no nil ni error.
func TestListAlerts_CatalogoSano(t *testing.T) {
	repo := &stubItemRepo{items: []*entity.Item{
		alertItem("a", "Harina", "500", "50", nil, nil),
	}}
	uc := alerts.NewUseCase(repo)

	list, err := uc.ListAlerts(alerts.Filter{})
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

package report_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/stock-monitor/internal/application/report"
	"github.com/tu-usuario/stock-monitor/internal/domain/entity"
	"github.com/tu-usuario/stock-monitor/internal/domain/repository"
)

type stubItemRepo struct {
	items []*entity.Item
}

func (r *stubItemRepo) Create(*entity.Item) error                     { return nil }
func (r *stubItemRepo) GetByID(string) (*entity.Item, error)          { return nil, nil }
func (r *stubItemRepo) GetBySKU(string) (*entity.Item, error)         { return nil, nil }
func (r *stubItemRepo) GetByIDForUpdate(string) (*entity.Item, error) { return nil, nil }
func (r *stubItemRepo) UpdateQuantity(string, decimal.Decimal, time.Time) error {
	return nil
}
func (r *stubItemRepo) Update(*entity.Item) error { return nil }
func (r *stubItemRepo) Delete(string) error       { return nil }
func (r *stubItemRepo) List(repository.ItemFilter, int, int) ([]*entity.Item, error) {
	return r.items, nil
}

type stubSupplierRepo struct {
	suppliers map[string]*entity.Supplier
	calls     int
}

func (r *stubSupplierRepo) Create(*entity.Supplier) error { return nil }
func (r *stubSupplierRepo) List(int, int) ([]*entity.Supplier, error) {
	return nil, nil
}
func (r *stubSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	r.calls++
	return r.suppliers[id], nil
}

type stubWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func (r *stubWarehouseRepo) Create(*entity.Warehouse) error { return nil }
func (r *stubWarehouseRepo) List(int, int) ([]*entity.Warehouse, error) {
	return nil, nil
}
func (r *stubWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return r.warehouses[id], nil
}

func strPtr(s string) *string { return &s }

func reportFixture() (*stubItemRepo, *stubSupplierRepo, *stubWarehouseRepo) {
	items := &stubItemRepo{items: []*entity.Item{
		{
			ID: "item-1", Name: "Harina", SKU: "MP-001",
			CurrentQuantity: decimal.RequireFromString("150"),
			MinQuantity:     decimal.RequireFromString("50"),
			SupplierID:      strPtr("prov-1"),
			WarehouseID:     strPtr("bod-1"),
		},
		{
			ID: "item-2", Name: "Azúcar", SKU: "MP-002",
			CurrentQuantity: decimal.Zero,
			MinQuantity:     decimal.RequireFromString("30"),
			SupplierID:      strPtr("prov-1"),
		},
	}}
	suppliers := &stubSupplierRepo{suppliers: map[string]*entity.Supplier{
		"prov-1": {ID: "prov-1", Name: "Molinos del Sur"},
	}}
	warehouses := &stubWarehouseRepo{warehouses: map[string]*entity.Warehouse{
		"bod-1": {ID: "bod-1", Name: "Bodega Central"},
	}}
	return items, suppliers, warehouses
}

// Las referencias débiles se resuelven a nombre y el estado va derivado.
func TestStockLevels_ResuelveNombresYEstado(t *testing.T) {
	items, suppliers, warehouses := reportFixture()
	uc := report.NewUseCase(items, suppliers, warehouses, nil)

	rows, err := uc.StockLevels()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Molinos del Sur", rows[0].Supplier)
	assert.Equal(t, "Bodega Central", rows[0].Warehouse)
	assert.Equal(t, "green", rows[0].Status)

	assert.Equal(t, "Molinos del Sur", rows[1].Supplier)
	assert.Empty(t, rows[1].Warehouse)
	assert.Equal(t, "red", rows[1].Status)

	// El mismo proveedor no se resuelve dos veces.
	assert.Equal(t, 1, suppliers.calls)
}

// El CSV conserva el orden exacto de columnas del export existente.
func TestStockLevelsCSV_OrdenDeColumnas(t *testing.T) {
	items, suppliers, warehouses := reportFixture()
	uc := report.NewUseCase(items, suppliers, warehouses, nil)

	out, err := uc.StockLevelsCSV()
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,name,sku,current_quantity,min_quantity,status,warehouse,supplier", lines[0])
	assert.Equal(t, "item-1,Harina,MP-001,150,50,green,Bodega Central,Molinos del Sur", lines[1])
	assert.Equal(t, "item-2,Azúcar,MP-002,0,30,red,,Molinos del Sur", lines[2])
}

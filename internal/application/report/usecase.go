package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stock-monitor/internal/domain/repository"
	"github.com/tu-usuario/stock-monitor/internal/domain/stock"
)

// StockLevelRow una fila del reporte de niveles de stock, con las referencias
// débiles de proveedor/bodega ya resueltas a nombre (vacío si no aplica).
type StockLevelRow struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	SKU             string          `json:"sku"`
	CurrentQuantity decimal.Decimal `json:"current_quantity"`
	MinQuantity     decimal.Decimal `json:"min_quantity"`
	Status          string          `json:"status"`
	Warehouse       string          `json:"warehouse,omitempty"`
	Supplier        string          `json:"supplier,omitempty"`
}

// PDFGenerator puerto para renderizar el reporte como PDF.
type PDFGenerator interface {
	GenerateStockReportPDF(ctx context.Context, rows []StockLevelRow) ([]byte, error)
}

// UseCase genera el reporte de niveles de stock en JSON, CSV o PDF.
type UseCase struct {
	itemRepo      repository.ItemRepository
	supplierRepo  repository.SupplierRepository
	warehouseRepo repository.WarehouseRepository
	pdfGenerator  PDFGenerator
}

// NewUseCase construye el caso de uso de reportes.
func NewUseCase(
	itemRepo repository.ItemRepository,
	supplierRepo repository.SupplierRepository,
	warehouseRepo repository.WarehouseRepository,
	pdfGenerator PDFGenerator,
) *UseCase {
	return &UseCase{
		itemRepo:      itemRepo,
		supplierRepo:  supplierRepo,
		warehouseRepo: warehouseRepo,
		pdfGenerator:  pdfGenerator,
	}
}

// StockLevels devuelve una fila por ítem del catálogo con su estado derivado.
func (uc *UseCase) StockLevels() ([]StockLevelRow, error) {
	items, err := uc.itemRepo.List(repository.ItemFilter{}, 0, 0)
	if err != nil {
		return nil, err
	}

	// Cache local de nombres para no resolver la misma referencia dos veces.
	supplierNames := map[string]string{}
	warehouseNames := map[string]string{}

	rows := make([]StockLevelRow, 0, len(items))
	for _, item := range items {
		row := StockLevelRow{
			ID:              item.ID,
			Name:            item.Name,
			SKU:             item.SKU,
			CurrentQuantity: item.CurrentQuantity,
			MinQuantity:     item.MinQuantity,
			Status:          string(stock.Classify(item.CurrentQuantity, item.MinQuantity)),
		}
		if item.SupplierID != nil {
			name, ok := supplierNames[*item.SupplierID]
			if !ok {
				if s, err := uc.supplierRepo.GetByID(*item.SupplierID); err == nil && s != nil {
					name = s.Name
				}
				supplierNames[*item.SupplierID] = name
			}
			row.Supplier = name
		}
		if item.WarehouseID != nil {
			name, ok := warehouseNames[*item.WarehouseID]
			if !ok {
				if w, err := uc.warehouseRepo.GetByID(*item.WarehouseID); err == nil && w != nil {
					name = w.Name
				}
				warehouseNames[*item.WarehouseID] = name
			}
			row.Warehouse = name
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// StockLevelsCSV serializa el reporte como CSV con las columnas del export
// original: id,name,sku,current_quantity,min_quantity,status,warehouse,supplier.
func (uc *UseCase) StockLevelsCSV() (string, error) {
	rows, err := uc.StockLevels()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"id", "name", "sku", "current_quantity", "min_quantity", "status", "warehouse", "supplier"}); err != nil {
		return "", fmt.Errorf("escribir encabezado csv: %w", err)
	}
	for _, r := range rows {
		record := []string{
			r.ID, r.Name, r.SKU,
			r.CurrentQuantity.String(), r.MinQuantity.String(),
			r.Status, r.Warehouse, r.Supplier,
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("escribir fila csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	return buf.String(), nil
}

// StockLevelsPDF renderiza el reporte como PDF.
func (uc *UseCase) StockLevelsPDF(ctx context.Context) ([]byte, error) {
	rows, err := uc.StockLevels()
	if err != nil {
		return nil, err
	}
	return uc.pdfGenerator.GenerateStockReportPDF(ctx, rows)
}

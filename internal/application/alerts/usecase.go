package alerts

import (
	"github.com/tu-usuario/stock-monitor/internal/application/dto"
	"github.com/tu-usuario/stock-monitor/internal/domain"
	"github.com/tu-usuario/stock-monitor/internal/domain/repository"
	"github.com/tu-usuario/stock-monitor/internal/domain/stock"
)

// Filter restringe el listado de alertas. Los filtros se combinan con AND
// (coincidencia exacta). Status vacío = solo ítems en WARNING o CRITICAL.
type Filter struct {
	Status      string
	SupplierID  string
	WarehouseID string
}

// UseCase agrega las alertas de stock: clasifica cada ítem en alcance y
// devuelve los que requieren atención. Se calcula siempre desde el estado
// actual del catálogo, sin caché.
type UseCase struct {
	itemRepo repository.ItemRepository
}

// NewUseCase construye el agregador de alertas.
func NewUseCase(itemRepo repository.ItemRepository) *UseCase {
	return &UseCase{itemRepo: itemRepo}
}

// ListAlerts clasifica todos los ítems en alcance y devuelve los alertados.
// Sin filtro de status solo se incluyen ítems con estado distinto de NORMAL;
// un filtro de status explícito (incluido green) devuelve exactamente ese estado.
func (uc *UseCase) ListAlerts(filter Filter) ([]dto.StockAlertDTO, error) {
	if filter.Status != "" && !stock.ValidStatus(filter.Status) {
		return nil, domain.ErrInvalidInput
	}

	items, err := uc.itemRepo.List(repository.ItemFilter{
		SupplierID:  filter.SupplierID,
		WarehouseID: filter.WarehouseID,
	}, 0, 0)
	if err != nil {
		return nil, err
	}

	alerts := make([]dto.StockAlertDTO, 0)
	for _, item := range items {
		status := stock.Classify(item.CurrentQuantity, item.MinQuantity)
		if filter.Status == "" {
			if status == stock.StatusNormal {
				continue
			}
		} else if string(status) != filter.Status {
			continue
		}
		var warehouseID string
		if item.WarehouseID != nil {
			warehouseID = *item.WarehouseID
		}
		alerts = append(alerts, dto.StockAlertDTO{
			ItemID:          item.ID,
			ItemName:        item.Name,
			SKU:             item.SKU,
			CurrentQuantity: item.CurrentQuantity,
			MinQuantity:     item.MinQuantity,
			Status:          string(status),
			WarehouseID:     warehouseID,
		})
	}
	return alerts, nil
}

package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stock-monitor/internal/application/dto"
	"github.com/tu-usuario/stock-monitor/internal/domain"
	"github.com/tu-usuario/stock-monitor/internal/domain/entity"
	"github.com/tu-usuario/stock-monitor/internal/domain/repository"
	"github.com/tu-usuario/stock-monitor/internal/domain/stock"
)

// ItemUseCase casos de uso de catálogo para ítems. La cantidad inicial se fija
// al crear (cantidad de partida documentada); después de eso solo el ledger
// la muta vía movimientos.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// Create crea un ítem del catálogo. SKU único en todo el catálogo.
func (uc *ItemUseCase) Create(createdBy string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	existing, _ := uc.repo.GetBySKU(in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicateSKU
	}
	if in.CurrentQuantity.LessThan(decimal.Zero) || in.MinQuantity.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidQuantity
	}
	now := time.Now().UTC()
	var creator *string
	if createdBy != "" {
		creator = &createdBy
	}
	item := &entity.Item{
		ID:              uuid.New().String(),
		Name:            in.Name,
		Description:     in.Description,
		SKU:             in.SKU,
		Category:        in.Category,
		Unit:            in.Unit,
		CurrentQuantity: in.CurrentQuantity,
		MinQuantity:     in.MinQuantity,
		ReorderQuantity: in.ReorderQuantity,
		UnitCost:        in.UnitCost,
		SupplierID:      in.SupplierID,
		WarehouseID:     in.WarehouseID,
		CreatedBy:       creator,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return ToItemResponse(item), nil
}

// GetByID obtiene un ítem con su estado derivado.
func (uc *ItemUseCase) GetByID(id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	return ToItemResponse(item), nil
}

// GetStatus devuelve solo el semáforo de un ítem.
func (uc *ItemUseCase) GetStatus(id string) (string, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return "", err
	}
	if item == nil {
		return "", domain.ErrItemNotFound
	}
	return string(stock.Classify(item.CurrentQuantity, item.MinQuantity)), nil
}

// List lista ítems con filtros opcionales de proveedor/bodega y paginación.
func (uc *ItemUseCase) List(supplierID, warehouseID string, limit, offset int) ([]dto.ItemResponse, error) {
	items, err := uc.repo.List(repository.ItemFilter{SupplierID: supplierID, WarehouseID: warehouseID}, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, *ToItemResponse(item))
	}
	return out, nil
}

// Update actualiza los campos de catálogo de un ítem (nunca CurrentQuantity).
func (uc *ItemUseCase) Update(id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	if in.MinQuantity.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidQuantity
	}
	item.Name = in.Name
	item.Description = in.Description
	item.Category = in.Category
	item.Unit = in.Unit
	item.MinQuantity = in.MinQuantity
	item.ReorderQuantity = in.ReorderQuantity
	item.UnitCost = in.UnitCost
	item.SupplierID = in.SupplierID
	item.WarehouseID = in.WarehouseID
	item.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return ToItemResponse(item), nil
}

// Delete elimina un ítem del catálogo junto con su historial de movimientos.
func (uc *ItemUseCase) Delete(id string) error {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrItemNotFound
	}
	return uc.repo.Delete(id)
}

// ToItemResponse mapea la entidad al DTO calculando el estado derivado.
func ToItemResponse(item *entity.Item) *dto.ItemResponse {
	if item == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:              item.ID,
		Name:            item.Name,
		Description:     item.Description,
		SKU:             item.SKU,
		Category:        item.Category,
		Unit:            item.Unit,
		CurrentQuantity: item.CurrentQuantity,
		MinQuantity:     item.MinQuantity,
		ReorderQuantity: item.ReorderQuantity,
		UnitCost:        item.UnitCost,
		SupplierID:      item.SupplierID,
		WarehouseID:     item.WarehouseID,
		Status:          string(stock.Classify(item.CurrentQuantity, item.MinQuantity)),
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
}

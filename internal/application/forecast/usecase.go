package forecast

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stock-monitor/internal/application/dto"
	"github.com/tu-usuario/stock-monitor/internal/domain"
	"github.com/tu-usuario/stock-monitor/internal/domain/repository"
	"github.com/tu-usuario/stock-monitor/internal/domain/stock"
)

// DefaultLookbackDays ventana por defecto para calcular el consumo promedio.
const DefaultLookbackDays = 30

// UseCase estima fechas de quiebre de stock a partir del historial de salidas
// del ledger. Sin estado mutable: cada predicción se calcula sobre el snapshot
// actual de ítem + libro, nunca se cachea.
type UseCase struct {
	itemRepo repository.ItemRepository
	movRepo  repository.MovementRepository
}

// NewUseCase construye el predictor.
func NewUseCase(itemRepo repository.ItemRepository, movRepo repository.MovementRepository) *UseCase {
	return &UseCase{itemRepo: itemRepo, movRepo: movRepo}
}

// PredictShortage estima cuándo se agotará un ítem. Si avgDailyUsage es nil,
// lo deriva del libro: suma de salidas en la ventana de lookback dividida por
// los días de la ventana. lookbackDays <= 0 usa DefaultLookbackDays.
// Falla solo con ErrItemNotFound; para un ítem válido siempre devuelve una
// estimación de mejor esfuerzo, nunca anterior a ahora.
func (uc *UseCase) PredictShortage(itemID string, lookbackDays int, avgDailyUsage *decimal.Decimal) (time.Time, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return time.Time{}, err
	}
	if item == nil {
		return time.Time{}, domain.ErrItemNotFound
	}

	if lookbackDays <= 0 {
		lookbackDays = DefaultLookbackDays
	}
	usage := decimal.Zero
	if avgDailyUsage != nil {
		usage = *avgDailyUsage
	} else {
		usage, err = uc.usageFromLedger(itemID, lookbackDays)
		if err != nil {
			return time.Time{}, err
		}
	}
	return stock.ShortageDate(time.Now().UTC(), item.CurrentQuantity, usage), nil
}

// PredictAll estima la fecha de quiebre de todos los ítems del catálogo.
func (uc *UseCase) PredictAll(lookbackDays int) ([]dto.ShortagePredictionDTO, error) {
	if lookbackDays <= 0 {
		lookbackDays = DefaultLookbackDays
	}
	items, err := uc.itemRepo.List(repository.ItemFilter{}, 0, 0)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	predictions := make([]dto.ShortagePredictionDTO, 0, len(items))
	for _, item := range items {
		usage, err := uc.usageFromLedger(item.ID, lookbackDays)
		if err != nil {
			return nil, err
		}
		predictions = append(predictions, dto.ShortagePredictionDTO{
			ItemID:          item.ID,
			Name:            item.Name,
			SKU:             item.SKU,
			CurrentQuantity: item.CurrentQuantity,
			AvgDailyUsage:   usage,
			ShortageDate:    stock.ShortageDate(now, item.CurrentQuantity, usage),
			Status:          string(stock.Classify(item.CurrentQuantity, item.MinQuantity)),
		})
	}
	return predictions, nil
}

func (uc *UseCase) usageFromLedger(itemID string, lookbackDays int) (decimal.Decimal, error) {
	since := time.Now().UTC().AddDate(0, 0, -lookbackDays)
	totalOut, err := uc.movRepo.SumOutSince(itemID, since)
	if err != nil {
		return decimal.Zero, err
	}
	return stock.AverageDailyUsage(totalOut, lookbackDays), nil
}

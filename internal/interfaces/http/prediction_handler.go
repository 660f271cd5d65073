package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stock-monitor/internal/application/dto"
	"github.com/tu-usuario/stock-monitor/internal/application/forecast"
	"github.com/tu-usuario/stock-monitor/internal/domain"
)

// PredictionHandler maneja las predicciones de quiebre de stock (protegido).
type PredictionHandler struct {
	uc *forecast.UseCase
}

// NewPredictionHandler construye el handler.
func NewPredictionHandler(uc *forecast.UseCase) *PredictionHandler {
	return &PredictionHandler{uc: uc}
}

// ListShortageDates godoc
// @Summary      Fechas estimadas de quiebre para todo el catálogo
// @Description  Extrapola el consumo promedio diario de la ventana hacia atrás.
//
//	Sin consumo registrado la fecha es el centinela "hoy + 30 días".
//
// @Tags         predictions
// @Security     Bearer
// @Produce      json
// @Param        days_lookback  query  int  false  "Ventana hacia atrás en días (default 30)"
// @Success      200  {array}   dto.ShortagePredictionDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/predictions/shortage-dates [get]
func (h *PredictionHandler) ListShortageDates(c *fiber.Ctx) error {
	lookback := c.QueryInt("days_lookback", forecast.DefaultLookbackDays)
	if lookback <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "days_lookback debe ser mayor que cero"})
	}
	predictions, err := h.uc.PredictAll(lookback)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(predictions)
}

// GetShortageDate godoc
// @Summary      Fecha estimada de quiebre de un ítem
// @Tags         predictions
// @Security     Bearer
// @Produce      json
// @Param        id               path   string  true   "ID del ítem"
// @Param        days_lookback    query  int     false  "Ventana hacia atrás en días (default 30)"
// @Param        avg_daily_usage  query  number  false  "Consumo diario conocido; omite el cálculo desde el libro"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/predictions/shortage-dates/{id} [get]
func (h *PredictionHandler) GetShortageDate(c *fiber.Ctx) error {
	lookback := c.QueryInt("days_lookback", forecast.DefaultLookbackDays)
	if lookback <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "days_lookback debe ser mayor que cero"})
	}

	var usage *decimal.Decimal
	if raw := c.Query("avg_daily_usage"); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil || parsed.IsNegative() {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "avg_daily_usage debe ser un número no negativo"})
		}
		usage = &parsed
	}

	itemID := c.Params("id")
	shortageDate, err := h.uc.PredictShortage(itemID, lookback, usage)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ítem no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{
		"item_id":       itemID,
		"shortage_date": shortageDate,
	})
}

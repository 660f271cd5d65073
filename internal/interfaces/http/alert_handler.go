package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-monitor/internal/application/alerts"
	"github.com/tu-usuario/stock-monitor/internal/application/dto"
	"github.com/tu-usuario/stock-monitor/internal/domain"
)

// AlertHandler maneja las alertas de stock (protegido).
type AlertHandler struct {
	uc *alerts.UseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *alerts.UseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// List godoc
// @Summary      Alertas de stock
// @Description  Sin filtro de status devuelve solo los ítems en yellow o red.
//
//	Un filtro de status explícito (incluido green) devuelve
//	exactamente los ítems con ese estado. Los filtros se combinan
//	con AND.
//
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        status        query  string  false  "green | yellow | red"
// @Param        supplier_id   query  string  false  "Filtrar por proveedor (UUID)"
// @Param        warehouse_id  query  string  false  "Filtrar por bodega (UUID)"
// @Success      200  {array}   dto.StockAlertDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock-alerts [get]
func (h *AlertHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.ListAlerts(alerts.Filter{
		Status:      c.Query("status"),
		SupplierID:  c.Query("supplier_id"),
		WarehouseID: c.Query("warehouse_id"),
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status debe ser green, yellow o red"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{
		"total":  len(list),
		"alerts": list,
	})
}

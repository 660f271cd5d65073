package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-monitor/internal/application/dto"
	"github.com/tu-usuario/stock-monitor/internal/application/report"
)

// ReportHandler maneja el reporte de niveles de stock (protegido).
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// StockLevels godoc
// @Summary      Reporte de niveles de stock
// @Description  Una fila por ítem con su estado derivado y las referencias de
//
//	proveedor/bodega resueltas a nombre. El formato se elige con
//	?format=json|csv|pdf (default json).
//
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Produce      text/csv
// @Produce      application/pdf
// @Param        format  query  string  false  "json | csv | pdf"
// @Success      200  {array}   report.StockLevelRow
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/stock-levels [get]
func (h *ReportHandler) StockLevels(c *fiber.Ctx) error {
	switch c.Query("format", "json") {
	case "json":
		rows, err := h.uc.StockLevels()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return c.JSON(rows)

	case "csv":
		out, err := h.uc.StockLevelsCSV()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock-levels.csv"`)
		return c.SendString(out)

	case "pdf":
		out, err := h.uc.StockLevelsPDF(c.Context())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock-levels.pdf"`)
		return c.Send(out)

	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "format debe ser json, csv o pdf"})
	}
}

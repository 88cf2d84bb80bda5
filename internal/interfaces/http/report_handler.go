package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/application/inventory"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

// StockReportRenderer genera el PDF del reporte de stock.
type StockReportRenderer interface {
	Generate(ctx context.Context, products []entity.Product, generatedAt time.Time) ([]byte, error)
}

// ReportHandler exportación del reporte de stock.
type ReportHandler struct {
	data     *inventory.SyncStore
	renderer StockReportRenderer
	log      *logger.Logger
	now      func() time.Time
}

// NewReportHandler construye el handler.
func NewReportHandler(data *inventory.SyncStore, renderer StockReportRenderer, log *logger.Logger) *ReportHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &ReportHandler{data: data, renderer: renderer, log: log, now: time.Now}
}

// StockPDF godoc
// @Summary      Reporte de stock en PDF (admin)
// @Tags         reports
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /reports/stock.pdf [get]
func (h *ReportHandler) StockPDF(c *fiber.Ctx) error {
	now := h.now()
	pdfBytes, err := h.renderer.Generate(c.Context(), h.data.Products(), now)
	if err != nil {
		h.log.Error().Err(err).Msg("generar reporte de stock")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_ERROR", Message: "no se pudo generar el reporte"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="relatorio-estoque-%s.pdf"`, now.Format("20060102")))
	return c.Send(pdfBytes)
}

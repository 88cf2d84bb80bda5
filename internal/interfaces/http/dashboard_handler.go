package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-dashboard/internal/application/analytics"
	"github.com/jhoicas/Inventario-dashboard/internal/application/inventory"
)

// DashboardHandler resumen administrativo.
type DashboardHandler struct {
	data *inventory.SyncStore
	now  func() time.Time
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(data *inventory.SyncStore) *DashboardHandler {
	return &DashboardHandler{data: data, now: time.Now}
}

// Summary godoc
// @Summary      Resumen del almoxarifado (admin)
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(analytics.Summarize(h.data.Products(), h.data.Movements(), h.now()))
}

package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/infrastructure/notify"
)

// NotificationSource feed de avisos (implementado por *notify.Feed).
type NotificationSource interface {
	Since(after uint64) ([]notify.Notification, uint64)
}

// NotificationHandler sondeo de avisos al operador.
type NotificationHandler struct {
	feed NotificationSource
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(feed NotificationSource) *NotificationHandler {
	return &NotificationHandler{feed: feed}
}

// List godoc
// @Summary      Avisos posteriores a un id
// @Tags         notifications
// @Produce      json
// @Param        since  query  int  false  "Último id recibido"
// @Success      200  {object}  dto.NotificationListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	var since uint64
	if raw := c.Query("since"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_SINCE", Message: "since debe ser un entero no negativo"})
		}
		since = v
	}
	items, last := h.feed.Since(since)
	out := dto.NotificationListResponse{Items: make([]dto.NotificationDTO, 0, len(items)), LastID: last}
	for _, n := range items {
		out.Items = append(out.Items, dto.NotificationDTO{
			ID: n.ID, Kind: n.Kind, Message: n.Message, Target: n.Target, CreatedAt: n.CreatedAt,
		})
	}
	return c.JSON(out)
}

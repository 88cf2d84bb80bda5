package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-dashboard/internal/application/analytics"
	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/application/inventory"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// MovementHandler movimientos e historial. El autor sólo se muestra a administradores.
type MovementHandler struct {
	data     *inventory.SyncStore
	sessions SessionState
}

// NewMovementHandler construye el handler.
func NewMovementHandler(data *inventory.SyncStore, sessions SessionState) *MovementHandler {
	return &MovementHandler{data: data, sessions: sessions}
}

// List godoc
// @Summary      Listar movimientos
// @Tags         movements
// @Produce      json
// @Success      200  {object}  dto.MovementListResponse
// @Router       /movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	return c.JSON(dto.MovementListResponse{
		Items:   dto.NewMovementResponses(h.data.Movements(), h.sessions.IsAdmin()),
		Loading: h.data.IsLoading(),
	})
}

// Create godoc
// @Summary      Registrar entrada o salida
// @Tags         movements
// @Accept       json
// @Param        body  body  dto.MovementInputRequest  true  "Movimiento"
// @Success      201
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /movements [post]
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.MovementInputRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	err := h.data.AddMovement(c.Context(), inventory.MovementInput{
		ProductID: in.ProductID,
		Type:      entity.MovementType(strings.ToLower(strings.TrimSpace(in.Type))),
		Quantity:  in.Quantity,
		Note:      in.Note,
	})
	return afterMutation(c, h.sessions, err, fiber.StatusCreated)
}

// History godoc
// @Summary      Historial filtrado con resumen
// @Tags         movements
// @Produce      json
// @Param        product  query  string  false  "ID del producto"
// @Param        type     query  string  false  "entry | exit"
// @Param        from     query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to       query  string  false  "Hasta, día completo (YYYY-MM-DD)"
// @Success      200  {object}  dto.HistoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /history [get]
func (h *MovementHandler) History(c *fiber.Ctx) error {
	filter := analytics.HistoryFilter{}
	if product := c.Query("product"); product != "all" {
		filter.ProductID = product
	}
	switch t := strings.ToLower(c.Query("type")); t {
	case "", "all":
	case string(entity.MovementEntry), string(entity.MovementExit):
		filter.Type = entity.MovementType(t)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILTER", Message: "type debe ser entry o exit"})
	}

	var err error
	if filter.From, err = parseDate(c.Query("from")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILTER", Message: "from debe tener formato YYYY-MM-DD"})
	}
	if filter.To, err = parseDate(c.Query("to")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILTER", Message: "to debe tener formato YYYY-MM-DD"})
	}

	return c.JSON(analytics.FilterHistory(h.data.Movements(), filter, h.sessions.IsAdmin()))
}

func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation(dateLayout, raw, time.Local)
}

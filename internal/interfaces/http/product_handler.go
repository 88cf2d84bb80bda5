package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/application/inventory"
)

// ProductHandler productos: listado, búsqueda, stock bajo y mutaciones (admin).
type ProductHandler struct {
	data     *inventory.SyncStore
	sessions SessionState
}

// NewProductHandler construye el handler.
func NewProductHandler(data *inventory.SyncStore, sessions SessionState) *ProductHandler {
	return &ProductHandler{data: data, sessions: sessions}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Param        q    query  string  false  "Búsqueda por nombre"
// @Success      200  {object}  dto.ProductListResponse
// @Router       /products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	return c.JSON(dto.ProductListResponse{
		Items:   dto.NewProductResponses(h.data.SearchProducts(c.Query("q"))),
		Loading: h.data.IsLoading(),
	})
}

// LowStock godoc
// @Summary      Productos con stock bajo (consulta al backend)
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /products/low-stock [get]
func (h *ProductHandler) LowStock(c *fiber.Ctx) error {
	list, err := h.data.LowStock(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ProductListResponse{Items: dto.NewProductResponses(list)})
}

// Movements godoc
// @Summary      Movimientos de un producto, del más reciente al más antiguo
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.MovementListResponse
// @Router       /products/{id}/movements [get]
func (h *ProductHandler) Movements(c *fiber.Ctx) error {
	list := h.data.ProductMovements(c.Params("id"))
	return c.JSON(dto.MovementListResponse{
		Items:   dto.NewMovementResponses(list, h.sessions.IsAdmin()),
		Loading: h.data.IsLoading(),
	})
}

// Create godoc
// @Summary      Crear producto (admin)
// @Tags         products
// @Accept       json
// @Param        body  body  dto.ProductInputRequest  true  "Datos del producto"
// @Success      201
// @Failure      422  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductInputRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	input := inventory.ProductInput{}
	if in.Name != nil {
		input.Name = *in.Name
	}
	if in.Description != nil {
		input.Description = *in.Description
	}
	if in.MinimumStock != nil {
		input.MinimumStock = *in.MinimumStock
	}
	err := h.data.AddProduct(c.Context(), input)
	return afterMutation(c, h.sessions, err, fiber.StatusCreated)
}

// Update godoc
// @Summary      Actualizar producto (admin, parcial)
// @Tags         products
// @Accept       json
// @Param        id    path  string                   true  "ID del producto"
// @Param        body  body  dto.ProductInputRequest  true  "Campos a actualizar"
// @Success      204
// @Failure      422  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.ProductInputRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	patch := inventory.ProductPatch{Name: in.Name, Description: in.Description, MinimumStock: in.MinimumStock}
	err := h.data.UpdateProduct(c.Context(), c.Params("id"), patch)
	return afterMutation(c, h.sessions, err, fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Desactivar producto (admin)
// @Tags         products
// @Param        id  path  string  true  "ID del producto"
// @Success      204
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	err := h.data.DeleteProduct(c.Context(), c.Params("id"))
	return afterMutation(c, h.sessions, err, fiber.StatusNoContent)
}

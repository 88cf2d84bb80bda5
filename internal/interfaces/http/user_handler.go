package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/application/inventory"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

// UserHandler administración de cuentas (sólo admin).
type UserHandler struct {
	data     *inventory.SyncStore
	sessions SessionService
}

// NewUserHandler construye el handler.
func NewUserHandler(data *inventory.SyncStore, sessions SessionService) *UserHandler {
	return &UserHandler{data: data, sessions: sessions}
}

// List godoc
// @Summary      Listar usuarios
// @Tags         users
// @Produce      json
// @Success      200  {object}  dto.UserListResponse
// @Router       /users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	actor := h.sessions.Current()
	users := h.data.Users()
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, dto.NewUserResponse(u, inventory.Deletable(u, actor)))
	}
	return c.JSON(dto.UserListResponse{Items: items, Loading: h.data.IsLoading()})
}

// Create godoc
// @Summary      Crear usuario
// @Tags         users
// @Accept       json
// @Param        body  body  dto.UserInputRequest  true  "Cuenta (password por defecto 123456, rol collaborator)"
// @Success      201
// @Failure      422  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.UserInputRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	input := inventory.UserInput{Username: deref(in.Username), Password: deref(in.Password), Setor: deref(in.Setor)}
	if role := deref(in.Role); role != "" {
		input.Role = entity.NormalizeRole(role)
	}
	err := h.data.AddUser(c.Context(), input)
	return afterMutation(c, h.sessions, err, fiber.StatusCreated)
}

// Update godoc
// @Summary      Actualizar usuario (parcial)
// @Tags         users
// @Accept       json
// @Param        id    path  string                true  "ID del usuario"
// @Param        body  body  dto.UserInputRequest  true  "Campos a actualizar"
// @Success      204
// @Failure      422  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UserInputRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	patch := inventory.UserPatch{Username: in.Username, Password: in.Password, Setor: in.Setor}
	if in.Role != nil {
		role := entity.NormalizeRole(*in.Role)
		patch.Role = &role
	}
	err := h.data.UpdateUser(c.Context(), c.Params("id"), patch)
	return afterMutation(c, h.sessions, err, fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar usuario
// @Description  La cuenta "admin" y la propia no pueden eliminarse.
// @Tags         users
// @Param        id  path  string  true  "ID del usuario"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	err := h.data.DeleteUser(c.Context(), c.Params("id"), h.sessions.Current())
	return afterMutation(c, h.sessions, err, fiber.StatusNoContent)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

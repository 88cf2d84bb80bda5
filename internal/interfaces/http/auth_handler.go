package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

// SessionService sesión del operador (implementada por *auth.SessionStore).
type SessionService interface {
	SessionState
	Current() *entity.Session
	Login(ctx context.Context, username, password string) bool
	Logout()
}

// AuthHandler login, logout y estado de sesión.
type AuthHandler struct {
	sessions SessionService
}

// NewAuthHandler construye el handler.
func NewAuthHandler(sessions SessionService) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// Status godoc
// @Summary      Estado de sesión para la pantalla de login
// @Tags         auth
// @Produce      json
// @Param        from  query  string  false  "Destino original"
// @Success      200   {object}  dto.LoginStatusResponse
// @Router       /login [get]
func (h *AuthHandler) Status(c *fiber.Ctx) error {
	return c.JSON(dto.LoginStatusResponse{
		Session: dto.NewSessionResponse(h.sessions.Current(), h.sessions.Ready()),
		From:    c.Query("from"),
	})
}

// Login godoc
// @Summary      Iniciar sesión contra el backend
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        from  query  string            false  "Destino tras el login"
// @Param        body  body   dto.LoginRequest  true   "Credenciales"
// @Success      200   {object}  dto.LoginResult
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	in.Username = strings.TrimSpace(in.Username)
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username y password son requeridos"})
	}
	if !h.sessions.Login(c.Context(), in.Username, in.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "LOGIN_FAILED", Message: "login rechazado"})
	}
	return c.JSON(dto.LoginResult{
		Redirect: safeRedirect(c.Query("from")),
		Session:  dto.NewSessionResponse(h.sessions.Current(), true),
	})
}

// Logout godoc
// @Summary      Cerrar sesión (sólo local)
// @Tags         auth
// @Success      204
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.sessions.Logout()
	return c.SendStatus(fiber.StatusNoContent)
}

// Session godoc
// @Summary      Sesión actual
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Router       /session [get]
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	return c.JSON(dto.NewSessionResponse(h.sessions.Current(), h.sessions.Ready()))
}

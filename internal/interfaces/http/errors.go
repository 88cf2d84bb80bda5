package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/domain"
)

// writeError traduce los errores de la capa de sincronización a respuestas HTTP.
// Los rechazos del backend ya fueron notificados al operador.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrProtectedAccount):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "PROTECTED_ACCOUNT", Message: err.Error()})
	case errors.Is(err, domain.ErrMutationFailed), errors.Is(err, domain.ErrRefreshFailed):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BACKEND_REJECTED", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// afterMutation responde a una mutación. Si el backend rechazó el token durante la
// llamada, la sesión ya se cerró y el operador va al login.
func afterMutation(c *fiber.Ctx, sessions SessionState, err error, status int) error {
	if err == nil {
		return c.SendStatus(status)
	}
	if errors.Is(err, domain.ErrMutationFailed) && !sessions.IsAuthenticated() {
		return redirect(c, LoginPath)
	}
	return writeError(c, err)
}

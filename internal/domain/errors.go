package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrProtectedAccount  = errors.New("la cuenta no puede eliminarse")
	ErrMutationFailed    = errors.New("el backend rechazó la operación")
	ErrRefreshFailed     = errors.New("no se pudo recargar la colección")
)

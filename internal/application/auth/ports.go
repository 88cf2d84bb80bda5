package auth

import (
	"context"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
)

// Gateway servicio de transporte de autenticación. ok=false ya fue notificado al operador.
type Gateway interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, bool)
}

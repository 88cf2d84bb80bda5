package backend

import (
	"context"
	"net/http"

	"github.com/jhoicas/Inventario-dashboard/internal/application/auth"
	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/application/ports"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

const loginPath = "/autenticacao/login"

var _ auth.Gateway = (*AuthService)(nil)

// AuthService login contra el backend. El logout es sólo local.
type AuthService struct{ c caller }

func NewAuthService(api Requester, notify ports.Notifier, log *logger.Logger) *AuthService {
	return &AuthService{c: newCaller(api, notify, log, "backend.auth")}
}

// Login envía las credenciales; no lleva token (ruta fuera de /api/).
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, bool) {
	var out dto.LoginResponse
	if !s.c.call(ctx, http.MethodPost, loginPath, req, &out, "", "Erro ao conectar ao servidor") {
		return nil, false
	}
	return &out, true
}

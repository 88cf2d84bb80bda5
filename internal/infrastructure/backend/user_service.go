package backend

import (
	"context"
	"net/http"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/application/inventory"
	"github.com/jhoicas/Inventario-dashboard/internal/application/ports"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

const usersPath = "/api/users"

var _ inventory.UserGateway = (*UserService)(nil)

// UserService administración de cuentas (el backend exige rol admin).
type UserService struct{ c caller }

func NewUserService(api Requester, notify ports.Notifier, log *logger.Logger) *UserService {
	return &UserService{c: newCaller(api, notify, log, "backend.users")}
}

func (s *UserService) List(ctx context.Context) ([]dto.UserRecord, bool) {
	var out []dto.UserRecord
	if !s.c.call(ctx, http.MethodGet, usersPath, nil, &out, "", "Erro ao carregar usuários") {
		return nil, false
	}
	if out == nil {
		out = []dto.UserRecord{}
	}
	return out, true
}

func (s *UserService) Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserRecord, bool) {
	var out dto.UserRecord
	if !s.c.call(ctx, http.MethodPost, usersPath, req, &out, "Usuário criado com sucesso!", "Erro ao criar usuário") {
		return nil, false
	}
	return &out, true
}

func (s *UserService) Update(ctx context.Context, id string, req dto.UpdateUserRequest) (*dto.UserRecord, bool) {
	var out dto.UserRecord
	if !s.c.call(ctx, http.MethodPut, itemPath(usersPath, id), req, &out, "Usuário atualizado com sucesso!", "Erro ao atualizar usuário") {
		return nil, false
	}
	return &out, true
}

func (s *UserService) Delete(ctx context.Context, id string) bool {
	return s.c.call(ctx, http.MethodDelete, itemPath(usersPath, id), nil, nil, "Usuário removido com sucesso!", "Erro ao remover usuário")
}

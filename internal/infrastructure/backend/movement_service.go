package backend

import (
	"context"
	"net/http"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/application/inventory"
	"github.com/jhoicas/Inventario-dashboard/internal/application/ports"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

const (
	movementsPath = "/api/movimentacoes"
	entryPath     = "/api/movimentacoes/entrada"
	exitPath      = "/api/movimentacoes/saida"
)

var _ inventory.MovementGateway = (*MovementService)(nil)

// MovementService movimientos de stock. No existe update ni delete.
type MovementService struct{ c caller }

func NewMovementService(api Requester, notify ports.Notifier, log *logger.Logger) *MovementService {
	return &MovementService{c: newCaller(api, notify, log, "backend.movements")}
}

func (s *MovementService) List(ctx context.Context) ([]dto.MovementRecord, bool) {
	var out []dto.MovementRecord
	if !s.c.call(ctx, http.MethodGet, movementsPath, nil, &out, "", "Erro ao carregar movimentações") {
		return nil, false
	}
	if out == nil {
		out = []dto.MovementRecord{}
	}
	return out, true
}

func (s *MovementService) CreateEntry(ctx context.Context, req dto.MovementRequest) (*dto.MovementRecord, bool) {
	var out dto.MovementRecord
	if !s.c.call(ctx, http.MethodPost, entryPath, req, &out, "Entrada registrada com sucesso!", "Erro ao registrar entrada") {
		return nil, false
	}
	return &out, true
}

func (s *MovementService) CreateExit(ctx context.Context, req dto.MovementRequest) (*dto.MovementRecord, bool) {
	var out dto.MovementRecord
	if !s.c.call(ctx, http.MethodPost, exitPath, req, &out, "Saída registrada com sucesso!", "Erro ao registrar saída") {
		return nil, false
	}
	return &out, true
}

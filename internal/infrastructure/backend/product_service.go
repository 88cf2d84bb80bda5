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
	productsPath = "/api/produtos"
	lowStockPath = "/api/produtos/estoque-baixo"
)

var _ inventory.ProductGateway = (*ProductService)(nil)

// ProductService CRUD de productos. Delete es desactivación lógica en el backend.
type ProductService struct{ c caller }

func NewProductService(api Requester, notify ports.Notifier, log *logger.Logger) *ProductService {
	return &ProductService{c: newCaller(api, notify, log, "backend.products")}
}

func (s *ProductService) List(ctx context.Context) ([]dto.ProductRecord, bool) {
	var out []dto.ProductRecord
	if !s.c.call(ctx, http.MethodGet, productsPath, nil, &out, "", "Erro ao carregar produtos") {
		return nil, false
	}
	if out == nil {
		out = []dto.ProductRecord{}
	}
	return out, true
}

func (s *ProductService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductRecord, bool) {
	var out dto.ProductRecord
	if !s.c.call(ctx, http.MethodPost, productsPath, req, &out, "Produto criado com sucesso!", "Erro ao criar produto") {
		return nil, false
	}
	return &out, true
}

func (s *ProductService) Update(ctx context.Context, id string, req dto.UpdateProductRequest) (*dto.ProductRecord, bool) {
	var out dto.ProductRecord
	if !s.c.call(ctx, http.MethodPut, itemPath(productsPath, id), req, &out, "Produto atualizado com sucesso!", "Erro ao atualizar produto") {
		return nil, false
	}
	return &out, true
}

func (s *ProductService) Deactivate(ctx context.Context, id string) bool {
	return s.c.call(ctx, http.MethodDelete, itemPath(productsPath, id), nil, nil, "Produto desativado com sucesso!", "Erro ao desativar produto")
}

func (s *ProductService) LowStock(ctx context.Context) ([]dto.ProductRecord, bool) {
	var out []dto.ProductRecord
	if !s.c.call(ctx, http.MethodGet, lowStockPath, nil, &out, "", "Erro ao carregar produtos com estoque baixo") {
		return nil, false
	}
	if out == nil {
		out = []dto.ProductRecord{}
	}
	return out, true
}

package inventory

import (
	"context"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
)

// Puertos hacia los servicios de transporte. ok=false significa fallo definitivo ya notificado
// al operador; la capa de sincronización nunca vuelve a avisarlo.

// ProductGateway productos (vocabulario del backend).
type ProductGateway interface {
	List(ctx context.Context) ([]dto.ProductRecord, bool)
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductRecord, bool)
	Update(ctx context.Context, id string, req dto.UpdateProductRequest) (*dto.ProductRecord, bool)
	Deactivate(ctx context.Context, id string) bool
	LowStock(ctx context.Context) ([]dto.ProductRecord, bool)
}

// StockReportGateway reporte de stock, fuente de CurrentStock y Status.
type StockReportGateway interface {
	Stock(ctx context.Context) ([]dto.StockReportItem, bool)
}

// MovementGateway movimientos (sólo alta y lectura).
type MovementGateway interface {
	List(ctx context.Context) ([]dto.MovementRecord, bool)
	CreateEntry(ctx context.Context, req dto.MovementRequest) (*dto.MovementRecord, bool)
	CreateExit(ctx context.Context, req dto.MovementRequest) (*dto.MovementRecord, bool)
}

// UserGateway cuentas de usuario.
type UserGateway interface {
	List(ctx context.Context) ([]dto.UserRecord, bool)
	Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserRecord, bool)
	Update(ctx context.Context, id string, req dto.UpdateUserRequest) (*dto.UserRecord, bool)
	Delete(ctx context.Context, id string) bool
}

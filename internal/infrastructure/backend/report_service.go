package backend

import (
	"context"
	"net/http"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/application/inventory"
	"github.com/jhoicas/Inventario-dashboard/internal/application/ports"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

const stockReportPath = "/api/reports/stock"

var _ inventory.StockReportGateway = (*ReportService)(nil)

// ReportService reporte de stock: la única fuente de CurrentStock y Status.
type ReportService struct{ c caller }

func NewReportService(api Requester, notify ports.Notifier, log *logger.Logger) *ReportService {
	return &ReportService{c: newCaller(api, notify, log, "backend.reports")}
}

func (s *ReportService) Stock(ctx context.Context) ([]dto.StockReportItem, bool) {
	var out []dto.StockReportItem
	if !s.c.call(ctx, http.MethodGet, stockReportPath, nil, &out, "", "Erro ao carregar relatório de estoque") {
		return nil, false
	}
	if out == nil {
		out = []dto.StockReportItem{}
	}
	return out, true
}

package inventory

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

// ── Frontera de transporte: registros del backend → entidades ─────────────────

// ProductFromRecord normaliza un producto. Sin fila de reporte: stock 0 y estado normal.
func ProductFromRecord(rec dto.ProductRecord, stock *dto.StockReportItem) entity.Product {
	p := entity.Product{
		ID:           rec.ID,
		Name:         rec.Nome,
		Description:  rec.Descricao,
		MinimumStock: wholeUnits(rec.EstoqueMinimo),
		Status:       entity.StockNormal,
		Active:       rec.Active,
		CreatedAt:    parseTime(rec.CreatedAt),
	}
	if stock != nil {
		p.CurrentStock = wholeUnits(stock.CurrentStock)
		p.Status = entity.NormalizeStatus(stock.Status)
	}
	return p
}

// JoinStock une productos y reporte por productId.
func JoinStock(records []dto.ProductRecord, report []dto.StockReportItem) []entity.Product {
	byID := make(map[string]*dto.StockReportItem, len(report))
	for i := range report {
		byID[report[i].ProductID] = &report[i]
	}
	out := make([]entity.Product, 0, len(records))
	for _, rec := range records {
		out = append(out, ProductFromRecord(rec, byID[rec.ID]))
	}
	return out
}

func MovementFromRecord(rec dto.MovementRecord) entity.Movement {
	return entity.Movement{
		ID:          rec.ID,
		ProductID:   rec.ProductID,
		ProductName: rec.NomeProduto,
		Type:        entity.NormalizeMovementType(rec.Tipo),
		Quantity:    wholeUnits(rec.Quantidade),
		Note:        rec.Observacao,
		UserName:    rec.NomeUsuario,
		CreatedAt:   parseTime(rec.DataHora),
	}
}

func UserFromRecord(rec dto.UserRecord) entity.User {
	return entity.User{
		ID:        rec.ID,
		Username:  rec.Username,
		Role:      entity.NormalizeRole(rec.Role),
		Setor:     rec.Setor,
		CreatedAt: parseTime(rec.CreatedAt),
	}
}

// wholeUnits convierte una cantidad del backend a unidades enteras, truncando hacia cero.
// Un stock de 2.5 cuenta como 2 disponibles: nunca se autoriza una salida por encima de lo real.
func wholeUnits(d decimal.Decimal) int {
	return int(d.IntPart())
}

// El backend serializa fechas con o sin zona ("2024-05-01T10:00:00", RFC 3339).
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTime devuelve el instante cero si el formato no se reconoce.
func parseTime(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t
		}
	}
	return time.Time{}
}

package analytics

import (
	"time"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

// HistoryFilter filtros del historial. Campos vacíos no filtran.
type HistoryFilter struct {
	ProductID string
	Type      entity.MovementType
	From      time.Time // desde el inicio de ese instante
	To        time.Time // hasta el final de ese día (23:59:59)
}

// FilterHistory aplica los filtros, ordena del más reciente al más antiguo y resume.
// showUser controla si el autor se expone (sólo admin).
func FilterHistory(movements []entity.Movement, f HistoryFilter, showUser bool) dto.HistoryResponse {
	var until time.Time
	if !f.To.IsZero() {
		until = time.Date(f.To.Year(), f.To.Month(), f.To.Day(), 23, 59, 59, 0, f.To.Location())
	}

	filtered := make([]entity.Movement, 0, len(movements))
	for _, m := range movements {
		if f.ProductID != "" && m.ProductID != f.ProductID {
			continue
		}
		if f.Type != "" && m.Type != f.Type {
			continue
		}
		if !f.From.IsZero() && m.CreatedAt.Before(f.From) {
			continue
		}
		if !until.IsZero() && m.CreatedAt.After(until) {
			continue
		}
		filtered = append(filtered, m)
	}
	sortNewestFirst(filtered)

	summary := dto.HistorySummary{Total: len(filtered)}
	for _, m := range filtered {
		if m.Type == entity.MovementEntry {
			summary.Entries += m.Quantity
		} else {
			summary.Exits += m.Quantity
		}
	}
	return dto.HistoryResponse{Items: dto.NewMovementResponses(filtered, showUser), Summary: summary}
}

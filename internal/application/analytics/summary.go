// Package analytics calcula las vistas derivadas del dashboard (resumen e historial)
// a partir de las colecciones ya sincronizadas. No llama al backend.
package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

const (
	topConsumedLimit = 5 // productos en el ranking de consumo
	recentLimit      = 5 // movimientos recientes
)

// Summarize construye el resumen del dashboard administrativo.
func Summarize(products []entity.Product, movements []entity.Movement, now time.Time) dto.DashboardSummaryDTO {
	out := dto.DashboardSummaryDTO{
		TotalProducts:   len(products),
		TopConsumed:     []dto.ConsumptionDTO{},
		AttentionNeeded: []dto.ProductResponse{},
		Recent:          []dto.MovementResponse{},
		MonthLabel:      MonthLabel(now),
	}

	// ── Stock ──────────────────────────────────────────────────────────────────
	for _, p := range products {
		out.TotalItemsInStock += p.CurrentStock
		switch p.Status {
		case entity.StockLow:
			out.LowStockProducts++
			out.AttentionNeeded = append(out.AttentionNeeded, dto.NewProductResponse(p))
		case entity.StockCritical:
			out.CriticalStockProducts++
			out.AttentionNeeded = append(out.AttentionNeeded, dto.NewProductResponse(p))
		}
	}
	out.TotalItemsInStockLabel = FormatInt(out.TotalItemsInStock)

	// ── Movimientos ────────────────────────────────────────────────────────────
	for _, m := range movements {
		thisMonth := m.CreatedAt.Year() == now.Year() && m.CreatedAt.Month() == now.Month()
		switch m.Type {
		case entity.MovementEntry:
			out.EntryQuantity += m.Quantity
			if thisMonth {
				out.EntriesThisMonth++
			}
		case entity.MovementExit:
			out.ExitQuantity += m.Quantity
			if thisMonth {
				out.ExitsThisMonth++
			}
		}
	}

	out.TopConsumed = topConsumed(movements, topConsumedLimit)

	recent := append([]entity.Movement{}, movements...)
	sortNewestFirst(recent)
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}
	out.Recent = dto.NewMovementResponses(recent, true)
	return out
}

type consumption struct {
	productID   string
	productName string
	total       int
	first, last time.Time
}

// topConsumed agrupa las salidas por producto y devuelve las n mayores.
// La media mensual divide entre los meses calendario que abarcan la primera y la última salida.
func topConsumed(movements []entity.Movement, n int) []dto.ConsumptionDTO {
	byProduct := map[string]*consumption{}
	order := []string{}
	for _, m := range movements {
		if m.Type != entity.MovementExit {
			continue
		}
		c, ok := byProduct[m.ProductID]
		if !ok {
			c = &consumption{productID: m.ProductID, productName: m.ProductName, first: m.CreatedAt, last: m.CreatedAt}
			byProduct[m.ProductID] = c
			order = append(order, m.ProductID)
		}
		c.total += m.Quantity
		if m.CreatedAt.Before(c.first) {
			c.first = m.CreatedAt
		}
		if m.CreatedAt.After(c.last) {
			c.last = m.CreatedAt
		}
	}

	list := make([]*consumption, 0, len(order))
	for _, id := range order {
		list = append(list, byProduct[id])
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].total > list[j].total })
	if len(list) > n {
		list = list[:n]
	}

	out := make([]dto.ConsumptionDTO, 0, len(list))
	for _, c := range list {
		months := monthsSpanned(c.first, c.last)
		out = append(out, dto.ConsumptionDTO{
			ProductID:      c.productID,
			ProductName:    c.productName,
			TotalConsumed:  c.total,
			AverageMonthly: decimal.NewFromInt(int64(c.total)).Div(decimal.NewFromInt(int64(months))).Round(2),
		})
	}
	return out
}

// monthsSpanned meses calendario entre a y b, ambos incluidos (mínimo 1).
func monthsSpanned(a, b time.Time) int {
	if b.Before(a) {
		a, b = b, a
	}
	n := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month()) + 1
	if n < 1 {
		return 1
	}
	return n
}

// sortNewestFirst orden descendente por fecha; los empates conservan el orden de entrada.
func sortNewestFirst(list []entity.Movement) {
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
}

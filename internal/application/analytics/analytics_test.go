package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-dashboard/internal/application/analytics"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

func day(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func fixture() ([]entity.Product, []entity.Movement) {
	products := []entity.Product{
		{ID: "p1", Name: "Papel", CurrentStock: 1200, Status: entity.StockNormal},
		{ID: "p2", Name: "Caneta", CurrentStock: 3, Status: entity.StockLow},
		{ID: "p3", Name: "Toner", CurrentStock: 0, Status: entity.StockCritical},
		{ID: "p4", Name: "Clips", CurrentStock: 40, Status: entity.StockNormal},
	}
	movements := []entity.Movement{
		{ID: "m1", ProductID: "p1", ProductName: "Papel", Type: entity.MovementEntry, Quantity: 500, UserName: "maria", CreatedAt: day(2026, 1, 10, 9)},
		{ID: "m2", ProductID: "p1", ProductName: "Papel", Type: entity.MovementExit, Quantity: 30, UserName: "joana", CreatedAt: day(2026, 1, 15, 9)},
		{ID: "m3", ProductID: "p1", ProductName: "Papel", Type: entity.MovementExit, Quantity: 45, UserName: "joana", CreatedAt: day(2026, 3, 2, 9)},
		{ID: "m4", ProductID: "p2", ProductName: "Caneta", Type: entity.MovementExit, Quantity: 10, CreatedAt: day(2026, 3, 3, 9)},
		{ID: "m5", ProductID: "p3", ProductName: "Toner", Type: entity.MovementExit, Quantity: 2, CreatedAt: day(2026, 3, 4, 9)},
		{ID: "m6", ProductID: "p4", ProductName: "Clips", Type: entity.MovementEntry, Quantity: 40, CreatedAt: day(2026, 3, 5, 9)},
		{ID: "m7", ProductID: "p4", ProductName: "Clips", Type: entity.MovementExit, Quantity: 1, CreatedAt: day(2026, 3, 6, 9)},
		{ID: "m8", ProductID: "p5", ProductName: "Cola", Type: entity.MovementExit, Quantity: 1, CreatedAt: day(2026, 2, 6, 9)},
		{ID: "m9", ProductID: "p6", ProductName: "Fita", Type: entity.MovementExit, Quantity: 1, CreatedAt: day(2026, 2, 7, 9)},
	}
	return products, movements
}

// ──────────────────────────────────────────────────────────────────────────────
// Summarize
// ──────────────────────────────────────────────────────────────────────────────

func TestSummarize_Totales(t *testing.T) {
	products, movements := fixture()
	s := analytics.Summarize(products, movements, day(2026, 3, 20, 12))

	assert.Equal(t, 4, s.TotalProducts)
	assert.Equal(t, 1243, s.TotalItemsInStock)
	assert.Equal(t, "1.243", s.TotalItemsInStockLabel)
	assert.Equal(t, 1, s.LowStockProducts)
	assert.Equal(t, 1, s.CriticalStockProducts)
	assert.Len(t, s.AttentionNeeded, 2)
	assert.Equal(t, 1, s.EntriesThisMonth)
	assert.Equal(t, 4, s.ExitsThisMonth)
	assert.Equal(t, 540, s.EntryQuantity)
	assert.Equal(t, 90, s.ExitQuantity)
	assert.Equal(t, "março de 2026", s.MonthLabel)
}

func TestSummarize_TopConsumidos(t *testing.T) {
	products, movements := fixture()
	s := analytics.Summarize(products, movements, day(2026, 3, 20, 12))

	require.Len(t, s.TopConsumed, 5)
	assert.Equal(t, "p1", s.TopConsumed[0].ProductID)
	assert.Equal(t, 75, s.TopConsumed[0].TotalConsumed)
	// enero a marzo: tres meses
	assert.Equal(t, "25", s.TopConsumed[0].AverageMonthly.String())
	assert.Equal(t, "p2", s.TopConsumed[1].ProductID)
	assert.Equal(t, "10", s.TopConsumed[1].AverageMonthly.String())
	assert.Equal(t, "p3", s.TopConsumed[2].ProductID)
}

func TestSummarize_RecientesConAutor(t *testing.T) {
	products, movements := fixture()
	s := analytics.Summarize(products, movements, day(2026, 3, 20, 12))

	require.Len(t, s.Recent, 5)
	assert.Equal(t, "m7", s.Recent[0].ID)
	assert.Equal(t, "m3", s.Recent[4].ID)
}

func TestSummarize_ColeccionesVacias(t *testing.T) {
	s := analytics.Summarize(nil, nil, day(2026, 1, 1, 0))
	assert.Zero(t, s.TotalProducts)
	assert.NotNil(t, s.TopConsumed)
	assert.NotNil(t, s.Recent)
	assert.Equal(t, "0", s.TotalItemsInStockLabel)
}

// ──────────────────────────────────────────────────────────────────────────────
// FilterHistory
// ──────────────────────────────────────────────────────────────────────────────

func TestFilterHistory_PorProductoYTipo(t *testing.T) {
	_, movements := fixture()
	h := analytics.FilterHistory(movements, analytics.HistoryFilter{ProductID: "p1", Type: entity.MovementExit}, true)

	require.Len(t, h.Items, 2)
	assert.Equal(t, "m3", h.Items[0].ID)
	assert.Equal(t, "m2", h.Items[1].ID)
	assert.Equal(t, "joana", h.Items[0].UserName)
	assert.Equal(t, 0, h.Summary.Entries)
	assert.Equal(t, 75, h.Summary.Exits)
	assert.Equal(t, 2, h.Summary.Total)
}

func TestFilterHistory_RangoIncluyeElDiaCompleto(t *testing.T) {
	_, movements := fixture()
	h := analytics.FilterHistory(movements, analytics.HistoryFilter{
		From: time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
	}, false)

	ids := []string{}
	for _, it := range h.Items {
		ids = append(ids, it.ID)
		assert.Empty(t, it.UserName, "sin autor para no admin")
	}
	assert.Equal(t, []string{"m6", "m5", "m4"}, ids)
	assert.Equal(t, 40, h.Summary.Entries)
	assert.Equal(t, 12, h.Summary.Exits)
}

func TestFilterHistory_SinFiltros(t *testing.T) {
	_, movements := fixture()
	h := analytics.FilterHistory(movements, analytics.HistoryFilter{}, true)
	assert.Len(t, h.Items, len(movements))
	assert.Equal(t, len(movements), h.Summary.Total)
}

func TestFormatInt(t *testing.T) {
	assert.Equal(t, "1.234.567", analytics.FormatInt(1234567))
	assert.Equal(t, "12", analytics.FormatInt(12))
}

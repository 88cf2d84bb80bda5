package entity

import "time"

// StockStatus estado de stock normalizado. El backend lo calcula; el cliente sólo lo retransmite.
type StockStatus string

const (
	StockNormal   StockStatus = "normal"
	StockLow      StockStatus = "low"
	StockCritical StockStatus = "critical"
)

// Product producto en la forma interna del dashboard.
// CurrentStock y Status vienen del reporte de stock, no del registro del producto.
type Product struct {
	ID           string
	Name         string
	Description  string
	MinimumStock int
	CurrentStock int
	Status       StockStatus
	Active       bool // "eliminar" es desactivación lógica
	CreatedAt    time.Time
}

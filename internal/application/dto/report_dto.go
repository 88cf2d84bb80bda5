package dto

import "github.com/shopspring/decimal"

// StockReportItem fila de GET /api/reports/stock (vocabulario en inglés).
type StockReportItem struct {
	ProductID    string `json:"productId"`
	Name         string `json:"name"`
	MinimumStock decimal.Decimal `json:"minimumStock"`
	CurrentStock decimal.Decimal `json:"currentStock"`
	Status       string          `json:"status"` // NORMAL | LOW | CRITICAL
}

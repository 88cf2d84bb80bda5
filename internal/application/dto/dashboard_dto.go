package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /dashboard (sólo admin).
type DashboardSummaryDTO struct {
	TotalProducts         int `json:"total_products"`
	TotalItemsInStock     int `json:"total_items_in_stock"`
	LowStockProducts      int `json:"low_stock_products"`
	CriticalStockProducts int `json:"critical_stock_products"`
	EntriesThisMonth      int `json:"entries_this_month"` // número de movimientos
	ExitsThisMonth        int `json:"exits_this_month"`

	EntryQuantity int `json:"entry_quantity"` // cantidades acumuladas de todo el historial
	ExitQuantity  int `json:"exit_quantity"`

	TopConsumed     []ConsumptionDTO   `json:"top_consumed"`
	AttentionNeeded []ProductResponse  `json:"attention_needed"` // low o critical
	Recent          []MovementResponse `json:"recent"`

	// Versiones formateadas pt-BR para la UI ("1.234")
	TotalItemsInStockLabel string `json:"total_items_in_stock_label"`
	MonthLabel             string `json:"month_label"`
}

// ConsumptionDTO consumo (salidas) acumulado por producto.
type ConsumptionDTO struct {
	ProductID      string          `json:"product_id"`
	ProductName    string          `json:"product_name"`
	TotalConsumed  int             `json:"total_consumed"`
	AverageMonthly decimal.Decimal `json:"average_monthly"`
}

package dto

// ── Query parameters ──────────────────────────────────────────────────────────

// DashboardStatsRequest parámetros para GET /api/dashboard/stats.
type DashboardStatsRequest struct {
	Period    string `query:"period"`    // today | week | month | custom; default month
	StartDate string `query:"startDate"` // YYYY-MM-DD; obligatorio con period=custom
	EndDate   string `query:"endDate"`   // YYYY-MM-DD; obligatorio con period=custom
	BranchID  string `query:"branch_id"` // UUID de sucursal; opcional
}

// ── Métricas ──────────────────────────────────────────────────────────────────

// MoneyMetricDTO métrica monetaria con variación contra el período anterior.
// Value con dos decimales fijos; Change con un decimal fijo ("0.0" si el
// período anterior fue cero). Positive = la métrica no bajó.
type MoneyMetricDTO struct {
	Value    string `json:"value"`
	Change   string `json:"change"`
	Positive bool   `json:"positive"`
}

// CountMetricDTO métrica de conteo con variación contra el período anterior.
type CountMetricDTO struct {
	Value    int64  `json:"value"`
	Change   string `json:"change"`
	Positive bool   `json:"positive"`
}

// RankedEntryDTO entrada del top-N de productos o combos.
type RankedEntryDTO struct {
	Name          string `json:"name"`
	SalesQuantity int64  `json:"sales_quantity"`
}

// DailySalesPointDTO un día de la serie de ventas de los últimos 7 días.
type DailySalesPointDTO struct {
	Date  string `json:"date"`  // YYYY-MM-DD (día civil)
	Total string `json:"total"` // dos decimales fijos
}

// PeriodDTO rango de fechas efectivo del reporte.
type PeriodDTO struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// DashboardStatsDTO respuesta completa de GET /api/dashboard/stats.
type DashboardStatsDTO struct {
	Period       PeriodDTO            `json:"period"`
	TotalSales   MoneyMetricDTO       `json:"total_sales"`
	Orders       CountMetricDTO       `json:"orders"`
	ProductsSold CountMetricDTO       `json:"products_sold"`
	AvgTicket    MoneyMetricDTO       `json:"avg_ticket"`
	TopProducts  []RankedEntryDTO     `json:"top_products"` // ≤ TopN, cantidad desc
	TopCombos    []RankedEntryDTO     `json:"top_combos"`
	DailySales   []DailySalesPointDTO `json:"daily_sales"` // siempre 7 puntos
}

package dto

// DashboardSummaryResponse resumen para el panel del vendedor.
type DashboardSummaryResponse struct {
	TotalProducts   int                `json:"total_products"`
	InStock         int                `json:"in_stock"`
	LowStock        int                `json:"low_stock"`
	OutOfStock      int                `json:"out_of_stock"`
	RecentMovements []MovementResponse `json:"recent_movements"`
}

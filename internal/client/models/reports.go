package models

// SellerDashboard is the seller summary screen.
type SellerDashboard struct {
	TotalSale         float64   `json:"totalSale"`
	TotalOrder        int       `json:"totalOrder"`
	TotalProduct      int       `json:"totalProduct"`
	TotalPendingOrder int       `json:"totalPendingOrder"`
	RecentOrders      []Order   `json:"recentOrders"`
	Messages          []Message `json:"messages"`
	SaleChange        float64   `json:"saleChange"`
}

// AdminDashboard is the marketplace-wide summary screen.
type AdminDashboard struct {
	TotalSale    float64   `json:"totalSale"`
	TotalOrder   int       `json:"totalOrder"`
	TotalProduct int       `json:"totalProduct"`
	TotalSeller  int       `json:"totalSeller"`
	RecentOrders []Order   `json:"recentOrders"`
	Messages     []Message `json:"messages"`
}

type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type ChartData struct {
	Orders  []ChartPoint `json:"orders"`
	Revenue []ChartPoint `json:"revenue"`
	Period  string       `json:"period"`
}

type RankedItem struct {
	ID    string  `json:"_id"`
	Name  string  `json:"name"`
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

// Analytics is the admin period report.
type Analytics struct {
	Period      string       `json:"period"`
	Revenue     float64      `json:"revenue"`
	Orders      int          `json:"orders"`
	TopProducts []RankedItem `json:"topProducts"`
	TopSellers  []RankedItem `json:"topSellers"`
}

package api

import (
	"context"
	"net/url"

	"github.com/dmitrijs2005/marketadmin/internal/client/models"
)

func (c *Client) GetAdminDashboard(ctx context.Context) (*models.AdminDashboard, error) {
	var out models.AdminDashboard
	return &out, c.get(ctx, "/admin/get-dashboard-data", nil, &out)
}

func (c *Client) GetSellerDashboard(ctx context.Context) (*models.SellerDashboard, error) {
	var out models.SellerDashboard
	return &out, c.get(ctx, "/seller/get-dashboard-data", nil, &out)
}

func (c *Client) GetChartData(ctx context.Context, sellerID, period string) (*models.ChartData, error) {
	q := url.Values{}
	q.Set("sellerId", sellerID)
	q.Set("period", period)

	var out models.ChartData
	return &out, c.get(ctx, "/seller/chart-data", q, &out)
}

func (c *Client) GetAnalytics(ctx context.Context, period string) (*models.Analytics, error) {
	q := url.Values{}
	q.Set("period", period)

	var out models.Analytics
	return &out, c.get(ctx, "/admin/analytics", q, &out)
}

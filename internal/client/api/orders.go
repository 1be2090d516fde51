package api

import (
	"context"

	"github.com/dmitrijs2005/marketadmin/internal/client/models"
)

type OrderList struct {
	Orders     []models.Order `json:"orders"`
	TotalOrder int            `json:"totalOrder"`
}

type OrderResponse struct {
	Order models.Order `json:"order"`
}

type OrderMutation struct {
	Order   models.Order `json:"order"`
	Message string       `json:"message"`
}

type orderStatus struct {
	Status string `json:"status"`
}

func (c *Client) ListAdminOrders(ctx context.Context, q ListQuery) (*OrderList, error) {
	var out OrderList
	return &out, c.get(ctx, "/admin/orders", q.Values(), &out)
}

func (c *Client) ListSellerOrders(ctx context.Context, sellerID string, q ListQuery) (*OrderList, error) {
	var out OrderList
	return &out, c.get(ctx, idPath("/seller/orders/", sellerID), q.Values(), &out)
}

func (c *Client) GetAdminOrder(ctx context.Context, id string) (*OrderResponse, error) {
	var out OrderResponse
	return &out, c.get(ctx, idPath("/admin/order/", id), nil, &out)
}

func (c *Client) GetSellerOrder(ctx context.Context, id string) (*OrderResponse, error) {
	var out OrderResponse
	return &out, c.get(ctx, idPath("/seller/order/", id), nil, &out)
}

func (c *Client) UpdateAdminOrderStatus(ctx context.Context, id, status string) (*OrderMutation, error) {
	var out OrderMutation
	return &out, c.put(ctx, idPath("/admin/order-status/update/", id), orderStatus{Status: status}, &out)
}

func (c *Client) UpdateSellerOrderStatus(ctx context.Context, id, status string) (*OrderMutation, error) {
	var out OrderMutation
	return &out, c.put(ctx, idPath("/seller/order-status/update/", id), orderStatus{Status: status}, &out)
}

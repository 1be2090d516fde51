package api

import (
	"context"

	"github.com/dmitrijs2005/marketadmin/internal/client/models"
)

type SellerList struct {
	Sellers     []models.Seller `json:"sellers"`
	TotalSeller int             `json:"totalSeller"`
}

type SellerResponse struct {
	Seller models.Seller `json:"seller"`
}

type SellerMutation struct {
	Seller  models.Seller `json:"seller"`
	Message string        `json:"message"`
}

type SellerStatusUpdate struct {
	SellerID string `json:"sellerId"`
	Status   string `json:"status"`
}

func (c *Client) ListActiveSellers(ctx context.Context, q ListQuery) (*SellerList, error) {
	var out SellerList
	return &out, c.get(ctx, "/get-sellers", q.Values(), &out)
}

func (c *Client) ListDeactivatedSellers(ctx context.Context, q ListQuery) (*SellerList, error) {
	var out SellerList
	return &out, c.get(ctx, "/get-deactive-sellers", q.Values(), &out)
}

// ListSellerRequests lists registrations still waiting for approval.
func (c *Client) ListSellerRequests(ctx context.Context, q ListQuery) (*SellerList, error) {
	var out SellerList
	return &out, c.get(ctx, "/request-seller-get", q.Values(), &out)
}

func (c *Client) GetSeller(ctx context.Context, id string) (*SellerResponse, error) {
	var out SellerResponse
	return &out, c.get(ctx, idPath("/get-seller/", id), nil, &out)
}

func (c *Client) UpdateSellerStatus(ctx context.Context, in SellerStatusUpdate) (*SellerMutation, error) {
	var out SellerMutation
	return &out, c.post(ctx, "/seller-status-update", in, &out)
}

package cli

import (
	"context"

	"github.com/dmitrijs2005/marketadmin/internal/client/api"
	"github.com/dmitrijs2005/marketadmin/internal/client/models"
	"github.com/dmitrijs2005/marketadmin/internal/client/slices/seller"
)

var sellerHeaders = []string{"ID", "Name", "Email", "Shop", "Status", "Payment"}

func sellerRow(s models.Seller) []string {
	shop := "-"
	if s.ShopInfo != nil {
		shop = orDash(s.ShopInfo.ShopName)
	}
	return []string{s.ID, s.Name, s.Email, shop, s.Status, orDash(s.Payment)}
}

func (a *App) sellers(ctx context.Context, args []string) error {
	kind := "active"
	if len(args) > 0 {
		switch args[0] {
		case "active", "deactivated", "requests":
			kind, args = args[0], args[1:]
		}
	}
	q, err := a.listQuery(args)
	if err != nil {
		return err
	}

	var (
		title string
		pick  func(seller.State) seller.Collection
	)
	switch kind {
	case "deactivated":
		title, pick = "Deactivated sellers", func(s seller.State) seller.Collection { return s.Deactivated }
		err = a.store.Seller.ListDeactivated(ctx, q)
	case "requests":
		title, pick = "Seller requests", func(s seller.State) seller.Collection { return s.Requests }
		err = a.store.Seller.ListRequests(ctx, q)
	default:
		title, pick = "Active sellers", func(s seller.State) seller.Collection { return s.Active }
		err = a.store.Seller.ListActive(ctx, q)
	}
	if err != nil {
		return err
	}
	a.print(renderPage(title, pick(a.store.Seller.State()), q.PerPage, sellerHeaders, sellerRow))
	return nil
}

func (a *App) seller(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	if err := a.store.Seller.Get(ctx, args[0]); err != nil {
		return err
	}
	s := a.store.Seller.State().Detail.Entity
	fields := []field{
		{"ID", s.ID},
		{"Email", s.Email},
		{"Status", s.Status},
		{"Payment", orDash(s.Payment)},
		{"Method", orDash(s.Method)},
	}
	if s.ShopInfo != nil {
		fields = append(fields,
			field{"Shop", orDash(s.ShopInfo.ShopName)},
			field{"Division", orDash(s.ShopInfo.Division)},
			field{"District", orDash(s.ShopInfo.District)},
		)
	}
	a.print(renderFields(s.Name, fields))
	return nil
}

func (a *App) sellerStatus(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	status := args[1]
	switch status {
	case "deactivated":
		status = models.SellerDeactivated
	case models.SellerActive, models.SellerDeactivated, models.SellerPending:
	default:
		return errUsage
	}
	return a.store.Seller.UpdateStatus(ctx, api.SellerStatusUpdate{SellerID: args[0], Status: status})
}

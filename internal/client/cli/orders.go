package cli

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/marketadmin/internal/client/models"
	"github.com/dmitrijs2005/marketadmin/internal/client/slices/order"
)

var orderHeaders = []string{"ID", "Date", "Price", "Payment", "Delivery"}

func orderRow(o models.Order) []string {
	return []string{o.ID, orDash(o.Date), money(o.Price), orDash(o.PaymentStatus), orDash(o.DeliveryStatus)}
}

// orders lists the admin or the seller order book depending on the role
// the session token carries.
func (a *App) orders(ctx context.Context, args []string) error {
	q, err := a.listQuery(args)
	if err != nil {
		return err
	}
	if a.isAdmin() {
		err = a.store.Order.ListAdmin(ctx, q)
	} else {
		var u *models.UserInfo
		if u, err = a.userInfo(ctx); err != nil {
			return err
		}
		err = a.store.Order.ListSeller(ctx, u.ID, q)
	}
	if err != nil {
		return err
	}
	a.print(renderPage("Orders", a.store.Order.State().List, q.PerPage, orderHeaders, orderRow))
	return nil
}

func (a *App) order(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	get := a.store.Order.GetSeller
	if a.isAdmin() {
		get = a.store.Order.GetAdmin
	}
	if err := get(ctx, args[0]); err != nil {
		return err
	}

	o := a.store.Order.State().Detail.Entity
	a.print(renderFields("Order "+o.ID, []field{
		{"Date", orDash(o.Date)},
		{"Price", money(o.Price)},
		{"Payment", orDash(o.PaymentStatus)},
		{"Delivery", orDash(o.DeliveryStatus)},
		{"Shipping", orDash(o.ShippingInfo)},
	}))
	if len(o.Products) > 0 {
		rows := make([][]string, 0, len(o.Products))
		for _, l := range o.Products {
			rows = append(rows, []string{l.Name, strconv.Itoa(l.Quantity), money(l.Price)})
		}
		a.print(renderTable([]string{"Product", "Qty", "Price"}, rows))
	}
	return nil
}

func (a *App) orderStatus(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	in := order.StatusChange{ID: args[0], Status: args[1]}
	if a.isAdmin() {
		return a.store.Order.UpdateAdminStatus(ctx, in)
	}
	return a.store.Order.UpdateSellerStatus(ctx, in)
}

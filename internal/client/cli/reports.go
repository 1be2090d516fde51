package cli

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/marketadmin/internal/client/models"
	"github.com/dmitrijs2005/marketadmin/internal/client/slices/analytics"
	"github.com/dmitrijs2005/marketadmin/internal/client/slices/dashboard"
)

func (a *App) dashboard(ctx context.Context, args []string) error {
	if a.isAdmin() {
		if err := a.store.Dashboard.LoadAdmin(ctx); err != nil {
			return err
		}
		d := a.store.Dashboard.State().Admin
		a.print(renderFields("Dashboard", []field{
			{"Total sales", money(d.TotalSale)},
			{"Orders", strconv.Itoa(d.TotalOrder)},
			{"Products", strconv.Itoa(d.TotalProduct)},
			{"Sellers", strconv.Itoa(d.TotalSeller)},
		}))
		a.printRecentOrders(d.RecentOrders)
		return nil
	}

	u, err := a.userInfo(ctx)
	if err != nil {
		return err
	}
	period := analytics.DefaultPeriod
	if len(args) > 0 {
		period = args[0]
	}
	if err := a.store.Dashboard.RefreshSeller(ctx, dashboard.ChartQuery{SellerID: u.ID, Period: period}); err != nil {
		return err
	}

	st := a.store.Dashboard.State()
	d := st.Seller
	a.print(renderFields("Dashboard", []field{
		{"Total sales", money(d.TotalSale)},
		{"Change", strconv.FormatFloat(d.SaleChange, 'f', 1, 64) + "%"},
		{"Orders", strconv.Itoa(d.TotalOrder)},
		{"Pending orders", strconv.Itoa(d.TotalPendingOrder)},
		{"Products", strconv.Itoa(d.TotalProduct)},
	}))
	a.printRecentOrders(d.RecentOrders)
	if c := st.Chart; c != nil && len(c.Revenue) > 0 {
		rows := make([][]string, 0, len(c.Revenue))
		for i, p := range c.Revenue {
			orders := "-"
			if i < len(c.Orders) {
				orders = strconv.FormatFloat(c.Orders[i].Value, 'f', -1, 64)
			}
			rows = append(rows, []string{p.Label, money(p.Value), orders})
		}
		a.print(titleStyle.Render("Sales (" + c.Period + ")"))
		a.print(renderTable([]string{"Period", "Revenue", "Orders"}, rows))
	}
	return nil
}

func (a *App) printRecentOrders(orders []models.Order) {
	if len(orders) == 0 {
		return
	}
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, orderRow(o))
	}
	a.print(titleStyle.Render("Recent orders"))
	a.print(renderTable(orderHeaders, rows))
}

func (a *App) analytics(ctx context.Context, args []string) error {
	var period string
	if len(args) > 0 {
		period = args[0]
	}
	if err := a.store.Analytics.Load(ctx, period); err != nil {
		return err
	}

	r := a.store.Analytics.State().Report
	a.print(renderFields("Analytics ("+r.Period+")", []field{
		{"Revenue", money(r.Revenue)},
		{"Orders", strconv.Itoa(r.Orders)},
	}))
	for _, top := range []struct {
		title string
		items []models.RankedItem
	}{
		{"Top products", r.TopProducts},
		{"Top sellers", r.TopSellers},
	} {
		if len(top.items) == 0 {
			continue
		}
		rows := make([][]string, 0, len(top.items))
		for _, it := range top.items {
			rows = append(rows, []string{it.Name, strconv.Itoa(it.Count), money(it.Total)})
		}
		a.print(titleStyle.Render(top.title))
		a.print(renderTable([]string{"Name", "Count", "Total"}, rows))
	}
	return nil
}

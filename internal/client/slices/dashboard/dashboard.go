// Package dashboard holds the admin and seller summary screens and the
// seller sales chart.
package dashboard

import (
	"context"

	"github.com/dmitrijs2005/marketadmin/internal/client/lifecycle"
	"github.com/dmitrijs2005/marketadmin/internal/client/models"
	"github.com/dmitrijs2005/marketadmin/internal/client/slices/entity"
	"golang.org/x/sync/errgroup"
)

const (
	KeyLoadAdmin  = "dashboard/loadAdmin"
	KeyLoadSeller = "dashboard/loadSeller"
	KeyLoadChart  = "dashboard/loadChart"
)

type API interface {
	GetAdminDashboard(ctx context.Context) (*models.AdminDashboard, error)
	GetSellerDashboard(ctx context.Context) (*models.SellerDashboard, error)
	GetChartData(ctx context.Context, sellerID, period string) (*models.ChartData, error)
}

// ChartQuery selects the seller and the period the chart covers.
type ChartQuery struct {
	SellerID string
	Period   string
}

type State struct {
	entity.Status
	Loading      bool
	Admin        *models.AdminDashboard
	Seller       *models.SellerDashboard
	ChartLoading bool
	Chart        *models.ChartData
}

type Slice struct {
	api  API
	cell *lifecycle.Cell[State]
}

func New(a API, opts ...lifecycle.CellOption) *Slice {
	return &Slice{api: a, cell: lifecycle.NewCell(State{}, opts...)}
}

func (s *Slice) State() State { return s.cell.State() }

func (s *Slice) Subscribe(fn func(State)) func() { return s.cell.Subscribe(fn) }

func (s *Slice) Observe(fn func(lifecycle.Event)) func() { return s.cell.Observe(fn) }

func (s *Slice) LoadAdmin(ctx context.Context) error {
	op := lifecycle.Operation[struct{}, *models.AdminDashboard]{
		Key:      KeyLoadAdmin,
		Fallback: "Failed to fetch dashboard data",
		Execute: func(ctx context.Context, _ struct{}) (*models.AdminDashboard, error) {
			return s.api.GetAdminDashboard(ctx)
		},
	}
	r := lifecycle.Reducers[State, struct{}, *models.AdminDashboard]{
		Pending: func(st State, _ struct{}) State { return st.begin() },
		Fulfilled: func(st State, _ struct{}, d *models.AdminDashboard) State {
			st.Loading = false
			st.Admin = d
			return st
		},
		Rejected: func(st State, _ struct{}, e lifecycle.ErrorPayload) State {
			st.Loading = false
			st.Admin = nil
			st.Status = st.Status.Report(e)
			return st
		},
	}
	_, err := lifecycle.Run(ctx, s.cell, op, r, struct{}{})
	return err
}

func (s *Slice) LoadSeller(ctx context.Context) error {
	op := lifecycle.Operation[struct{}, *models.SellerDashboard]{
		Key:      KeyLoadSeller,
		Fallback: "Failed to fetch dashboard data",
		Execute: func(ctx context.Context, _ struct{}) (*models.SellerDashboard, error) {
			return s.api.GetSellerDashboard(ctx)
		},
	}
	r := lifecycle.Reducers[State, struct{}, *models.SellerDashboard]{
		Pending: func(st State, _ struct{}) State { return st.begin() },
		Fulfilled: func(st State, _ struct{}, d *models.SellerDashboard) State {
			st.Loading = false
			st.Seller = d
			return st
		},
		Rejected: func(st State, _ struct{}, e lifecycle.ErrorPayload) State {
			st.Loading = false
			st.Seller = nil
			st.Status = st.Status.Report(e)
			return st
		},
	}
	_, err := lifecycle.Run(ctx, s.cell, op, r, struct{}{})
	return err
}

func (s *Slice) LoadChart(ctx context.Context, q ChartQuery) error {
	op := lifecycle.Operation[ChartQuery, *models.ChartData]{
		Key:      KeyLoadChart,
		Fallback: "Failed to fetch chart data",
		Execute: func(ctx context.Context, q ChartQuery) (*models.ChartData, error) {
			return s.api.GetChartData(ctx, q.SellerID, q.Period)
		},
	}
	r := lifecycle.Reducers[State, ChartQuery, *models.ChartData]{
		Pending: func(st State, _ ChartQuery) State {
			st.Status = st.Status.Quiet()
			st.ChartLoading = true
			return st
		},
		Fulfilled: func(st State, _ ChartQuery, c *models.ChartData) State {
			st.ChartLoading = false
			st.Chart = c
			return st
		},
		Rejected: func(st State, _ ChartQuery, e lifecycle.ErrorPayload) State {
			st.ChartLoading = false
			st.Chart = nil
			st.Status = st.Status.Report(e)
			return st
		},
	}
	_, err := lifecycle.Run(ctx, s.cell, op, r, q)
	return err
}

// RefreshSeller reloads the seller summary and the chart concurrently. Both
// requests run to completion; the first error is returned.
func (s *Slice) RefreshSeller(ctx context.Context, q ChartQuery) error {
	var g errgroup.Group
	g.Go(func() error { return s.LoadSeller(ctx) })
	g.Go(func() error { return s.LoadChart(ctx, q) })
	return g.Wait()
}

// PatchRecentOrder replaces a row of the recent-orders tables after the
// order changed elsewhere.
func (s *Slice) PatchRecentOrder(o models.Order) {
	s.cell.Apply(func(st State) State {
		if st.Admin != nil {
			if rows, ok := patchOrders(st.Admin.RecentOrders, o); ok {
				d := *st.Admin
				d.RecentOrders = rows
				st.Admin = &d
			}
		}
		if st.Seller != nil {
			if rows, ok := patchOrders(st.Seller.RecentOrders, o); ok {
				d := *st.Seller
				d.RecentOrders = rows
				st.Seller = &d
			}
		}
		return st
	})
}

func (s *Slice) ClearMessages() {
	s.cell.Apply(func(st State) State {
		st.Status = st.Status.Cleared()
		return st
	})
}

func (st State) begin() State {
	st.Status = st.Status.Quiet()
	st.Loading = true
	return st
}

func patchOrders(rows []models.Order, o models.Order) ([]models.Order, bool) {
	for i := range rows {
		if rows[i].ID == o.ID {
			out := append([]models.Order(nil), rows...)
			out[i] = o
			return out, true
		}
	}
	return rows, false
}

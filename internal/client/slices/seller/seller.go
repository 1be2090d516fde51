// Package seller is the seller-management slice. Sellers appear in three
// collections (active, deactivated, pending requests) plus a detail, and a
// status change is reflected in all of them at once.
package seller

import (
	"context"

	"github.com/dmitrijs2005/marketadmin/internal/client/api"
	"github.com/dmitrijs2005/marketadmin/internal/client/lifecycle"
	"github.com/dmitrijs2005/marketadmin/internal/client/models"
	"github.com/dmitrijs2005/marketadmin/internal/client/slices/entity"
)

const (
	KeyListActive      = "sellers/listActive"
	KeyListDeactivated = "sellers/listDeactivated"
	KeyListRequests    = "sellers/listRequests"
	KeyGet             = "sellers/get"
	KeyUpdateStatus    = "sellers/updateStatus"
)

type API interface {
	ListActiveSellers(ctx context.Context, q api.ListQuery) (*api.SellerList, error)
	ListDeactivatedSellers(ctx context.Context, q api.ListQuery) (*api.SellerList, error)
	ListSellerRequests(ctx context.Context, q api.ListQuery) (*api.SellerList, error)
	GetSeller(ctx context.Context, id string) (*api.SellerResponse, error)
	UpdateSellerStatus(ctx context.Context, in api.SellerStatusUpdate) (*api.SellerMutation, error)
}

type Collection = entity.Collection[models.Seller]

type State struct {
	entity.Status
	Active      Collection
	Deactivated Collection
	Requests    Collection
	Detail      entity.Detail[models.Seller]
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

func (s *Slice) ListActive(ctx context.Context, q api.ListQuery) error {
	return s.list(ctx, KeyListActive, "Failed to fetch sellers", s.api.ListActiveSellers, active, q)
}

func (s *Slice) ListDeactivated(ctx context.Context, q api.ListQuery) error {
	return s.list(ctx, KeyListDeactivated, "Failed to fetch deactivated sellers", s.api.ListDeactivatedSellers, deactivated, q)
}

func (s *Slice) ListRequests(ctx context.Context, q api.ListQuery) error {
	return s.list(ctx, KeyListRequests, "Failed to fetch seller requests", s.api.ListSellerRequests, requests, q)
}

func active(s *State) *Collection      { return &s.Active }
func deactivated(s *State) *Collection { return &s.Deactivated }
func requests(s *State) *Collection    { return &s.Requests }

type lister func(ctx context.Context, q api.ListQuery) (*api.SellerList, error)

func (s *Slice) list(ctx context.Context, key, fallback string, fetch lister, pick func(*State) *Collection, q api.ListQuery) error {
	op := lifecycle.Operation[api.ListQuery, entity.Page[models.Seller]]{
		Key:      key,
		Fallback: fallback,
		Execute: func(ctx context.Context, q api.ListQuery) (entity.Page[models.Seller], error) {
			out, err := fetch(ctx, q)
			if err != nil {
				return entity.Page[models.Seller]{}, err
			}
			return entity.Page[models.Seller]{Items: out.Sellers, Total: out.TotalSeller}, nil
		},
	}
	r := lifecycle.Reducers[State, api.ListQuery, entity.Page[models.Seller]]{
		Pending: func(st State, q api.ListQuery) State {
			st.Status = st.Status.Quiet()
			c := pick(&st)
			*c = c.Begin(q)
			return st
		},
		Fulfilled: func(st State, _ api.ListQuery, p entity.Page[models.Seller]) State {
			c := pick(&st)
			*c = c.Replace(p.Items, p.Total)
			return st
		},
		Rejected: func(st State, _ api.ListQuery, e lifecycle.ErrorPayload) State {
			st.Status = st.Status.Report(e)
			c := pick(&st)
			*c = c.Clear()
			return st
		},
	}
	_, err := lifecycle.Run(ctx, s.cell, op, r, q)
	return err
}

func (s *Slice) Get(ctx context.Context, id string) error {
	op := lifecycle.Operation[string, models.Seller]{
		Key:      KeyGet,
		Fallback: "Failed to fetch seller",
		Execute: func(ctx context.Context, id string) (models.Seller, error) {
			out, err := s.api.GetSeller(ctx, id)
			if err != nil {
				return models.Seller{}, err
			}
			return out.Seller, nil
		},
	}
	r := lifecycle.Reducers[State, string, models.Seller]{
		Pending: func(st State, _ string) State {
			st.Status = st.Status.Quiet()
			st.Detail = st.Detail.Begin()
			return st
		},
		Fulfilled: func(st State, _ string, sel models.Seller) State {
			st.Detail = st.Detail.Set(sel)
			return st
		},
		Rejected: func(st State, _ string, e lifecycle.ErrorPayload) State {
			st.Status = st.Status.Report(e)
			st.Detail = st.Detail.Clear()
			return st
		},
	}
	_, err := lifecycle.Run(ctx, s.cell, op, r, id)
	return err
}

// UpdateStatus approves, activates or deactivates a seller. The detail and
// every loaded collection holding the seller are patched in the same step;
// the seller stays in its current collection until that one is re-listed.
func (s *Slice) UpdateStatus(ctx context.Context, in api.SellerStatusUpdate) error {
	op := lifecycle.Operation[api.SellerStatusUpdate, entity.Mutation[models.Seller]]{
		Key:      KeyUpdateStatus,
		Fallback: "Failed to update seller status",
		Execute: func(ctx context.Context, in api.SellerStatusUpdate) (entity.Mutation[models.Seller], error) {
			out, err := s.api.UpdateSellerStatus(ctx, in)
			if err != nil {
				return entity.Mutation[models.Seller]{}, err
			}
			return entity.Mutation[models.Seller]{Entity: out.Seller, Message: out.Message}, nil
		},
	}
	r := lifecycle.Reducers[State, api.SellerStatusUpdate, entity.Mutation[models.Seller]]{
		Pending: func(st State, _ api.SellerStatusUpdate) State {
			st.Status = st.Status.Begin()
			return st
		},
		Fulfilled: func(st State, _ api.SellerStatusUpdate, m entity.Mutation[models.Seller]) State {
			st = st.patch(m.Entity)
			st.Status = st.Status.Succeed(entity.Message(m.Message, "Seller status updated"))
			return st
		},
		Rejected: func(st State, _ api.SellerStatusUpdate, e lifecycle.ErrorPayload) State {
			st.Status = st.Status.Fail(e)
			return st
		},
	}
	_, err := lifecycle.Run(ctx, s.cell, op, r, in)
	return err
}

func (st State) patch(sel models.Seller) State {
	st.Active = st.Active.Patch(sel)
	st.Deactivated = st.Deactivated.Patch(sel)
	st.Requests = st.Requests.Patch(sel)
	st.Detail = st.Detail.Patch(sel)
	return st
}

func (s *Slice) ClearMessages() {
	s.cell.Apply(func(st State) State {
		st.Status = st.Status.Cleared()
		return st
	})
}

func (s *Slice) ClearDetail() {
	s.cell.Apply(func(st State) State {
		st.Detail = st.Detail.Clear()
		return st
	})
}

// Package order is the order slice shared by the admin and seller consoles.
// Both variants fill the same list and detail; a session only ever uses
// one of them.
package order

import (
	"context"

	"github.com/dmitrijs2005/marketadmin/internal/client/api"
	"github.com/dmitrijs2005/marketadmin/internal/client/lifecycle"
	"github.com/dmitrijs2005/marketadmin/internal/client/models"
	"github.com/dmitrijs2005/marketadmin/internal/client/slices/entity"
)

const (
	KeyListAdmin          = "orders/listAdmin"
	KeyListSeller         = "orders/listSeller"
	KeyGetAdmin           = "orders/getAdmin"
	KeyGetSeller          = "orders/getSeller"
	KeyUpdateAdminStatus  = "orders/updateAdminStatus"
	KeyUpdateSellerStatus = "orders/updateSellerStatus"
)

type API interface {
	ListAdminOrders(ctx context.Context, q api.ListQuery) (*api.OrderList, error)
	ListSellerOrders(ctx context.Context, sellerID string, q api.ListQuery) (*api.OrderList, error)
	GetAdminOrder(ctx context.Context, id string) (*api.OrderResponse, error)
	GetSellerOrder(ctx context.Context, id string) (*api.OrderResponse, error)
	UpdateAdminOrderStatus(ctx context.Context, id, status string) (*api.OrderMutation, error)
	UpdateSellerOrderStatus(ctx context.Context, id, status string) (*api.OrderMutation, error)
}

// StatusChange moves an order to a new delivery status.
type StatusChange struct {
	ID     string
	Status string
}

type State = entity.State[models.Order]

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

func (s *Slice) ListAdmin(ctx context.Context, q api.ListQuery) error {
	return s.list(ctx, KeyListAdmin, s.api.ListAdminOrders, q)
}

func (s *Slice) ListSeller(ctx context.Context, sellerID string, q api.ListQuery) error {
	return s.list(ctx, KeyListSeller, func(ctx context.Context, q api.ListQuery) (*api.OrderList, error) {
		return s.api.ListSellerOrders(ctx, sellerID, q)
	}, q)
}

func (s *Slice) list(ctx context.Context, key string, fetch func(context.Context, api.ListQuery) (*api.OrderList, error), q api.ListQuery) error {
	op := lifecycle.Operation[api.ListQuery, entity.Page[models.Order]]{
		Key:      key,
		Fallback: "Failed to fetch orders",
		Execute: func(ctx context.Context, q api.ListQuery) (entity.Page[models.Order], error) {
			out, err := fetch(ctx, q)
			if err != nil {
				return entity.Page[models.Order]{}, err
			}
			return entity.Page[models.Order]{Items: out.Orders, Total: out.TotalOrder}, nil
		},
	}
	_, err := lifecycle.Run(ctx, s.cell, op, entity.ListReducers[models.Order](), q)
	return err
}

func (s *Slice) GetAdmin(ctx context.Context, id string) error {
	return s.get(ctx, KeyGetAdmin, s.api.GetAdminOrder, id)
}

func (s *Slice) GetSeller(ctx context.Context, id string) error {
	return s.get(ctx, KeyGetSeller, s.api.GetSellerOrder, id)
}

func (s *Slice) get(ctx context.Context, key string, fetch func(context.Context, string) (*api.OrderResponse, error), id string) error {
	op := lifecycle.Operation[string, models.Order]{
		Key:      key,
		Fallback: "Failed to fetch order",
		Execute: func(ctx context.Context, id string) (models.Order, error) {
			out, err := fetch(ctx, id)
			if err != nil {
				return models.Order{}, err
			}
			return out.Order, nil
		},
	}
	_, err := lifecycle.Run(ctx, s.cell, op, entity.GetReducers[models.Order](), id)
	return err
}

func (s *Slice) UpdateAdminStatus(ctx context.Context, in StatusChange) error {
	return s.updateStatus(ctx, KeyUpdateAdminStatus, s.api.UpdateAdminOrderStatus, in)
}

func (s *Slice) UpdateSellerStatus(ctx context.Context, in StatusChange) error {
	return s.updateStatus(ctx, KeyUpdateSellerStatus, s.api.UpdateSellerOrderStatus, in)
}

type statusUpdater func(ctx context.Context, id, status string) (*api.OrderMutation, error)

func (s *Slice) updateStatus(ctx context.Context, key string, update statusUpdater, in StatusChange) error {
	op := lifecycle.Operation[StatusChange, entity.Mutation[models.Order]]{
		Key:      key,
		Fallback: "Failed to update order status",
		Execute: func(ctx context.Context, in StatusChange) (entity.Mutation[models.Order], error) {
			out, err := update(ctx, in.ID, in.Status)
			if err != nil {
				return entity.Mutation[models.Order]{}, err
			}
			return entity.Mutation[models.Order]{Entity: out.Order, Message: out.Message}, nil
		},
	}
	_, err := lifecycle.Run(ctx, s.cell, op, entity.UpdateReducers[models.Order, StatusChange]("Order status updated"), in)
	return err
}

func (s *Slice) ClearMessages() {
	s.cell.Apply(State.ClearMessages)
}

func (s *Slice) ClearDetail() {
	s.cell.Apply(func(st State) State {
		st.Detail = st.Detail.Clear()
		return st
	})
}

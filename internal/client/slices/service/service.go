// Package service is the bookable-services slice. It mirrors the product
// slice without image replacement.
package service

import (
	"context"

	"github.com/dmitrijs2005/marketadmin/internal/client/api"
	"github.com/dmitrijs2005/marketadmin/internal/client/lifecycle"
	"github.com/dmitrijs2005/marketadmin/internal/client/models"
	"github.com/dmitrijs2005/marketadmin/internal/client/slices/entity"
)

const (
	KeyList   = "services/list"
	KeyGet    = "services/get"
	KeyCreate = "services/create"
	KeyUpdate = "services/update"
	KeyDelete = "services/delete"
)

type API interface {
	ListServices(ctx context.Context, q api.ListQuery) (*api.ServiceList, error)
	GetService(ctx context.Context, id string) (*api.ServiceResponse, error)
	AddService(ctx context.Context, in api.ServiceInput) (*api.MessageResponse, error)
	UpdateService(ctx context.Context, in api.ServiceUpdate) (*api.ServiceMutation, error)
	DeleteService(ctx context.Context, id string) (*api.MessageResponse, error)
}

type State = entity.State[models.Service]

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

func (s *Slice) List(ctx context.Context, q api.ListQuery) error {
	op := lifecycle.Operation[api.ListQuery, entity.Page[models.Service]]{
		Key:      KeyList,
		Fallback: "Failed to fetch services",
		Execute: func(ctx context.Context, q api.ListQuery) (entity.Page[models.Service], error) {
			out, err := s.api.ListServices(ctx, q)
			if err != nil {
				return entity.Page[models.Service]{}, err
			}
			return entity.Page[models.Service]{Items: out.Services, Total: out.TotalService}, nil
		},
	}
	_, err := lifecycle.Run(ctx, s.cell, op, entity.ListReducers[models.Service](), q)
	return err
}

func (s *Slice) Get(ctx context.Context, id string) error {
	op := lifecycle.Operation[string, models.Service]{
		Key:      KeyGet,
		Fallback: "Failed to fetch service",
		Execute: func(ctx context.Context, id string) (models.Service, error) {
			out, err := s.api.GetService(ctx, id)
			if err != nil {
				return models.Service{}, err
			}
			return out.Service, nil
		},
	}
	_, err := lifecycle.Run(ctx, s.cell, op, entity.GetReducers[models.Service](), id)
	return err
}

func (s *Slice) Create(ctx context.Context, in api.ServiceInput) error {
	op := lifecycle.Operation[api.ServiceInput, string]{
		Key:      KeyCreate,
		Fallback: "Failed to add service",
		Execute: func(ctx context.Context, in api.ServiceInput) (string, error) {
			out, err := s.api.AddService(ctx, in)
			if err != nil {
				return "", err
			}
			return out.Message, nil
		},
	}
	_, err := lifecycle.Run(ctx, s.cell, op, entity.MessageReducers[models.Service, api.ServiceInput]("Service added"), in)
	return err
}

// Update also serves status changes (ServiceUpdate.Status); list and detail
// are patched in one step either way.
func (s *Slice) Update(ctx context.Context, in api.ServiceUpdate) error {
	op := lifecycle.Operation[api.ServiceUpdate, entity.Mutation[models.Service]]{
		Key:      KeyUpdate,
		Fallback: "Failed to update service",
		Execute: func(ctx context.Context, in api.ServiceUpdate) (entity.Mutation[models.Service], error) {
			out, err := s.api.UpdateService(ctx, in)
			if err != nil {
				return entity.Mutation[models.Service]{}, err
			}
			return entity.Mutation[models.Service]{Entity: out.Service, Message: out.Message}, nil
		},
	}
	_, err := lifecycle.Run(ctx, s.cell, op, entity.UpdateReducers[models.Service, api.ServiceUpdate]("Service updated"), in)
	return err
}

func (s *Slice) Delete(ctx context.Context, id string) error {
	op := lifecycle.Operation[string, string]{
		Key:      KeyDelete,
		Fallback: "Failed to delete service",
		Execute: func(ctx context.Context, id string) (string, error) {
			out, err := s.api.DeleteService(ctx, id)
			if err != nil {
				return "", err
			}
			return out.Message, nil
		},
	}
	_, err := lifecycle.Run(ctx, s.cell, op, entity.MessageReducers[models.Service, string]("Service deleted"), id)
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

func (s *Slice) MarkStale() {
	s.cell.Apply(func(st State) State {
		st.List = st.List.Invalidate()
		return st
	})
}

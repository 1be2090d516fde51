// Package servicecategory is the service-category slice.
package servicecategory

import (
	"context"

	"github.com/dmitrijs2005/marketadmin/internal/client/api"
	"github.com/dmitrijs2005/marketadmin/internal/client/lifecycle"
	"github.com/dmitrijs2005/marketadmin/internal/client/models"
	"github.com/dmitrijs2005/marketadmin/internal/client/slices/entity"
)

const (
	KeyList   = "serviceCategories/list"
	KeyCreate = "serviceCategories/create"
	KeyUpdate = "serviceCategories/update"
	KeyDelete = "serviceCategories/delete"
)

type API interface {
	ListServiceCategories(ctx context.Context, q api.ListQuery) (*api.ServiceCategoryList, error)
	AddServiceCategory(ctx context.Context, in api.CategoryInput) (*api.ServiceCategoryMutation, error)
	UpdateServiceCategory(ctx context.Context, id string, in api.CategoryInput) (*api.ServiceCategoryMutation, error)
	DeleteServiceCategory(ctx context.Context, id string) (*api.MessageResponse, error)
}

// Edit renames a service category or replaces its image.
type Edit struct {
	ID    string
	Input api.CategoryInput
}

type State = entity.State[models.ServiceCategory]

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
	op := lifecycle.Operation[api.ListQuery, entity.Page[models.ServiceCategory]]{
		Key:      KeyList,
		Fallback: "Failed to fetch service categories",
		Execute: func(ctx context.Context, q api.ListQuery) (entity.Page[models.ServiceCategory], error) {
			out, err := s.api.ListServiceCategories(ctx, q)
			if err != nil {
				return entity.Page[models.ServiceCategory]{}, err
			}
			return entity.Page[models.ServiceCategory]{Items: out.ServiceCategories, Total: out.TotalServiceCategory}, nil
		},
	}
	_, err := lifecycle.Run(ctx, s.cell, op, entity.ListReducers[models.ServiceCategory](), q)
	return err
}

func (s *Slice) Create(ctx context.Context, in api.CategoryInput) error {
	op := lifecycle.Operation[api.CategoryInput, string]{
		Key:      KeyCreate,
		Fallback: "Failed to add service category",
		Execute: func(ctx context.Context, in api.CategoryInput) (string, error) {
			out, err := s.api.AddServiceCategory(ctx, in)
			if err != nil {
				return "", err
			}
			return out.Message, nil
		},
	}
	_, err := lifecycle.Run(ctx, s.cell, op, entity.MessageReducers[models.ServiceCategory, api.CategoryInput]("Service category added"), in)
	return err
}

func (s *Slice) Update(ctx context.Context, in Edit) error {
	op := lifecycle.Operation[Edit, entity.Mutation[models.ServiceCategory]]{
		Key:      KeyUpdate,
		Fallback: "Failed to update service category",
		Execute: func(ctx context.Context, in Edit) (entity.Mutation[models.ServiceCategory], error) {
			out, err := s.api.UpdateServiceCategory(ctx, in.ID, in.Input)
			if err != nil {
				return entity.Mutation[models.ServiceCategory]{}, err
			}
			return entity.Mutation[models.ServiceCategory]{Entity: out.ServiceCategory, Message: out.Message}, nil
		},
	}
	_, err := lifecycle.Run(ctx, s.cell, op, entity.UpdateReducers[models.ServiceCategory, Edit]("Service category updated"), in)
	return err
}

// Delete removes a service category. Services filtered by it are flagged
// stale by the store, not here.
func (s *Slice) Delete(ctx context.Context, id string) error {
	op := lifecycle.Operation[string, string]{
		Key:      KeyDelete,
		Fallback: "Failed to delete service category",
		Execute: func(ctx context.Context, id string) (string, error) {
			out, err := s.api.DeleteServiceCategory(ctx, id)
			if err != nil {
				return "", err
			}
			return out.Message, nil
		},
	}
	_, err := lifecycle.Run(ctx, s.cell, op, entity.MessageReducers[models.ServiceCategory, string]("Service category deleted"), id)
	return err
}

func (s *Slice) ClearMessages() {
	s.cell.Apply(State.ClearMessages)
}

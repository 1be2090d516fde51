// Package category is the product-category slice.
package category

import (
	"context"

	"github.com/dmitrijs2005/marketadmin/internal/client/api"
	"github.com/dmitrijs2005/marketadmin/internal/client/lifecycle"
	"github.com/dmitrijs2005/marketadmin/internal/client/models"
	"github.com/dmitrijs2005/marketadmin/internal/client/slices/entity"
)

const (
	KeyList   = "categories/list"
	KeyCreate = "categories/create"
	KeyUpdate = "categories/update"
	KeyDelete = "categories/delete"
)

type API interface {
	ListCategories(ctx context.Context, q api.ListQuery) (*api.CategoryList, error)
	AddCategory(ctx context.Context, in api.CategoryInput) (*api.CategoryMutation, error)
	UpdateCategory(ctx context.Context, id string, in api.CategoryInput) (*api.CategoryMutation, error)
	DeleteCategory(ctx context.Context, id string) (*api.MessageResponse, error)
}

// Edit renames a category or replaces its image.
type Edit struct {
	ID    string
	Input api.CategoryInput
}

type State = entity.State[models.Category]

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
	op := lifecycle.Operation[api.ListQuery, entity.Page[models.Category]]{
		Key:      KeyList,
		Fallback: "Failed to fetch categories",
		Execute: func(ctx context.Context, q api.ListQuery) (entity.Page[models.Category], error) {
			out, err := s.api.ListCategories(ctx, q)
			if err != nil {
				return entity.Page[models.Category]{}, err
			}
			return entity.Page[models.Category]{Items: out.Categories, Total: out.TotalCategory}, nil
		},
	}
	_, err := lifecycle.Run(ctx, s.cell, op, entity.ListReducers[models.Category](), q)
	return err
}

func (s *Slice) Create(ctx context.Context, in api.CategoryInput) error {
	op := lifecycle.Operation[api.CategoryInput, string]{
		Key:      KeyCreate,
		Fallback: "Failed to add category",
		Execute: func(ctx context.Context, in api.CategoryInput) (string, error) {
			out, err := s.api.AddCategory(ctx, in)
			if err != nil {
				return "", err
			}
			return out.Message, nil
		},
	}
	_, err := lifecycle.Run(ctx, s.cell, op, entity.MessageReducers[models.Category, api.CategoryInput]("Category added"), in)
	return err
}

func (s *Slice) Update(ctx context.Context, in Edit) error {
	op := lifecycle.Operation[Edit, entity.Mutation[models.Category]]{
		Key:      KeyUpdate,
		Fallback: "Failed to update category",
		Execute: func(ctx context.Context, in Edit) (entity.Mutation[models.Category], error) {
			out, err := s.api.UpdateCategory(ctx, in.ID, in.Input)
			if err != nil {
				return entity.Mutation[models.Category]{}, err
			}
			return entity.Mutation[models.Category]{Entity: out.Category, Message: out.Message}, nil
		},
	}
	_, err := lifecycle.Run(ctx, s.cell, op, entity.UpdateReducers[models.Category, Edit]("Category updated"), in)
	return err
}

// Delete removes a category. Products filtered by it are flagged stale by
// the store, not here.
func (s *Slice) Delete(ctx context.Context, id string) error {
	op := lifecycle.Operation[string, string]{
		Key:      KeyDelete,
		Fallback: "Failed to delete category",
		Execute: func(ctx context.Context, id string) (string, error) {
			out, err := s.api.DeleteCategory(ctx, id)
			if err != nil {
				return "", err
			}
			return out.Message, nil
		},
	}
	_, err := lifecycle.Run(ctx, s.cell, op, entity.MessageReducers[models.Category, string]("Category deleted"), id)
	return err
}

func (s *Slice) ClearMessages() {
	s.cell.Apply(State.ClearMessages)
}

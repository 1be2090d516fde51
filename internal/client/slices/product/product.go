// Package product is the product catalog slice: one paginated list, one
// detail, and the create/update/image/delete mutations.
package product

import (
	"context"

	"github.com/dmitrijs2005/marketadmin/internal/client/api"
	"github.com/dmitrijs2005/marketadmin/internal/client/lifecycle"
	"github.com/dmitrijs2005/marketadmin/internal/client/models"
	"github.com/dmitrijs2005/marketadmin/internal/client/slices/entity"
)

const (
	KeyList        = "products/list"
	KeyGet         = "products/get"
	KeyCreate      = "products/create"
	KeyUpdate      = "products/update"
	KeyUpdateImage = "products/updateImage"
	KeyDelete      = "products/delete"
)

// API is the part of the REST client this slice calls.
type API interface {
	ListProducts(ctx context.Context, q api.ListQuery) (*api.ProductList, error)
	GetProduct(ctx context.Context, id string) (*api.ProductResponse, error)
	AddProduct(ctx context.Context, in api.ProductInput) (*api.MessageResponse, error)
	UpdateProduct(ctx context.Context, in api.ProductUpdate) (*api.ProductMutation, error)
	UpdateProductImage(ctx context.Context, in api.ProductImageUpdate) (*api.ProductMutation, error)
	DeleteProduct(ctx context.Context, id string) (*api.MessageResponse, error)
}

type State = entity.State[models.Product]

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
	op := lifecycle.Operation[api.ListQuery, entity.Page[models.Product]]{
		Key:      KeyList,
		Fallback: "Failed to fetch products",
		Execute: func(ctx context.Context, q api.ListQuery) (entity.Page[models.Product], error) {
			out, err := s.api.ListProducts(ctx, q)
			if err != nil {
				return entity.Page[models.Product]{}, err
			}
			return entity.Page[models.Product]{Items: out.Products, Total: out.TotalProduct}, nil
		},
	}
	_, err := lifecycle.Run(ctx, s.cell, op, entity.ListReducers[models.Product](), q)
	return err
}

func (s *Slice) Get(ctx context.Context, id string) error {
	op := lifecycle.Operation[string, models.Product]{
		Key:      KeyGet,
		Fallback: "Failed to fetch product",
		Execute: func(ctx context.Context, id string) (models.Product, error) {
			out, err := s.api.GetProduct(ctx, id)
			if err != nil {
				return models.Product{}, err
			}
			return out.Product, nil
		},
	}
	_, err := lifecycle.Run(ctx, s.cell, op, entity.GetReducers[models.Product](), id)
	return err
}

// Create adds a product. The list is not touched; callers re-list.
func (s *Slice) Create(ctx context.Context, in api.ProductInput) error {
	op := lifecycle.Operation[api.ProductInput, string]{
		Key:      KeyCreate,
		Fallback: "Failed to add product",
		Execute: func(ctx context.Context, in api.ProductInput) (string, error) {
			out, err := s.api.AddProduct(ctx, in)
			if err != nil {
				return "", err
			}
			return out.Message, nil
		},
	}
	_, err := lifecycle.Run(ctx, s.cell, op, entity.MessageReducers[models.Product, api.ProductInput]("Product added"), in)
	return err
}

func (s *Slice) Update(ctx context.Context, in api.ProductUpdate) error {
	op := lifecycle.Operation[api.ProductUpdate, entity.Mutation[models.Product]]{
		Key:      KeyUpdate,
		Fallback: "Failed to update product",
		Execute: func(ctx context.Context, in api.ProductUpdate) (entity.Mutation[models.Product], error) {
			return mutation(s.api.UpdateProduct(ctx, in))
		},
	}
	_, err := lifecycle.Run(ctx, s.cell, op, entity.UpdateReducers[models.Product, api.ProductUpdate]("Product updated"), in)
	return err
}

func (s *Slice) UpdateImage(ctx context.Context, in api.ProductImageUpdate) error {
	op := lifecycle.Operation[api.ProductImageUpdate, entity.Mutation[models.Product]]{
		Key:      KeyUpdateImage,
		Fallback: "Failed to update product image",
		Execute: func(ctx context.Context, in api.ProductImageUpdate) (entity.Mutation[models.Product], error) {
			return mutation(s.api.UpdateProductImage(ctx, in))
		},
	}
	_, err := lifecycle.Run(ctx, s.cell, op, entity.UpdateReducers[models.Product, api.ProductImageUpdate]("Product image updated"), in)
	return err
}

// Delete removes a product on the server; the current page keeps showing
// it until the caller re-lists.
func (s *Slice) Delete(ctx context.Context, id string) error {
	op := lifecycle.Operation[string, string]{
		Key:      KeyDelete,
		Fallback: "Failed to delete product",
		Execute: func(ctx context.Context, id string) (string, error) {
			out, err := s.api.DeleteProduct(ctx, id)
			if err != nil {
				return "", err
			}
			return out.Message, nil
		},
	}
	_, err := lifecycle.Run(ctx, s.cell, op, entity.MessageReducers[models.Product, string]("Product deleted"), id)
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

// MarkStale flags the current page as out of date, e.g. after the category
// it was filtered by was deleted.
func (s *Slice) MarkStale() {
	s.cell.Apply(func(st State) State {
		st.List = st.List.Invalidate()
		return st
	})
}

func mutation(out *api.ProductMutation, err error) (entity.Mutation[models.Product], error) {
	if err != nil {
		return entity.Mutation[models.Product]{}, err
	}
	return entity.Mutation[models.Product]{Entity: out.Product, Message: out.Message}, nil
}

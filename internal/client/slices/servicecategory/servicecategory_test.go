package servicecategory

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/marketadmin/internal/client/api"
	"github.com/dmitrijs2005/marketadmin/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	list    *api.ServiceCategoryList
	listErr error
}

func (f *fakeAPI) ListServiceCategories(context.Context, api.ListQuery) (*api.ServiceCategoryList, error) {
	return f.list, f.listErr
}

func (f *fakeAPI) AddServiceCategory(context.Context, api.CategoryInput) (*api.ServiceCategoryMutation, error) {
	return &api.ServiceCategoryMutation{Message: "Service category created"}, nil
}

func (f *fakeAPI) UpdateServiceCategory(_ context.Context, id string, in api.CategoryInput) (*api.ServiceCategoryMutation, error) {
	return &api.ServiceCategoryMutation{ServiceCategory: models.ServiceCategory{ID: id, Name: in.Name}}, nil
}

func (f *fakeAPI) DeleteServiceCategory(context.Context, string) (*api.MessageResponse, error) {
	return nil, errors.New("connection reset")
}

func TestLifecycle(t *testing.T) {
	f := &fakeAPI{list: &api.ServiceCategoryList{
		ServiceCategories:    []models.ServiceCategory{{ID: "s1", Name: "Beauty"}},
		TotalServiceCategory: 1,
	}}
	s := New(f)
	ctx := context.Background()

	require.NoError(t, s.List(ctx, api.ListQuery{Page: 1, PerPage: 5}))
	assert.Len(t, s.State().List.Items, 1)

	require.NoError(t, s.Create(ctx, api.CategoryInput{Name: "Fitness"}))
	assert.Equal(t, "Service category created", s.State().SuccessMessage)

	require.NoError(t, s.Update(ctx, Edit{ID: "s1", Input: api.CategoryInput{Name: "Wellness"}}))
	assert.Equal(t, "Wellness", s.State().List.Items[0].Name)
	assert.Equal(t, "Service category updated", s.State().SuccessMessage)

	require.Error(t, s.Delete(ctx, "s1"))
	assert.Equal(t, "Failed to delete service category", s.State().ErrorMessage)
	assert.Empty(t, s.State().SuccessMessage)
	assert.Len(t, s.State().List.Items, 1)

	s.ClearMessages()
	assert.Empty(t, s.State().ErrorMessage)
}

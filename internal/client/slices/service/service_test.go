package service

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/marketadmin/internal/client/api"
	"github.com/dmitrijs2005/marketadmin/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	list    *api.ServiceList
	listErr error

	service *api.ServiceResponse

	mutation  *api.ServiceMutation
	updateErr error

	message *api.MessageResponse
}

func (f *fakeAPI) ListServices(context.Context, api.ListQuery) (*api.ServiceList, error) {
	return f.list, f.listErr
}

func (f *fakeAPI) GetService(context.Context, string) (*api.ServiceResponse, error) {
	return f.service, nil
}

func (f *fakeAPI) AddService(context.Context, api.ServiceInput) (*api.MessageResponse, error) {
	return &api.MessageResponse{}, nil
}

func (f *fakeAPI) UpdateService(context.Context, api.ServiceUpdate) (*api.ServiceMutation, error) {
	return f.mutation, f.updateErr
}

func (f *fakeAPI) DeleteService(context.Context, string) (*api.MessageResponse, error) {
	return f.message, nil
}

func TestStatusUpdate_PatchesListAndDetail(t *testing.T) {
	x := models.Service{ID: "X", Name: "Haircut", Status: "pending"}
	f := &fakeAPI{
		list:    &api.ServiceList{Services: []models.Service{{ID: "W"}, x}, TotalService: 2},
		service: &api.ServiceResponse{Service: x},
	}
	s := New(f)
	ctx := context.Background()

	require.NoError(t, s.List(ctx, api.ListQuery{Page: 1, PerPage: 5}))
	require.NoError(t, s.Get(ctx, "X"))

	active := x
	active.Status = "active"
	f.mutation = &api.ServiceMutation{Service: active, Message: "Status updated"}
	require.NoError(t, s.Update(ctx, api.ServiceUpdate{ServiceID: "X", Status: "active"}))

	st := s.State()
	assert.Equal(t, "active", st.List.Items[1].Status)
	assert.Equal(t, "active", st.Detail.Entity.Status)
	assert.Equal(t, "Status updated", st.SuccessMessage)
	assert.Empty(t, st.ErrorMessage)
}

func TestList_FailClosed(t *testing.T) {
	f := &fakeAPI{list: &api.ServiceList{Services: []models.Service{{ID: "a"}, {ID: "b"}}, TotalService: 2}}
	s := New(f)
	ctx := context.Background()

	require.NoError(t, s.List(ctx, api.ListQuery{Page: 1, PerPage: 5}))
	f.listErr = &api.Error{Status: 500, Body: []byte(`{"error":"Internal Server Error"}`)}
	require.Error(t, s.List(ctx, api.ListQuery{Page: 1, PerPage: 5}))

	assert.Empty(t, s.State().List.Items)
	assert.Zero(t, s.State().List.TotalCount)
	assert.Equal(t, "Internal Server Error", s.State().ErrorMessage)
}

func TestCreateAndDelete_DefaultMessages(t *testing.T) {
	f := &fakeAPI{message: &api.MessageResponse{}}
	s := New(f)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, api.ServiceInput{Name: "Massage"}))
	assert.Equal(t, "Service added", s.State().SuccessMessage)

	require.NoError(t, s.Delete(ctx, "X"))
	assert.Equal(t, "Service deleted", s.State().SuccessMessage)
	assert.False(t, s.State().Loader)

	s.MarkStale()
	assert.True(t, s.State().List.Stale)
	s.ClearMessages()
	assert.Empty(t, s.State().SuccessMessage)
	s.ClearDetail()
	assert.Nil(t, s.State().Detail.Entity)
}

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/marketadmin/internal/client/api"
	"github.com/dmitrijs2005/marketadmin/internal/client/models"
	"github.com/dmitrijs2005/marketadmin/internal/client/storage"
	"github.com/dmitrijs2005/marketadmin/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- fakes ----

type fakeLogoutAPI struct {
	err   error
	calls int
	steps *[]string
}

func (f *fakeLogoutAPI) Logout(context.Context) (*api.MessageResponse, error) {
	f.calls++
	*f.steps = append(*f.steps, "server")
	if f.err != nil {
		return nil, f.err
	}
	return &api.MessageResponse{Message: "Logout success"}, nil
}

type fakeClearer struct {
	steps *[]string
}

func (f *fakeClearer) ClearSession() { *f.steps = append(*f.steps, "state") }

type stepStorage struct {
	*storage.MemoryTokenStorage
	removeErr error
	steps     *[]string
}

func (s *stepStorage) Remove(ctx context.Context) error {
	*s.steps = append(*s.steps, "storage")
	if s.removeErr != nil {
		return s.removeErr
	}
	return s.MemoryTokenStorage.Remove(ctx)
}

func setup(apiErr, removeErr error) (SessionService, *stepStorage, *[]string) {
	steps := &[]string{}
	tokens := &stepStorage{MemoryTokenStorage: storage.NewMemoryTokenStorage("tok"), removeErr: removeErr, steps: steps}
	svc := NewSessionService(&fakeLogoutAPI{err: apiErr, steps: steps}, tokens, &fakeClearer{steps: steps}, logging.Nop())
	return svc, tokens, steps
}

// ---- tests ----

func TestLogout_Order(t *testing.T) {
	svc, tokens, steps := setup(nil, nil)

	var route string
	err := svc.Logout(context.Background(), models.RoleAdmin, func(r string) {
		route = r
		*steps = append(*steps, "navigate")
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"server", "storage", "state", "navigate"}, *steps)
	assert.Equal(t, AdminLoginRoute, route)
	stored, _ := tokens.Get(context.Background())
	assert.Empty(t, stored)
}

func TestLogout_ServerFailureStillClears(t *testing.T) {
	svc, tokens, steps := setup(errors.New("connection refused"), nil)

	var route string
	err := svc.Logout(context.Background(), models.RoleSeller, func(r string) { route = r })
	require.NoError(t, err)

	assert.Equal(t, []string{"server", "storage", "state"}, *steps)
	assert.Equal(t, SellerLoginRoute, route)
	stored, _ := tokens.Get(context.Background())
	assert.Empty(t, stored)
}

func TestLogout_StorageFailureStillNavigates(t *testing.T) {
	svc, _, steps := setup(nil, errors.New("database is locked"))

	var route string
	err := svc.Logout(context.Background(), "", func(r string) { route = r })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database is locked")

	assert.Equal(t, []string{"server", "storage", "state"}, *steps, "in-memory session is cleared regardless")
	assert.Equal(t, SellerLoginRoute, route)
}

func TestLogout_NilNavigator(t *testing.T) {
	svc, _, _ := setup(nil, nil)
	assert.NoError(t, svc.Logout(context.Background(), models.RoleAdmin, nil))
}

func TestLoginRoute(t *testing.T) {
	assert.Equal(t, "/admin/login", LoginRoute(models.RoleAdmin))
	assert.Equal(t, "/login", LoginRoute(models.RoleSeller))
	assert.Equal(t, "/login", LoginRoute(""))
}

package dashboard

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/dmitrijs2005/marketadmin/internal/client/api"
	"github.com/dmitrijs2005/marketadmin/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	admin     *models.AdminDashboard
	seller    *models.SellerDashboard
	sellerErr error
	chart     *models.ChartData
	chartErr  error

	// gate makes both refresh calls wait until the other one started.
	gate     *sync.WaitGroup
	inFlight atomic.Int32
	peak     atomic.Int32
}

func (f *fakeAPI) enter() {
	n := f.inFlight.Add(1)
	for {
		p := f.peak.Load()
		if n <= p || f.peak.CompareAndSwap(p, n) {
			break
		}
	}
	if f.gate != nil {
		f.gate.Done()
		f.gate.Wait()
	}
}

func (f *fakeAPI) GetAdminDashboard(context.Context) (*models.AdminDashboard, error) {
	return f.admin, nil
}

func (f *fakeAPI) GetSellerDashboard(context.Context) (*models.SellerDashboard, error) {
	f.enter()
	defer f.inFlight.Add(-1)
	return f.seller, f.sellerErr
}

func (f *fakeAPI) GetChartData(_ context.Context, sellerID, period string) (*models.ChartData, error) {
	f.enter()
	defer f.inFlight.Add(-1)
	if f.chartErr != nil {
		return nil, f.chartErr
	}
	c := *f.chart
	c.Period = period
	return &c, nil
}

func TestLoadAdmin(t *testing.T) {
	f := &fakeAPI{admin: &models.AdminDashboard{TotalSale: 1500, TotalSeller: 4}}
	s := New(f)

	require.NoError(t, s.LoadAdmin(context.Background()))
	st := s.State()
	require.NotNil(t, st.Admin)
	assert.Equal(t, 4, st.Admin.TotalSeller)
	assert.False(t, st.Loading)
	assert.Empty(t, st.SuccessMessage)
}

func TestRefreshSeller_RunsConcurrently(t *testing.T) {
	gate := &sync.WaitGroup{}
	gate.Add(2)
	f := &fakeAPI{
		seller: &models.SellerDashboard{TotalOrder: 9, TotalPendingOrder: 2},
		chart:  &models.ChartData{Orders: []models.ChartPoint{{Label: "Jan", Value: 3}}},
		gate:   gate,
	}
	s := New(f)

	require.NoError(t, s.RefreshSeller(context.Background(), ChartQuery{SellerID: "s1", Period: "month"}))

	st := s.State()
	assert.EqualValues(t, 2, f.peak.Load())
	require.NotNil(t, st.Seller)
	assert.Equal(t, 9, st.Seller.TotalOrder)
	require.NotNil(t, st.Chart)
	assert.Equal(t, "month", st.Chart.Period)
	assert.False(t, st.Loading)
	assert.False(t, st.ChartLoading)
}

func TestRefreshSeller_ChartFailureKeepsSummary(t *testing.T) {
	gate := &sync.WaitGroup{}
	gate.Add(2)
	f := &fakeAPI{
		seller:   &models.SellerDashboard{TotalOrder: 9},
		chartErr: errors.New("timeout"),
		gate:     gate,
	}
	s := New(f)

	err := s.RefreshSeller(context.Background(), ChartQuery{SellerID: "s1", Period: "week"})
	require.Error(t, err)

	st := s.State()
	require.NotNil(t, st.Seller)
	assert.Nil(t, st.Chart)
	assert.Equal(t, "Failed to fetch chart data", st.ErrorMessage)
}

func TestLoadSeller_FailureUsesServerMessage(t *testing.T) {
	f := &fakeAPI{sellerErr: &api.Error{Status: 401, Body: []byte(`{"error":"Unauthorized"}`)}}
	s := New(f)

	err := s.LoadSeller(context.Background())
	require.ErrorIs(t, err, api.ErrUnauthorized)
	assert.Equal(t, "Unauthorized", s.State().ErrorMessage)
	assert.Nil(t, s.State().Seller)

	s.ClearMessages()
	assert.Empty(t, s.State().ErrorMessage)
}

func TestPatchRecentOrder(t *testing.T) {
	orig := &models.AdminDashboard{RecentOrders: []models.Order{
		{ID: "o1", DeliveryStatus: "pending"},
		{ID: "o2", DeliveryStatus: "pending"},
	}}
	s := New(&fakeAPI{admin: orig})
	require.NoError(t, s.LoadAdmin(context.Background()))

	s.PatchRecentOrder(models.Order{ID: "o2", DeliveryStatus: "delivered"})

	st := s.State()
	assert.Equal(t, "delivered", st.Admin.RecentOrders[1].DeliveryStatus)
	assert.Equal(t, "pending", orig.RecentOrders[1].DeliveryStatus, "previous snapshot is not mutated")

	before := s.State()
	s.PatchRecentOrder(models.Order{ID: "missing"})
	assert.Same(t, before.Admin, s.State().Admin)
}

package store

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/marketadmin/internal/client/api"
	"github.com/dmitrijs2005/marketadmin/internal/client/models"
	"github.com/dmitrijs2005/marketadmin/internal/client/services"
	"github.com/dmitrijs2005/marketadmin/internal/client/session"
	"github.com/dmitrijs2005/marketadmin/internal/client/slices/order"
	"github.com/dmitrijs2005/marketadmin/internal/client/storage"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fixture is an in-process stand-in for the marketplace API.
type fixture struct {
	mu          sync.Mutex
	total       int
	hits        map[string]int
	logoutFails bool
}

func (f *fixture) hit(route string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hits[route]++
}

func (f *fixture) count(route string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[route]
}

func pageOf(page, perPage int) []gin.H {
	out := make([]gin.H, perPage)
	for i := range out {
		out[i] = gin.H{"_id": fmt.Sprintf("p%d-%d", page, i), "name": fmt.Sprintf("Product %d.%d", page, i), "price": 10}
	}
	return out
}

func (f *fixture) routes(r *gin.Engine) {
	g := r.Group("/api", func(c *gin.Context) {
		f.hit(c.Request.Method + " " + c.FullPath())
		c.Next()
	})

	g.GET("/products-get", func(c *gin.Context) {
		page, _ := strconv.Atoi(c.Query("page"))
		perPage, _ := strconv.Atoi(c.Query("parPage"))
		if c.Query("searchValue") == "explode" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "search index unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": pageOf(page, perPage), "totalProduct": f.total})
	})
	g.DELETE("/product-delete/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
	})
	g.DELETE("/category-delete/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
	})
	g.DELETE("/service-category-delete/:id", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service category not found"})
	})
	g.GET("/admin/get-dashboard-data", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"totalSale": 900,
			"recentOrders": []gin.H{
				{"_id": "o1", "price": 10, "delivery_status": "pending"},
				{"_id": "o2", "price": 20, "delivery_status": "pending"},
			},
		})
	})
	g.PUT("/admin/order-status/update/:id", func(c *gin.Context) {
		var body struct {
			Status string `json:"status"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"order":   gin.H{"_id": c.Param("id"), "price": 20, "delivery_status": body.Status},
			"message": "order status updated",
		})
	})
	g.POST("/logout", func(c *gin.Context) {
		if f.logoutFails {
			c.JSON(http.StatusBadGateway, gin.H{"error": "upstream"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "logout success"})
	})
}

func newStore(t *testing.T, f *fixture, tokens storage.TokenStorage, opts ...Option) *Store {
	t.Helper()
	if f.hits == nil {
		f.hits = map[string]int{}
	}
	r := gin.New()
	f.routes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	c, err := api.New(srv.URL+"/api",
		api.WithTimeout(5*time.Second),
		api.WithTokenSource(api.TokenSourceFunc(tokens.Get)))
	require.NoError(t, err)

	s := New(c, tokens, opts...)
	t.Cleanup(s.Close)
	return s
}

func mint(t *testing.T, role string, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, session.Claims{
		Role:             role,
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)},
	})
	s, err := tok.SignedString([]byte("fixture"))
	require.NoError(t, err)
	return s
}

func TestDomains(t *testing.T) {
	s := newStore(t, &fixture{}, storage.NewMemoryTokenStorage(""))

	assert.Equal(t, []string{
		"auth", "category", "product", "service", "serviceCategory",
		"seller", "order", "dashboard", "analytics",
	}, s.Domains())

	for _, d := range s.Domains() {
		_, ok := s.Get(d)
		assert.True(t, ok, d)
	}
	_, ok := s.Get("nope")
	assert.False(t, ok)
}

func TestProductPagingScenario(t *testing.T) {
	f := &fixture{total: 23}
	s := newStore(t, f, storage.NewMemoryTokenStorage(""))
	ctx := context.Background()

	require.NoError(t, s.Product.List(ctx, api.ListQuery{Page: 1, PerPage: 5}))
	st := s.Snapshot().Product
	require.Len(t, st.List.Items, 5)
	assert.Equal(t, 23, st.List.TotalCount)
	assert.Equal(t, "p1-0", st.List.Items[0].ID)

	require.NoError(t, s.Product.List(ctx, api.ListQuery{Page: 2, PerPage: 5}))
	st = s.Snapshot().Product
	require.Len(t, st.List.Items, 5)
	assert.Equal(t, 23, st.List.TotalCount)
	for _, p := range st.List.Items {
		assert.Contains(t, p.ID, "p2-")
	}

	require.Error(t, s.Product.List(ctx, api.ListQuery{Page: 1, PerPage: 5, SearchText: "explode"}))
	st = s.Snapshot().Product
	assert.Empty(t, st.List.Items)
	assert.Zero(t, st.List.TotalCount)
	assert.Equal(t, "search index unavailable", st.ErrorMessage)
}

func TestDeleteScenario_ItemsUnchanged(t *testing.T) {
	f := &fixture{total: 5}
	s := newStore(t, f, storage.NewMemoryTokenStorage(""))
	ctx := context.Background()

	require.NoError(t, s.Product.List(ctx, api.ListQuery{Page: 1, PerPage: 5}))
	before := s.Snapshot().Product.List.Items

	require.NoError(t, s.Product.Delete(ctx, "abc123"))

	st := s.Snapshot().Product
	assert.Equal(t, "Deleted", st.SuccessMessage)
	assert.False(t, st.Loader)
	assert.Empty(t, cmp.Diff(before, st.List.Items))
	assert.Equal(t, 1, f.count("GET /api/products-get"), "no re-list on delete")
}

func TestCategoryDeleteMarksProductsStale(t *testing.T) {
	f := &fixture{total: 5}
	s := newStore(t, f, storage.NewMemoryTokenStorage(""))
	ctx := context.Background()

	require.NoError(t, s.Product.List(ctx, api.ListQuery{Page: 1, PerPage: 5}))
	require.False(t, s.Snapshot().Product.List.Stale)

	require.NoError(t, s.Category.Delete(ctx, "c1"))
	assert.True(t, s.Snapshot().Product.List.Stale)
	assert.Equal(t, "Category deleted", s.Snapshot().Category.SuccessMessage)
	assert.Empty(t, s.Snapshot().Product.SuccessMessage, "only the stale flag changes")

	require.NoError(t, s.Product.List(ctx, s.Snapshot().Product.List.Query))
	assert.False(t, s.Snapshot().Product.List.Stale)
}

func TestFailedServiceCategoryDeleteLeavesServices(t *testing.T) {
	s := newStore(t, &fixture{}, storage.NewMemoryTokenStorage(""))

	require.Error(t, s.ServiceCategory.Delete(context.Background(), "sc1"))
	assert.False(t, s.Snapshot().Service.List.Stale)
	assert.Equal(t, "Service category not found", s.Snapshot().ServiceCategory.ErrorMessage)
}

func TestOrderStatusPatchesDashboard(t *testing.T) {
	s := newStore(t, &fixture{}, storage.NewMemoryTokenStorage(""))
	ctx := context.Background()

	require.NoError(t, s.Dashboard.LoadAdmin(ctx))
	require.NoError(t, s.Order.UpdateAdminStatus(ctx, order.StatusChange{ID: "o2", Status: "delivered"}))

	rows := s.Snapshot().Dashboard.Admin.RecentOrders
	assert.Equal(t, []models.Order{
		{ID: "o1", Price: 10, DeliveryStatus: "pending"},
		{ID: "o2", Price: 20, DeliveryStatus: "delivered"},
	}, rows)
}

func TestCloseDetachesGlue(t *testing.T) {
	f := &fixture{total: 5}
	s := newStore(t, f, storage.NewMemoryTokenStorage(""))
	ctx := context.Background()

	s.Close()
	require.NoError(t, s.Category.Delete(ctx, "c1"))
	assert.False(t, s.Snapshot().Product.List.Stale)
}

func TestSubscribe_ReportsDomain(t *testing.T) {
	s := newStore(t, &fixture{total: 5}, storage.NewMemoryTokenStorage(""))

	var mu sync.Mutex
	var seen []string
	unsub := s.Subscribe(func(d string) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, d)
	})

	require.NoError(t, s.Category.Delete(context.Background(), "c1"))
	unsub()
	s.Product.ClearMessages()

	assert.Equal(t, []string{DomainCategory, DomainCategory, DomainProduct}, seen)
}

func TestInitAndLogout(t *testing.T) {
	f := &fixture{logoutFails: true}
	token := mint(t, models.RoleAdmin, time.Now().Add(time.Hour))
	tokens := storage.NewMemoryTokenStorage(token)
	s := newStore(t, f, tokens, WithFencing(true))
	ctx := context.Background()

	require.NoError(t, s.Init(ctx))
	require.Equal(t, models.RoleAdmin, s.Snapshot().Auth.Role)

	var route string
	require.NoError(t, s.Logout(ctx, func(r string) { route = r }))

	assert.Equal(t, services.AdminLoginRoute, route)
	assert.Equal(t, 1, f.count("POST /api/logout"))
	assert.False(t, s.Snapshot().Auth.Authenticated())
	assert.Empty(t, s.Snapshot().Auth.Role)
	stored, _ := tokens.Get(ctx)
	assert.Empty(t, stored)
}

func TestClearMessages_NoOpOnCleanStore(t *testing.T) {
	s := newStore(t, &fixture{}, storage.NewMemoryTokenStorage(""))
	before := s.Snapshot()
	s.ClearMessages()
	assert.Empty(t, cmp.Diff(before, s.Snapshot()))
}

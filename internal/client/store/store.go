// Package store composes every slice into one root store addressable by
// domain name, and wires the rules that keep one slice consistent with a
// change made in another.
package store

import (
	"context"

	"github.com/dmitrijs2005/marketadmin/internal/client/lifecycle"
	"github.com/dmitrijs2005/marketadmin/internal/client/models"
	"github.com/dmitrijs2005/marketadmin/internal/client/services"
	"github.com/dmitrijs2005/marketadmin/internal/client/slices/analytics"
	"github.com/dmitrijs2005/marketadmin/internal/client/slices/auth"
	"github.com/dmitrijs2005/marketadmin/internal/client/slices/category"
	"github.com/dmitrijs2005/marketadmin/internal/client/slices/dashboard"
	"github.com/dmitrijs2005/marketadmin/internal/client/slices/entity"
	"github.com/dmitrijs2005/marketadmin/internal/client/slices/order"
	"github.com/dmitrijs2005/marketadmin/internal/client/slices/product"
	"github.com/dmitrijs2005/marketadmin/internal/client/slices/seller"
	"github.com/dmitrijs2005/marketadmin/internal/client/slices/service"
	"github.com/dmitrijs2005/marketadmin/internal/client/slices/servicecategory"
	"github.com/dmitrijs2005/marketadmin/internal/client/storage"
	"github.com/dmitrijs2005/marketadmin/internal/logging"
)

// Domain keys, in the order Domains reports them.
const (
	DomainAuth            = "auth"
	DomainCategory        = "category"
	DomainProduct         = "product"
	DomainService         = "service"
	DomainServiceCategory = "serviceCategory"
	DomainSeller          = "seller"
	DomainOrder           = "order"
	DomainDashboard       = "dashboard"
	DomainAnalytics       = "analytics"
)

var domains = []string{
	DomainAuth, DomainCategory, DomainProduct, DomainService, DomainServiceCategory,
	DomainSeller, DomainOrder, DomainDashboard, DomainAnalytics,
}

// API is everything the slices call; *api.Client satisfies it.
type API interface {
	auth.API
	category.API
	product.API
	service.API
	servicecategory.API
	seller.API
	order.API
	dashboard.API
	analytics.API
	services.LogoutAPI
}

// RootState is a snapshot of every slice. Each field is read separately, so
// two fields may reflect different moments.
type RootState struct {
	Auth            auth.State
	Category        category.State
	Product         product.State
	Service         service.State
	ServiceCategory servicecategory.State
	Seller          seller.State
	Order           order.State
	Dashboard       dashboard.State
	Analytics       analytics.State
}

type config struct {
	fenced bool
	log    logging.Logger
}

type Option func(*config)

// WithFencing makes every slice drop results superseded by a newer
// request of the same operation.
func WithFencing(on bool) Option {
	return func(c *config) { c.fenced = on }
}

func WithLogger(l logging.Logger) Option {
	return func(c *config) { c.log = l }
}

type Store struct {
	Auth            *auth.Slice
	Category        *category.Slice
	Product         *product.Slice
	Service         *service.Slice
	ServiceCategory *servicecategory.Slice
	Seller          *seller.Slice
	Order           *order.Slice
	Dashboard       *dashboard.Slice
	Analytics       *analytics.Slice

	session services.SessionService
	log     logging.Logger
	glue    []func()
}

func New(a API, tokens storage.TokenStorage, opts ...Option) *Store {
	cfg := config{log: logging.Nop()}
	for _, o := range opts {
		o(&cfg)
	}

	cell := func(domain string) []lifecycle.CellOption {
		return []lifecycle.CellOption{
			lifecycle.WithFencing(cfg.fenced),
			lifecycle.WithLogger(cfg.log.With("domain", domain)),
		}
	}

	s := &Store{
		Auth:            auth.New(a, tokens, cfg.log.With("domain", DomainAuth), cell(DomainAuth)...),
		Category:        category.New(a, cell(DomainCategory)...),
		Product:         product.New(a, cell(DomainProduct)...),
		Service:         service.New(a, cell(DomainService)...),
		ServiceCategory: servicecategory.New(a, cell(DomainServiceCategory)...),
		Seller:          seller.New(a, cell(DomainSeller)...),
		Order:           order.New(a, cell(DomainOrder)...),
		Dashboard:       dashboard.New(a, cell(DomainDashboard)...),
		Analytics:       analytics.New(a, cell(DomainAnalytics)...),
		log:             cfg.log,
	}
	s.session = services.NewSessionService(a, tokens, s.Auth, cfg.log)
	s.wire()
	return s
}

// wire installs the cross-slice rules. Each rule is one reducer step in the
// receiving slice.
func (s *Store) wire() {
	s.glue = append(s.glue,
		s.Category.Observe(func(e lifecycle.Event) {
			if e.Key == category.KeyDelete && e.Phase == lifecycle.Fulfilled {
				s.Product.MarkStale()
			}
		}),
		s.ServiceCategory.Observe(func(e lifecycle.Event) {
			if e.Key == servicecategory.KeyDelete && e.Phase == lifecycle.Fulfilled {
				s.Service.MarkStale()
			}
		}),
		s.Order.Observe(func(e lifecycle.Event) {
			if e.Phase != lifecycle.Fulfilled {
				return
			}
			if e.Key != order.KeyUpdateAdminStatus && e.Key != order.KeyUpdateSellerStatus {
				return
			}
			if m, ok := e.Output.(entity.Mutation[models.Order]); ok {
				s.Dashboard.PatchRecentOrder(m.Entity)
			}
		}),
	)
}

// Init seeds the store from durable storage. Call once at start-up.
func (s *Store) Init(ctx context.Context) error {
	if err := s.Auth.Init(ctx); err != nil {
		return err
	}
	st := s.Auth.State()
	s.log.Debug(ctx, "store initialized", "authenticated", st.Authenticated(), "role", st.Role)
	return nil
}

// Logout ends the session for the current role and navigates to its login
// screen.
func (s *Store) Logout(ctx context.Context, navigate services.Navigator) error {
	return s.session.Logout(ctx, s.Auth.State().Role, navigate)
}

func (s *Store) Domains() []string {
	return append([]string(nil), domains...)
}

func (s *Store) Snapshot() RootState {
	return RootState{
		Auth:            s.Auth.State(),
		Category:        s.Category.State(),
		Product:         s.Product.State(),
		Service:         s.Service.State(),
		ServiceCategory: s.ServiceCategory.State(),
		Seller:          s.Seller.State(),
		Order:           s.Order.State(),
		Dashboard:       s.Dashboard.State(),
		Analytics:       s.Analytics.State(),
	}
}

// Get returns the current state of one domain.
func (s *Store) Get(domain string) (any, bool) {
	switch domain {
	case DomainAuth:
		return s.Auth.State(), true
	case DomainCategory:
		return s.Category.State(), true
	case DomainProduct:
		return s.Product.State(), true
	case DomainService:
		return s.Service.State(), true
	case DomainServiceCategory:
		return s.ServiceCategory.State(), true
	case DomainSeller:
		return s.Seller.State(), true
	case DomainOrder:
		return s.Order.State(), true
	case DomainDashboard:
		return s.Dashboard.State(), true
	case DomainAnalytics:
		return s.Analytics.State(), true
	}
	return nil, false
}

// Subscribe calls fn with the domain name after every change to any slice.
func (s *Store) Subscribe(fn func(domain string)) (unsubscribe func()) {
	unsubs := []func(){
		watch(DomainAuth, s.Auth.Subscribe, fn),
		watch(DomainCategory, s.Category.Subscribe, fn),
		watch(DomainProduct, s.Product.Subscribe, fn),
		watch(DomainService, s.Service.Subscribe, fn),
		watch(DomainServiceCategory, s.ServiceCategory.Subscribe, fn),
		watch(DomainSeller, s.Seller.Subscribe, fn),
		watch(DomainOrder, s.Order.Subscribe, fn),
		watch(DomainDashboard, s.Dashboard.Subscribe, fn),
		watch(DomainAnalytics, s.Analytics.Subscribe, fn),
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}

// ClearMessages dismisses every slice's messages.
func (s *Store) ClearMessages() {
	s.Auth.ClearMessages()
	s.Category.ClearMessages()
	s.Product.ClearMessages()
	s.Service.ClearMessages()
	s.ServiceCategory.ClearMessages()
	s.Seller.ClearMessages()
	s.Order.ClearMessages()
	s.Dashboard.ClearMessages()
	s.Analytics.ClearMessages()
}

// Close detaches the cross-slice rules.
func (s *Store) Close() {
	for _, u := range s.glue {
		u()
	}
	s.glue = nil
}

func watch[S any](domain string, subscribe func(func(S)) func(), fn func(string)) func() {
	return subscribe(func(S) { fn(domain) })
}

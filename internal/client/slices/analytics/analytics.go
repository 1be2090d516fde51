// Package analytics is the admin period report slice.
package analytics

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/marketadmin/internal/client/lifecycle"
	"github.com/dmitrijs2005/marketadmin/internal/client/models"
	"github.com/dmitrijs2005/marketadmin/internal/client/slices/entity"
)

const KeyLoad = "analytics/load"

// DefaultPeriod is used when no period is selected.
const DefaultPeriod = "month"

type API interface {
	GetAnalytics(ctx context.Context, period string) (*models.Analytics, error)
}

type State struct {
	entity.Status
	Loading bool
	Period  string
	Report  *models.Analytics
}

type Slice struct {
	api  API
	cell *lifecycle.Cell[State]
}

func New(a API, opts ...lifecycle.CellOption) *Slice {
	return &Slice{api: a, cell: lifecycle.NewCell(State{Period: DefaultPeriod}, opts...)}
}

func (s *Slice) State() State { return s.cell.State() }

func (s *Slice) Subscribe(fn func(State)) func() { return s.cell.Subscribe(fn) }

func (s *Slice) Observe(fn func(lifecycle.Event)) func() { return s.cell.Observe(fn) }

func (s *Slice) Load(ctx context.Context, period string) error {
	period = strings.TrimSpace(period)
	if period == "" {
		period = DefaultPeriod
	}

	op := lifecycle.Operation[string, *models.Analytics]{
		Key:      KeyLoad,
		Fallback: "Failed to fetch analytics",
		Execute:  s.api.GetAnalytics,
	}
	r := lifecycle.Reducers[State, string, *models.Analytics]{
		Pending: func(st State, period string) State {
			st.Status = st.Status.Quiet()
			st.Loading = true
			st.Period = period
			return st
		},
		Fulfilled: func(st State, _ string, a *models.Analytics) State {
			st.Loading = false
			st.Report = a
			return st
		},
		Rejected: func(st State, _ string, e lifecycle.ErrorPayload) State {
			st.Loading = false
			st.Report = nil
			st.Status = st.Status.Report(e)
			return st
		},
	}
	_, err := lifecycle.Run(ctx, s.cell, op, r, period)
	return err
}

func (s *Slice) ClearMessages() {
	s.cell.Apply(func(st State) State {
		st.Status = st.Status.Cleared()
		return st
	})
}

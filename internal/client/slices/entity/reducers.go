package entity

import (
	"github.com/dmitrijs2005/marketadmin/internal/client/api"
	"github.com/dmitrijs2005/marketadmin/internal/client/lifecycle"
)

// ListReducers replace the page on success and fail closed on error.
// Reads are silent: a successful list or get leaves both messages empty.
func ListReducers[T Identifiable]() lifecycle.Reducers[State[T], api.ListQuery, Page[T]] {
	return lifecycle.Reducers[State[T], api.ListQuery, Page[T]]{
		Pending: func(s State[T], q api.ListQuery) State[T] {
			s.Status = s.Status.Quiet()
			s.List = s.List.Begin(q)
			return s
		},
		Fulfilled: func(s State[T], _ api.ListQuery, p Page[T]) State[T] {
			s.List = s.List.Replace(p.Items, p.Total)
			return s
		},
		Rejected: func(s State[T], _ api.ListQuery, e lifecycle.ErrorPayload) State[T] {
			s.Status = s.Status.Report(e)
			s.List = s.List.Clear()
			return s
		},
	}
}

// GetReducers load the detail; a failed fetch leaves it empty. Like
// ListReducers, success sets no message.
func GetReducers[T Identifiable]() lifecycle.Reducers[State[T], string, T] {
	return lifecycle.Reducers[State[T], string, T]{
		Pending: func(s State[T], _ string) State[T] {
			s.Status = s.Status.Quiet()
			s.Detail = s.Detail.Begin()
			return s
		},
		Fulfilled: func(s State[T], _ string, e T) State[T] {
			s.Detail = s.Detail.Set(e)
			return s
		},
		Rejected: func(s State[T], _ string, e lifecycle.ErrorPayload) State[T] {
			s.Status = s.Status.Report(e)
			s.Detail = s.Detail.Clear()
			return s
		},
	}
}

// MessageReducers drive the loader and surface the server message; the
// list is left for the caller to re-fetch.
func MessageReducers[T Identifiable, In any](def string) lifecycle.Reducers[State[T], In, string] {
	return lifecycle.Reducers[State[T], In, string]{
		Pending: func(s State[T], _ In) State[T] {
			s.Status = s.Status.Begin()
			return s
		},
		Fulfilled: func(s State[T], _ In, msg string) State[T] {
			s.Status = s.Status.Succeed(Message(msg, def))
			return s
		},
		Rejected: func(s State[T], _ In, e lifecycle.ErrorPayload) State[T] {
			s.Status = s.Status.Fail(e)
			return s
		},
	}
}

// UpdateReducers patch the list row and the detail in the same step as the
// success message.
func UpdateReducers[T Identifiable, In any](def string) lifecycle.Reducers[State[T], In, Mutation[T]] {
	return lifecycle.Reducers[State[T], In, Mutation[T]]{
		Pending: func(s State[T], _ In) State[T] {
			s.Status = s.Status.Begin()
			return s
		},
		Fulfilled: func(s State[T], _ In, m Mutation[T]) State[T] {
			s = s.PatchEntity(m.Entity)
			s.Status = s.Status.Succeed(Message(m.Message, def))
			return s
		},
		Rejected: func(s State[T], _ In, e lifecycle.ErrorPayload) State[T] {
			s.Status = s.Status.Fail(e)
			return s
		},
	}
}

package entity

import (
	"github.com/dmitrijs2005/marketadmin/internal/client/api"
	"github.com/dmitrijs2005/marketadmin/internal/client/lifecycle"
)

// Identifiable is implemented by every record kept in a collection.
type Identifiable interface {
	EntityID() string
}

// Status is the loader/message triple every slice exposes.
type Status struct {
	Loader         bool
	ErrorMessage   string
	SuccessMessage string
}

// Begin marks a main operation as started.
func (s Status) Begin() Status {
	return Status{Loader: true}
}

// Quiet drops stale messages without touching the loader; used by list and
// get operations, which track their own loading flag.
func (s Status) Quiet() Status {
	s.ErrorMessage = ""
	s.SuccessMessage = ""
	return s
}

func (s Status) Succeed(msg string) Status {
	return Status{SuccessMessage: msg}
}

func (s Status) Fail(e lifecycle.ErrorPayload) Status {
	return Status{ErrorMessage: e.Message}
}

// Report surfaces an error while leaving the loader as it is.
func (s Status) Report(e lifecycle.ErrorPayload) Status {
	s.ErrorMessage = e.Message
	s.SuccessMessage = ""
	return s
}

// Cleared zeroes both messages. Clearing an already clear status returns
// an identical value.
func (s Status) Cleared() Status {
	return s.Quiet()
}

// Message picks the server text, or def when the server sent none.
func Message(msg, def string) string {
	if msg == "" {
		return def
	}
	return msg
}

// Collection is one page of a listable entity.
type Collection[T Identifiable] struct {
	Items      []T
	TotalCount int
	Loading    bool
	// Stale is set when another slice changed data this page depends on.
	Stale bool
	Query api.ListQuery
}

func (c Collection[T]) Begin(q api.ListQuery) Collection[T] {
	c.Loading = true
	c.Query = q
	return c
}

// Replace swaps in a fetched page wholesale. The total never reports fewer
// rows than were returned.
func (c Collection[T]) Replace(items []T, total int) Collection[T] {
	c.Items = append([]T(nil), items...)
	if total < len(c.Items) {
		total = len(c.Items)
	}
	c.TotalCount = total
	c.Loading = false
	c.Stale = false
	return c
}

// Clear empties the collection after a failed fetch.
func (c Collection[T]) Clear() Collection[T] {
	c.Items = []T{}
	c.TotalCount = 0
	c.Loading = false
	c.Stale = false
	return c
}

// Patch replaces the item with the same id. The returned collection shares
// no backing array with c when a replacement happens.
func (c Collection[T]) Patch(item T) Collection[T] {
	id := item.EntityID()
	for i, it := range c.Items {
		if it.EntityID() != id {
			continue
		}
		items := append([]T(nil), c.Items...)
		items[i] = item
		c.Items = items
		return c
	}
	return c
}

// Contains reports whether an item with id is on the loaded page.
func (c Collection[T]) Contains(id string) bool {
	for _, it := range c.Items {
		if it.EntityID() == id {
			return true
		}
	}
	return false
}

func (c Collection[T]) Invalidate() Collection[T] {
	c.Stale = true
	return c
}

// PageCount is the number of pages of size perPage the total spans.
func (c Collection[T]) PageCount(perPage int) int {
	if perPage <= 0 {
		return 0
	}
	return (c.TotalCount + perPage - 1) / perPage
}

// Detail is the single-entity view. A nil Entity with Loading false means
// "not loaded".
type Detail[T Identifiable] struct {
	Entity  *T
	Loading bool
}

func (d Detail[T]) Begin() Detail[T] {
	return Detail[T]{Loading: true}
}

func (d Detail[T]) Set(e T) Detail[T] {
	return Detail[T]{Entity: &e}
}

func (d Detail[T]) Clear() Detail[T] {
	return Detail[T]{}
}

// Patch overwrites the loaded entity when it has the same id.
func (d Detail[T]) Patch(e T) Detail[T] {
	if d.Entity == nil || (*d.Entity).EntityID() != e.EntityID() {
		return d
	}
	d.Entity = &e
	return d
}

// State is the common slice shape: status, one list, one detail.
type State[T Identifiable] struct {
	Status
	List   Collection[T]
	Detail Detail[T]
}

// PatchEntity applies the list and detail patch as one step.
func (s State[T]) PatchEntity(e T) State[T] {
	s.List = s.List.Patch(e)
	s.Detail = s.Detail.Patch(e)
	return s
}

func (s State[T]) ClearMessages() State[T] {
	s.Status = s.Status.Cleared()
	return s
}

// Page is the normalized result of a list executor.
type Page[T any] struct {
	Items []T
	Total int
}

// Mutation is the normalized result of an update executor.
type Mutation[T any] struct {
	Entity  T
	Message string
}

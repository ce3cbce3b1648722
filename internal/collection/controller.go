// Package collection owns the view state of one paginated, filterable
// resource list and keeps it consistent across refetches.
package collection

import (
	"context"
	"sync"
)

const DefaultPageSize = 5

// Query is the fetch parameterization derived from the controller state.
type Query struct {
	Page      int
	PageSize  int
	Search    string
	Status    string
	SortBy    string
	SortOrder string
}

// Page is one fetched page of a collection.
type Page[T any] struct {
	Items      []T
	TotalCount int
}

// FetchFunc loads one page from the remote service.
type FetchFunc[T any] func(ctx context.Context, q Query) (Page[T], error)

// Controller drives a paginated list view. Items and total count are only
// ever replaced together, so a view never observes a partial update; a fetch
// failure leaves the prior items in place and records the error.
//
// Each refetch is stamped with a monotonically increasing sequence token.
// A response is applied only if no newer request has been issued since, which
// keeps a slow stale response from overwriting a fresher list.
type Controller[T any] struct {
	mu    sync.Mutex
	fetch FetchFunc[T]
	query Query
	items []T
	total int
	err   error
	seq   uint64
}

func New[T any](pageSize int, fetch FetchFunc[T]) *Controller[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Controller[T]{
		fetch: fetch,
		query: Query{Page: 1, PageSize: pageSize},
	}
}

// SetSearch changes the search term, resets to the first page and refetches.
func (c *Controller[T]) SetSearch(ctx context.Context, term string) error {
	c.mu.Lock()
	c.query.Search = term
	c.query.Page = 1
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// SetStatusFilter changes the status filter, resets to the first page and
// refetches.
func (c *Controller[T]) SetStatusFilter(ctx context.Context, filter string) error {
	c.mu.Lock()
	c.query.Status = filter
	c.query.Page = 1
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// SetSort changes the sort order, resets to the first page and refetches.
func (c *Controller[T]) SetSort(ctx context.Context, by, order string) error {
	c.mu.Lock()
	c.query.SortBy = by
	c.query.SortOrder = order
	c.query.Page = 1
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// GoToPage navigates to a page and refetches. An out-of-range page is
// silently ignored, leaving the current page unchanged.
func (c *Controller[T]) GoToPage(ctx context.Context, page int) error {
	c.mu.Lock()
	if page < 1 || page > c.totalPagesLocked() {
		c.mu.Unlock()
		return nil
	}
	c.query.Page = page
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// Sync reconciles the controller with externally supplied view state in a
// single refetch. A filter change resets the page to 1; otherwise a valid
// page request is honored and an out-of-range one ignored.
func (c *Controller[T]) Sync(ctx context.Context, page int, search, filter string) error {
	c.mu.Lock()
	if search != c.query.Search || filter != c.query.Status {
		c.query.Search = search
		c.query.Status = filter
		c.query.Page = 1
	} else if page >= 1 && (c.total == 0 || page <= c.totalPagesLocked()) {
		c.query.Page = page
	}
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// Refresh refetches the current page. On success items and total count are
// replaced atomically; on failure the previous items stay visible and the
// error is recorded. A response superseded by a newer request is discarded.
func (c *Controller[T]) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.seq++
	token := c.seq
	q := c.query
	c.mu.Unlock()

	page, err := c.fetch(ctx, q)

	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.seq {
		// A newer request was issued while this one was in flight.
		return nil
	}
	if err != nil {
		c.err = err
		return err
	}
	c.items = page.Items
	c.total = page.TotalCount
	c.err = nil
	return nil
}

// Items returns the current page's items.
func (c *Controller[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]T(nil), c.items...)
}

func (c *Controller[T]) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query.Page
}

func (c *Controller[T]) PageSize() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query.PageSize
}

func (c *Controller[T]) TotalCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

// TotalPages derives the page count from the total item count.
func (c *Controller[T]) TotalPages() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalPagesLocked()
}

// Err returns the error recorded by the most recent completed fetch, nil
// after a success.
func (c *Controller[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func (c *Controller[T]) totalPagesLocked() int {
	if c.total <= 0 {
		return 0
	}
	return (c.total + c.query.PageSize - 1) / c.query.PageSize
}

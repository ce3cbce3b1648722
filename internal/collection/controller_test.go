package collection_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/nexodus-tech/vendor-console/internal/collection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sliceFetch serves pages of a fixed item slice the way the remote would.
func sliceFetch(items []string) collection.FetchFunc[string] {
	return func(ctx context.Context, q collection.Query) (collection.Page[string], error) {
		start := (q.Page - 1) * q.PageSize
		if start > len(items) {
			start = len(items)
		}
		end := start + q.PageSize
		if end > len(items) {
			end = len(items)
		}
		return collection.Page[string]{Items: items[start:end], TotalCount: len(items)}, nil
	}
}

func numbered(n int) []string {
	items := make([]string, n)
	for i := range items {
		items[i] = string(rune('a' + i))
	}
	return items
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		pageSize int
		want     int
	}{
		{name: "12 items at 5 per page", total: 12, pageSize: 5, want: 3},
		{name: "exact multiple", total: 10, pageSize: 5, want: 2},
		{name: "single partial page", total: 3, pageSize: 5, want: 1},
		{name: "empty collection", total: 0, pageSize: 5, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := collection.New(tt.pageSize, sliceFetch(numbered(tt.total)))
			require.NoError(t, ctrl.Refresh(context.Background()))
			assert.Equal(t, tt.want, ctrl.TotalPages())
		})
	}
}

func TestGoToPage(t *testing.T) {
	ctrl := collection.New(5, sliceFetch(numbered(12)))
	ctx := context.Background()
	require.NoError(t, ctrl.Refresh(ctx))
	require.Equal(t, 3, ctrl.TotalPages())

	// Valid navigation.
	require.NoError(t, ctrl.GoToPage(ctx, 3))
	assert.Equal(t, 3, ctrl.Page())
	assert.Len(t, ctrl.Items(), 2, "last page holds the remainder")

	// Out-of-range requests are ignored without an error.
	require.NoError(t, ctrl.GoToPage(ctx, 0))
	assert.Equal(t, 3, ctrl.Page())
	require.NoError(t, ctrl.GoToPage(ctx, 4))
	assert.Equal(t, 3, ctrl.Page())
}

func TestFilterChangeResetsPage(t *testing.T) {
	var gotQuery collection.Query
	fetch := func(ctx context.Context, q collection.Query) (collection.Page[string], error) {
		gotQuery = q
		return collection.Page[string]{Items: []string{"x"}, TotalCount: 30}, nil
	}

	ctrl := collection.New(5, fetch)
	ctx := context.Background()
	require.NoError(t, ctrl.Refresh(ctx))
	require.NoError(t, ctrl.GoToPage(ctx, 4))
	require.Equal(t, 4, ctrl.Page())

	require.NoError(t, ctrl.SetSearch(ctx, "drum"))
	assert.Equal(t, 1, ctrl.Page())
	assert.Equal(t, "drum", gotQuery.Search)
	assert.Equal(t, 1, gotQuery.Page)

	require.NoError(t, ctrl.GoToPage(ctx, 3))
	require.NoError(t, ctrl.SetStatusFilter(ctx, "published"))
	assert.Equal(t, 1, ctrl.Page())
	assert.Equal(t, "published", gotQuery.Status)
}

func TestRefreshFailureKeepsPriorItems(t *testing.T) {
	failing := false
	fetch := func(ctx context.Context, q collection.Query) (collection.Page[string], error) {
		if failing {
			return collection.Page[string]{}, errors.New("connection reset")
		}
		return collection.Page[string]{Items: []string{"a", "b"}, TotalCount: 2}, nil
	}

	ctrl := collection.New(5, fetch)
	ctx := context.Background()
	require.NoError(t, ctrl.Refresh(ctx))
	require.Len(t, ctrl.Items(), 2)

	failing = true
	assert.Error(t, ctrl.Refresh(ctx))
	assert.Len(t, ctrl.Items(), 2, "prior items stay visible after a failed fetch")
	assert.Error(t, ctrl.Err())

	failing = false
	require.NoError(t, ctrl.Refresh(ctx))
	assert.NoError(t, ctrl.Err(), "a successful fetch clears the recorded error")
}

func TestStaleResponseDiscarded(t *testing.T) {
	// The first fetch blocks until released; a second fetch completes first.
	started := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32
	fetch := func(ctx context.Context, q collection.Query) (collection.Page[string], error) {
		if calls.Add(1) == 1 {
			close(started)
			<-release
			return collection.Page[string]{Items: []string{"stale"}, TotalCount: 1}, nil
		}
		return collection.Page[string]{Items: []string{"fresh"}, TotalCount: 1}, nil
	}

	ctrl := collection.New(5, fetch)
	ctx := context.Background()

	done := make(chan error, 1)
	go func() { done <- ctrl.Refresh(ctx) }()

	// Wait until the slow fetch is in flight, then issue the newer request.
	<-started
	require.NoError(t, ctrl.Refresh(ctx))
	assert.Equal(t, []string{"fresh"}, ctrl.Items())

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, []string{"fresh"}, ctrl.Items(), "slow response must not overwrite the newer one")
}

func TestSync(t *testing.T) {
	fetches := 0
	fetch := func(ctx context.Context, q collection.Query) (collection.Page[string], error) {
		fetches++
		return collection.Page[string]{Items: []string{"x"}, TotalCount: 12}, nil
	}

	ctrl := collection.New(5, fetch)
	ctx := context.Background()

	// Page and filter reconciled in a single fetch.
	require.NoError(t, ctrl.Sync(ctx, 2, "", ""))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, 2, ctrl.Page())

	// A filter change wins over the page and resets to 1.
	require.NoError(t, ctrl.Sync(ctx, 3, "drum", ""))
	assert.Equal(t, 1, ctrl.Page())

	// An out-of-range page with unchanged filters keeps the current page.
	require.NoError(t, ctrl.Sync(ctx, 99, "drum", ""))
	assert.Equal(t, 1, ctrl.Page())
}

func TestItemsReturnsCopy(t *testing.T) {
	ctrl := collection.New(5, sliceFetch([]string{"a", "b"}))
	require.NoError(t, ctrl.Refresh(context.Background()))

	items := ctrl.Items()
	items[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, ctrl.Items())
}

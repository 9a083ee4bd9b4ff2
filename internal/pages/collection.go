package pages

import (
	"context"
	"log"
	"slices"
	"sync"

	"github.com/example/shafran-admin/internal/apperrors"
	"github.com/example/shafran-admin/internal/utils"
	"github.com/example/shafran-admin/internal/view"
)

// ViewModel is what a list page renders.
type ViewModel[R any] struct {
	Items      []R              `json:"items"`
	Total      int              `json:"total"`
	Pagination utils.Pagination `json:"pagination"`
	Loading    bool             `json:"loading"`
	Error      *string          `json:"error"`
	Query      view.Query       `json:"query"`
}

// collection holds one page's fetched records and the query over them. Every
// fetch is tagged with a generation; a response that is not from the newest
// fetch is dropped.
type collection[T any] struct {
	name  string
	fetch func(ctx context.Context) ([]T, error)
	spec  view.Spec[T]

	mu      sync.Mutex
	raw     []T
	query   view.Query
	loaded  bool
	loading bool
	err     string
	gen     uint64
	epoch   uint64
}

func newCollection[T any](name string, fetch func(context.Context) ([]T, error), spec view.Spec[T], q view.Query) *collection[T] {
	return &collection[T]{name: name, fetch: fetch, spec: spec, query: q}
}

// load refetches the raw collection. On failure the previous records stay and
// the error is kept for display.
func (c *collection[T]) load(ctx context.Context) error {
	c.mu.Lock()
	c.gen++
	gen, epoch := c.gen, c.epoch
	c.loading = true
	c.mu.Unlock()

	items, err := c.fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		log.Printf("[Pages] %s: dropped stale response (generation %d, latest %d)", c.name, gen, c.gen)
		return nil
	}
	c.loading = false
	if err != nil {
		c.err = apperrors.Message(err)
		log.Printf("[Pages] %s: load failed: %v", c.name, err)
		return err
	}
	c.raw = items
	c.err = ""
	// A fetch that raced an invalidate may predate the change.
	c.loaded = epoch == c.epoch
	return nil
}

// ensure loads once.
func (c *collection[T]) ensure(ctx context.Context) error {
	c.mu.Lock()
	loaded := c.loaded
	c.mu.Unlock()
	if loaded {
		return nil
	}
	return c.load(ctx)
}

// invalidate makes the next ensure refetch. Records stay visible until then.
func (c *collection[T]) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaded = false
	c.epoch++
}

func (c *collection[T]) search(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query.Search = term
}

func (c *collection[T]) setFilter(value string) {
	if value == "" {
		value = view.FilterAll
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query.Filter = value
}

func (c *collection[T]) sort(key string) view.Sort {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query.Sort = c.query.Sort.Toggle(key)
	return c.query.Sort
}

// patch applies fn to the raw records in place.
func (c *collection[T]) patch(fn func(items []T)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(c.raw)
}

// derive returns the current view-model with rows built by row.
func derive[T, R any](c *collection[T], pg utils.Pagination, row func([]T) []R) ViewModel[R] {
	c.mu.Lock()
	raw, q, loading, errMsg := slices.Clone(c.raw), c.query, c.loading, c.err
	c.mu.Unlock()

	items := view.Derive(raw, q, c.spec)
	vm := ViewModel[R]{
		Items:      row(utils.Paginate(items, pg)),
		Total:      len(items),
		Pagination: pg,
		Loading:    loading,
		Query:      q,
	}
	if errMsg != "" {
		vm.Error = &errMsg
	}
	return vm
}

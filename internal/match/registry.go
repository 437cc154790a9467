package match

import (
	"fmt"
	"sync"

	"github.com/mesh-intelligence/smarttable/pkg/types"
)

// Registry resolves filter and sort functions by name, so callers can swap
// the matcher or the ordering of a table without holding a reference to it.
// Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	filters map[string]types.FilterFunc
	sorts   map[string]types.SortFunc
}

// Default is the process-wide registry tables use unless given their own.
var Default = NewRegistry()

// NewRegistry returns a registry holding Filter under DefaultFilterName and
// OrderBy under DefaultSortName.
func NewRegistry() *Registry {
	return &Registry{
		filters: map[string]types.FilterFunc{DefaultFilterName: Filter},
		sorts:   map[string]types.SortFunc{DefaultSortName: OrderBy},
	}
}

// RegisterFilter adds or replaces the filter function stored under name.
func (r *Registry) RegisterFilter(name string, fn types.FilterFunc) error {
	if name == "" {
		return types.ErrEmptyFunctionName
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.filters[name] = fn
	return nil
}

// RegisterSort adds or replaces the sort function stored under name.
func (r *Registry) RegisterSort(name string, fn types.SortFunc) error {
	if name == "" {
		return types.ErrEmptyFunctionName
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sorts[name] = fn
	return nil
}

// Filter returns the filter function registered under name.
// Returns ErrFunctionNotFound if no function has that name.
func (r *Registry) Filter(name string) (types.FilterFunc, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.filters[name]
	if !ok {
		return nil, fmt.Errorf("%w: filter %q", types.ErrFunctionNotFound, name)
	}
	return fn, nil
}

// Sort returns the sort function registered under name.
// Returns ErrFunctionNotFound if no function has that name.
func (r *Registry) Sort(name string) (types.SortFunc, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.sorts[name]
	if !ok {
		return nil, fmt.Errorf("%w: sort %q", types.ErrFunctionNotFound, name)
	}
	return fn, nil
}

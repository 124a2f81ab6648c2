package slogtune

import (
	"sort"
	"strings"
	"sync"
)

// FuncNameFilter admits log records whose originating function name is a
// member of its set. Each registry node owns at most one filter; overrides for
// additional functions grow the set instead of stacking filters.
type FuncNameFilter struct {
	mu    sync.RWMutex
	names map[string]struct{}
}

// NewFuncNameFilter returns a filter seeded with funcName.
func NewFuncNameFilter(funcName string) *FuncNameFilter {
	f := &FuncNameFilter{names: make(map[string]struct{})}
	f.AddFuncName(funcName)
	return f
}

// AddFuncName grows the set of admitted function names.
func (f *FuncNameFilter) AddFuncName(funcName string) {
	f.mu.Lock()
	f.names[funcName] = struct{}{}
	f.mu.Unlock()
}

// Allows reports whether a record originating in funcName passes the filter.
// The name may be receiver-qualified, e.g. "(*App).Start"; only the bare
// method name is compared.
func (f *FuncNameFilter) Allows(funcName string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.names[baseFuncName(funcName)]
	return ok
}

// Names returns the admitted function names in sorted order.
func (f *FuncNameFilter) Names() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	names := make([]string, 0, len(f.names))
	for n := range f.names {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// baseFuncName strips any package or receiver qualification from a function
// name as reported by the runtime, e.g. "pkg.(*App).Start" yields "Start".
func baseFuncName(funcName string) string {
	if i := strings.LastIndexByte(funcName, '.'); i >= 0 {
		return funcName[i+1:]
	}
	return funcName
}

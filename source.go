package slogtune

import (
	"go/types"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/tools/go/packages"
)

// SourceIntrospector resolves namespaces against the compiled package graph of
// a source tree. A namespace "pkg.app" maps to the import path base+"/pkg/app";
// its classes are the named types declared at package scope and their method
// sets include promoted methods of embedded types.
type SourceIntrospector struct {
	base string
	dir  string

	mu    sync.Mutex
	cache map[string]*sourceModule
}

// NewSourceIntrospector returns an introspector loading packages below the
// base import path, resolved from dir. An empty base treats namespaces as
// import paths with dots for slashes.
func NewSourceIntrospector(base, dir string) *SourceIntrospector {
	return &SourceIntrospector{
		base:  base,
		dir:   dir,
		cache: make(map[string]*sourceModule),
	}
}

// ResolveModule implements Introspector.
func (si *SourceIntrospector) ResolveModule(namespace string) (Module, error) {
	si.mu.Lock()
	defer si.mu.Unlock()
	if m, ok := si.cache[namespace]; ok {
		return m, nil
	}

	pattern := strings.ReplaceAll(namespace, ".", "/")
	if si.base != "" {
		pattern = si.base + "/" + pattern
	}
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes,
		Dir:  si.dir,
	}
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "loading package %q", pattern)
	}
	if len(pkgs) != 1 {
		return nil, errors.Wrapf(ErrModuleNotFound, "%q", namespace)
	}
	p := pkgs[0]
	if p.Types == nil || len(p.Errors) > 0 {
		return nil, errors.Wrapf(ErrModuleNotFound, "%q", namespace)
	}

	m := &sourceModule{namespace: namespace, pkg: p.Types}
	si.cache[namespace] = m
	return m, nil
}

type sourceModule struct {
	namespace string
	pkg       *types.Package
}

func (m *sourceModule) Namespace() string {
	return m.namespace
}

func (m *sourceModule) Classes() []Class {
	scope := m.pkg.Scope()
	var classes []Class
	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || tn.IsAlias() {
			// Aliases re-export types defined elsewhere.
			continue
		}
		named, ok := tn.Type().(*types.Named)
		if !ok {
			continue
		}
		classes = append(classes, &sourceClass{named: named})
	}
	return classes
}

type sourceClass struct {
	named *types.Named
}

func (c *sourceClass) Name() string {
	return c.named.Obj().Name()
}

func (c *sourceClass) Member(name string) (string, bool) {
	ms := types.NewMethodSet(types.NewPointer(c.named))
	lookup := func(n string) (string, bool) {
		for i := 0; i < ms.Len(); i++ {
			if f := ms.At(i).Obj(); f.Name() == n {
				return f.Name(), true
			}
		}
		return "", false
	}
	return memberLookup(name, lookup)
}

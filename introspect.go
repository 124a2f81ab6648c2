package slogtune

import (
	"reflect"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Introspector resolves dotted namespaces against the live program structure.
// Implementations decide what a "module" is: the TypeRegistry maps namespaces
// to explicitly registered types, the SourceIntrospector maps them to packages
// of the compiled source tree.
type Introspector interface {
	// ResolveModule returns the module named by the fully-qualified dotted
	// namespace, or an error wrapping ErrModuleNotFound if no such module
	// exists.
	ResolveModule(namespace string) (Module, error)
}

// Module is a resolved namespace exposing the classes it defines directly.
type Module interface {
	Namespace() string
	Classes() []Class
}

// Class is a member-bearing type within a module. Member looks up a function
// by name, resolving property-like accessor pairs (Get<Name>/Set<Name>) to the
// getter's name if present, else the setter's. The returned name is the one a
// log record will carry for calls into that member.
type Class interface {
	Name() string
	Member(name string) (string, bool)
}

// TypeRegistry is an explicit startup registry mapping namespaces to
// representative values whose types are inspected via reflection. Host
// programs register one value per relevant type, typically from an init
// function of the package the namespace describes.
type TypeRegistry struct {
	mu      sync.RWMutex
	modules map[string][]reflect.Type
}

// NewTypeRegistry returns an empty registry.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{modules: make(map[string][]reflect.Type)}
}

// Register adds the types of the given values to the namespace. Pointer values
// register their pointee's type; the pointer method set is searched either way.
func (tr *TypeRegistry) Register(namespace string, values ...any) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	if _, ok := tr.modules[namespace]; !ok {
		// A namespace registered without values is a module with no classes.
		tr.modules[namespace] = nil
	}
	for _, v := range values {
		t := reflect.TypeOf(v)
		if t == nil {
			continue
		}
		for t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		tr.modules[namespace] = append(tr.modules[namespace], t)
	}
}

// ResolveModule implements Introspector.
func (tr *TypeRegistry) ResolveModule(namespace string) (Module, error) {
	tr.mu.RLock()
	defer tr.mu.RUnlock()
	ts, ok := tr.modules[namespace]
	if !ok {
		return nil, errors.Wrapf(ErrModuleNotFound, "%q", namespace)
	}
	return &registryModule{namespace: namespace, types: append([]reflect.Type(nil), ts...)}, nil
}

type registryModule struct {
	namespace string
	types     []reflect.Type
}

func (m *registryModule) Namespace() string {
	return m.namespace
}

func (m *registryModule) Classes() []Class {
	classes := make([]Class, 0, len(m.types))
	for _, t := range m.types {
		classes = append(classes, &registryClass{t: t})
	}
	return classes
}

type registryClass struct {
	t reflect.Type
}

func (c *registryClass) Name() string {
	return c.t.Name()
}

func (c *registryClass) Member(name string) (string, bool) {
	t := c.t
	if t.Kind() != reflect.Pointer {
		// The pointer method set is the superset of both.
		t = reflect.PointerTo(t)
	}
	lookup := func(n string) (string, bool) {
		if m, ok := t.MethodByName(n); ok {
			return m.Name, true
		}
		return "", false
	}
	return memberLookup(name, lookup)
}

// memberLookup applies the shared resolution order: the exact name, its
// exported spelling, then the Get/Set accessor pair (getter preferred).
func memberLookup(name string, lookup func(string) (string, bool)) (string, bool) {
	if m, ok := lookup(name); ok {
		return m, true
	}
	exp := exportedName(name)
	if exp != name {
		if m, ok := lookup(exp); ok {
			return m, true
		}
	}
	if m, ok := lookup("Get" + exp); ok {
		return m, true
	}
	if m, ok := lookup("Set" + exp); ok {
		return m, true
	}
	return "", false
}

// exportedName upper-cases the first rune of name.
func exportedName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

package slogtune

import (
	"strings"
	"sync"
)

// Registry is the hierarchical namespace tree holding per-node level overrides
// and function name filters. It is the single process-wide mutable resource:
// the Applier (and the config watcher) write to it, the Handler reads from it
// on every log record.
type Registry struct {
	mu   sync.RWMutex
	root *Node
}

// Node is one namespace in the tree. An unset level defers to the nearest
// ancestor with a set level.
type Node struct {
	reg      *Registry
	name     string
	level    Level
	levelSet bool
	filter   *FuncNameFilter
	parent   *Node
	children map[string]*Node
}

// NewRegistry returns a registry whose root level defaults to WARNING.
func NewRegistry() *Registry {
	r := &Registry{}
	r.root = &Node{
		reg:      r,
		level:    LevelWarning,
		levelSet: true,
		children: make(map[string]*Node),
	}
	return r
}

// Root returns the root node.
func (r *Registry) Root() *Node {
	return r.root
}

// Node returns the node for the dotted name, creating any missing path
// segments. The empty name addresses the root.
func (r *Registry) Node(name string) *Node {
	if name == "" {
		return r.root
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	n := r.root
	for _, seg := range strings.Split(name, ".") {
		child, ok := n.children[seg]
		if !ok {
			childName := seg
			if n.name != "" {
				childName = n.name + "." + seg
			}
			child = &Node{
				reg:      r,
				name:     childName,
				parent:   n,
				children: make(map[string]*Node),
			}
			n.children[seg] = child
		}
		n = child
	}
	return n
}

// Lookup returns the node for the dotted name without creating it.
func (r *Registry) Lookup(name string) (*Node, bool) {
	if name == "" {
		return r.root, true
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := r.root
	for _, seg := range strings.Split(name, ".") {
		child, ok := n.children[seg]
		if !ok {
			return nil, false
		}
		n = child
	}
	return n, true
}

// Resolve returns the deepest existing node along the dotted name, falling
// back to the root for entirely unknown namespaces. Log records are matched
// against the tree through this method.
func (r *Registry) Resolve(name string) *Node {
	if name == "" {
		return r.root
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := r.root
	for _, seg := range strings.Split(name, ".") {
		child, ok := n.children[seg]
		if !ok {
			break
		}
		n = child
	}
	return n
}

// Name returns the node's fully-qualified dotted name. The root's name is the
// empty string.
func (n *Node) Name() string {
	return n.name
}

// SetLevel sets the node's own level, overriding any inherited one.
func (n *Node) SetLevel(l Level) {
	n.reg.mu.Lock()
	n.level = l
	n.levelSet = true
	n.reg.mu.Unlock()
}

// EffectiveLevel returns the node's own level if set, else the nearest
// ancestor's.
func (n *Node) EffectiveLevel() Level {
	n.reg.mu.RLock()
	defer n.reg.mu.RUnlock()
	for c := n; c != nil; c = c.parent {
		if c.levelSet {
			return c.level
		}
	}
	return LevelWarning
}

// Filter returns the node's function name filter, if any.
func (n *Node) Filter() *FuncNameFilter {
	n.reg.mu.RLock()
	defer n.reg.mu.RUnlock()
	return n.filter
}

// AddFuncName registers a function name on the node's filter, creating the
// filter on first use. It reports whether the filter was newly created.
func (n *Node) AddFuncName(funcName string) bool {
	n.reg.mu.Lock()
	defer n.reg.mu.Unlock()
	if n.filter == nil {
		n.filter = NewFuncNameFilter(funcName)
		return true
	}
	n.filter.AddFuncName(funcName)
	return false
}

// activeFilter returns the filter of the nearest node, starting at n, that
// carries one.
func (n *Node) activeFilter() *FuncNameFilter {
	n.reg.mu.RLock()
	defer n.reg.mu.RUnlock()
	for c := n; c != nil; c = c.parent {
		if c.filter != nil {
			return c.filter
		}
	}
	return nil
}

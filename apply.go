package slogtune

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const indent = "  "

// Applier resolves namespaces against an Introspector and writes level
// overrides and function name filters into a Registry. All human-facing
// outcomes are reported to Out, independent of any log filtering.
type Applier struct {
	registry *Registry
	intro    Introspector
	root     string
	out      io.Writer
}

// NewApplier returns an applier writing into reg and resolving through intro.
// Options may be nil; operator feedback then goes to os.Stdout and namespaces
// are used unprefixed.
func NewApplier(reg *Registry, intro Introspector, opts *ApplierOptions) *Applier {
	a := &Applier{registry: reg, intro: intro, out: os.Stdout}
	if opts != nil {
		a.root = opts.RootNamespace
		if opts.Out != nil {
			a.out = opts.Out
		}
	}
	return a
}

// Apply sets the logging level for the given namespaces, or for the root
// logger if none are given. Bracketed namespaces are expanded first; each
// expansion result is processed independently.
//
// Namespaces that resolve to no module are reported and skipped. Malformed
// bracket syntax, a function-scoped override on a module without classes, and
// a function name matching no class member abort with an error.
func (a *Applier) Apply(level Level, namespaces []string) error {
	if len(namespaces) == 0 {
		fmt.Fprintf(a.out, "%s logging level is set.\n", LevelName(level))
		a.registry.Root().SetLevel(level)
		return nil
	}

	fmt.Fprintf(a.out, "%s logging level is set for:\n", LevelName(level))
	queue := append([]string(nil), namespaces...)
	for i := 0; i < len(queue); i++ {
		expanded, err := ExpandNamespace(queue[i])
		if err != nil {
			return err
		}
		if len(expanded) != 1 || expanded[0] != queue[i] {
			queue = append(queue, expanded...)
			continue
		}
		if err := a.applyOne(level, queue[i]); err != nil {
			return err
		}
	}
	return nil
}

func (a *Applier) applyOne(level Level, namespace string) error {
	if a.root != "" {
		namespace = a.root + "." + namespace
	}

	mod, funcName, err := a.resolve(namespace)
	if err != nil {
		return err
	}
	if mod == nil {
		// The split candidate is reported, mirroring the resolution order.
		if i := strings.LastIndexByte(namespace, '.'); i >= 0 {
			namespace = namespace[:i]
		}
		fmt.Fprintf(a.out, "%s! MODULE NOT FOUND %q\n", indent, namespace)
		return nil
	}
	namespace = mod.Namespace()

	if funcName != "" {
		classes := mod.Classes()
		if len(classes) == 0 {
			return &NoClassesError{Namespace: namespace}
		}
		found := false
		for _, c := range classes {
			if m, ok := c.Member(funcName); ok {
				funcName = m
				found = true
				break
			}
		}
		if !found {
			return &FunctionNotFoundError{Function: funcName, Namespace: namespace}
		}
	}

	node := a.registry.Node(namespace)
	prev := node.EffectiveLevel()
	node.SetLevel(level)

	if prev == LevelWarning {
		fmt.Fprintf(a.out, "%s%s\n", indent, namespace)
	} else if prev != level {
		fmt.Fprintf(a.out, "%s%s (overrides previous level %s)\n", indent, namespace, LevelName(prev))
	}

	if funcName != "" {
		if node.AddFuncName(funcName) {
			fmt.Fprintf(a.out, "%s|  (filtering following function(s):)\n", indent+indent)
		}
		fmt.Fprintf(a.out, "%s|- %s\n", indent+indent, funcName)
	}
	return nil
}

// resolve attempts the full namespace as a module first; on a miss it splits
// at the last "." and retries the prefix as a module with the trailing segment
// as a candidate function name. A nil module with nil error means the
// namespace is unresolved.
func (a *Applier) resolve(namespace string) (Module, string, error) {
	mod, err := a.intro.ResolveModule(namespace)
	if err == nil {
		return mod, "", nil
	}
	if !errors.Is(err, ErrModuleNotFound) {
		return nil, "", err
	}
	i := strings.LastIndexByte(namespace, '.')
	if i < 0 {
		return nil, "", nil
	}
	mod, err = a.intro.ResolveModule(namespace[:i])
	if err == nil {
		return mod, namespace[i+1:], nil
	}
	if !errors.Is(err, ErrModuleNotFound) {
		return nil, "", err
	}
	return nil, "", nil
}

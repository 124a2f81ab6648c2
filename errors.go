package slogtune

import (
	"errors"
	"fmt"
)

// ErrModuleNotFound marks a namespace that does not resolve to any module.
// Callers treat it as a per-namespace miss, not as a fatal condition.
var ErrModuleNotFound = errors.New("module not found")

// SyntaxError reports a malformed bracketed namespace declaration.
type SyntaxError struct {
	Spec   string
	Detail string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%q looks like a bracketed namespace declaration but %s", e.Spec, e.Detail)
}

// UnknownLevelError reports a level name outside the recognized set.
type UnknownLevelError struct {
	Name string
}

func (e *UnknownLevelError) Error() string {
	return fmt.Sprintf("<LEVEL>=%q needs to be an upper case string out of [CRITICAL, ERROR, WARNING, INFO, DEBUG, NOTSET]", e.Name)
}

// NoClassesError reports a function-scoped override on a module that defines
// no classes to search.
type NoClassesError struct {
	Namespace string
}

func (e *NoClassesError) Error() string {
	return fmt.Sprintf("%q has no classes", e.Namespace)
}

// FunctionNotFoundError reports a function-scoped override whose trailing
// segment matches no member on any class of the module.
type FunctionNotFoundError struct {
	Function  string
	Namespace string
}

func (e *FunctionNotFoundError) Error() string {
	return fmt.Sprintf("can't find %q within %q", e.Function, e.Namespace)
}

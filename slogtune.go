package slogtune

import (
	"fmt"
	"log/slog"
	"path"
	"runtime"
	"strings"
)

const version = "1.0.0"

// slogtune holds the handler state shared between the wrapped slog.Handler and
// the namespace registry.
type slogtune struct {
	h        *Handler
	slogh    slog.Handler
	opts     *HandlerOptions
	registry *Registry
	logger   *slog.Logger
}

// callInfo represents a resolved caller location.
type callInfo struct {
	FuncName    string `json:"funcName,omitempty"`
	PackageName string `json:"packageName"`
	Filename    string `json:"filename"`
	FilePath    string `json:"filePath"`
	LineNo      int    `json:"lineNo"`
	Source      string `json:"source"`
}

// namespaceFor maps a caller's package import path into the registry's dotted
// namespace: the module base is stripped, slashes become dots and the root
// namespace is prefixed. Packages outside the module base are mapped verbatim
// and never receive the root prefix.
func (s *slogtune) namespaceFor(pkgPath string) string {
	ns := pkgPath
	if base := s.opts.ModuleBase; base != "" {
		switch {
		case pkgPath == base:
			ns = ""
		case strings.HasPrefix(pkgPath, base+"/"):
			ns = pkgPath[len(base)+1:]
		default:
			return strings.ReplaceAll(pkgPath, "/", ".")
		}
	}
	ns = strings.ReplaceAll(ns, "/", ".")
	if root := s.opts.RootNamespace; root != "" {
		if ns == "" {
			return root
		}
		return root + "." + ns
	}
	return ns
}

// callerInfoForFrame splits a runtime frame into package, function and source
// location.
func callerInfoForFrame(f runtime.Frame) *callInfo {
	funcName := f.Function
	filename := path.Base(f.File) // The Base function returns the last element of the path
	filePath := path.Dir(f.File)

	lastSlash := strings.LastIndexByte(funcName, '/')
	if lastSlash < 0 {
		lastSlash = 0
	}
	firstDot := strings.IndexByte(funcName[lastSlash:], '.') + lastSlash

	ci := &callInfo{
		FuncName:    funcName[firstDot+1:],
		PackageName: funcName[:firstDot],
		Filename:    filename,
		FilePath:    filePath,
		LineNo:      f.Line,
	}
	ci.Source = fmt.Sprintf("%s/%s:%d", ci.FilePath, ci.Filename, ci.LineNo)
	return ci
}

// callerInfoForPC resolves the frame of a single program counter, as carried
// by slog.Record.PC.
func callerInfoForPC(pc uintptr) *callInfo {
	frames := runtime.CallersFrames([]uintptr{pc})
	f, _ := frames.Next()
	if f.Function == "" {
		return &callInfo{}
	}
	return callerInfoForFrame(f)
}

// callerOutsideSlog ascends the stack past the log/slog frontend and returns
// the first frame belonging to user code. Used by Handler.Enabled, which has
// no record PC to go by.
func callerOutsideSlog() *callInfo {
	var pcs [16]uintptr
	n := runtime.Callers(3, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		if f.Function != "" && !strings.HasPrefix(f.Function, "log/slog.") {
			return callerInfoForFrame(f)
		}
		if !more {
			return &callInfo{}
		}
	}
}

package slogtune

import (
	"context"
	"log/slog"
)

// Handler is a slog.Handler wrapper that consults the namespace registry for
// the effective log level of the calling package and applies per-namespace
// function name filters to every record.
type Handler struct {
	*slogtune
}

// NewHandler creates a new slog.Handler
func NewHandler(h slog.Handler, opts *HandlerOptions) *Handler {
	o := HandlerOptions{}

	if opts != nil {
		o = *opts
	}
	if o.Registry == nil {
		o.Registry = NewRegistry()
	}

	logger := slog.New(NewNilHandler())
	switch h.(type) {
	case nil:
		panic("slog.Handler must not be nil")
	case *Handler:
		panic("slog.Handler must not be of type *Handler")
	default:
		// If debug mode is enabled, we use the given log Handler also for internal log messages.
		if o.Debug {
			logger = slog.New(h).WithGroup("slogtune").With(slog.Attr{
				Key:   "version",
				Value: slog.StringValue(version),
			})
			logger.Debug("debug mode enabled")
		}
	}

	st := &slogtune{slogh: h, opts: &o, registry: o.Registry, logger: logger}
	stHndl := &Handler{slogtune: st}
	st.h = stHndl

	return stHndl
}

// Registry returns the namespace registry the handler consults. Appliers and
// watchers write their overrides into it.
func (h *Handler) Registry() *Registry {
	return h.registry
}

func (h *Handler) Enabled(_ context.Context, lvl slog.Level) bool {
	ci := callerOutsideSlog()
	node := h.registry.Resolve(h.namespaceFor(ci.PackageName))
	effLvl := node.EffectiveLevel()
	if Level(lvl) >= effLvl {
		return true
	}
	h.logger.Debug("record suppressed",
		slog.String("package", ci.PackageName),
		slog.String("namespace", node.Name()),
		slog.String("effectiveLevel", LevelName(effLvl)))
	return false
}

func (h *Handler) Handle(ctx context.Context, rec slog.Record) error {
	if rec.PC != 0 {
		ci := callerInfoForPC(rec.PC)
		node := h.registry.Resolve(h.namespaceFor(ci.PackageName))
		if f := node.activeFilter(); f != nil && !f.Allows(ci.FuncName) {
			return nil
		}
	}
	return h.slogh.Handle(ctx, rec)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.slogh.WithAttrs(attrs)
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return h.slogh.WithGroup(name)
}

type nilHandler struct{}

// NewNilHandler provides a nil slog.Handler for silencing slog.Log() calls.
func NewNilHandler() slog.Handler {
	return &nilHandler{}
}

func (h *nilHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return false
}

func (h *nilHandler) Handle(_ context.Context, _ slog.Record) error {
	return nil
}

func (h *nilHandler) WithAttrs([]slog.Attr) slog.Handler {
	return h
}

func (h *nilHandler) WithGroup(_ string) slog.Handler {
	return h
}

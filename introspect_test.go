package slogtune_test

import (
	"testing"

	"github.com/apperia-de/slogtune"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	name string
}

func (w *widget) Render() {}

func (w *widget) GetName() string { return w.name }

func (w *widget) SetName(n string) { w.name = n }

type base struct{}

func (base) Shared() {}

type gadget struct {
	base
}

func (gadget) Spin() {}

type knob struct {
	level int
}

func (k *knob) SetLevel(l int) { k.level = l }

func TestTypeRegistryResolveModule(t *testing.T) {
	tr := slogtune.NewTypeRegistry()
	tr.Register("pkg.widget", (*widget)(nil))

	t.Run("unknown namespace", func(t *testing.T) {
		_, err := tr.ResolveModule("pkg.missing")
		assert.ErrorIs(t, err, slogtune.ErrModuleNotFound)
	})

	t.Run("registered namespace", func(t *testing.T) {
		mod, err := tr.ResolveModule("pkg.widget")
		require.NoError(t, err)
		assert.Equal(t, "pkg.widget", mod.Namespace())
		classes := mod.Classes()
		require.Len(t, classes, 1)
		assert.Equal(t, "widget", classes[0].Name())
	})

	t.Run("namespace registered without values has no classes", func(t *testing.T) {
		tr.Register("pkg.bare")
		mod, err := tr.ResolveModule("pkg.bare")
		require.NoError(t, err)
		assert.Empty(t, mod.Classes())
	})
}

func TestTypeRegistryMemberLookup(t *testing.T) {
	tr := slogtune.NewTypeRegistry()
	tr.Register("pkg.widget", (*widget)(nil))
	tr.Register("pkg.gadget", gadget{})
	tr.Register("pkg.knob", (*knob)(nil))

	class := func(ns string) slogtune.Class {
		mod, err := tr.ResolveModule(ns)
		require.NoError(t, err)
		require.NotEmpty(t, mod.Classes())
		return mod.Classes()[0]
	}

	t.Run("plain method", func(t *testing.T) {
		m, ok := class("pkg.widget").Member("Render")
		require.True(t, ok)
		assert.Equal(t, "Render", m)
	})

	t.Run("unexported spelling resolves to the exported method", func(t *testing.T) {
		m, ok := class("pkg.widget").Member("render")
		require.True(t, ok)
		assert.Equal(t, "Render", m)
	})

	t.Run("accessor resolves to the getter", func(t *testing.T) {
		m, ok := class("pkg.widget").Member("name")
		require.True(t, ok)
		assert.Equal(t, "GetName", m)
	})

	t.Run("setter-only accessor resolves to the setter", func(t *testing.T) {
		m, ok := class("pkg.knob").Member("level")
		require.True(t, ok)
		assert.Equal(t, "SetLevel", m)
	})

	t.Run("promoted method of an embedded type", func(t *testing.T) {
		m, ok := class("pkg.gadget").Member("Shared")
		require.True(t, ok)
		assert.Equal(t, "Shared", m)
	})

	t.Run("missing member", func(t *testing.T) {
		_, ok := class("pkg.widget").Member("nosuch")
		assert.False(t, ok)
	})
}

package slogtune_test

import (
	"testing"

	"github.com/apperia-de/slogtune"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryDefaults(t *testing.T) {
	reg := slogtune.NewRegistry()
	assert.Equal(t, slogtune.LevelWarning, reg.Root().EffectiveLevel())
	assert.Same(t, reg.Root(), reg.Node(""))
	assert.Same(t, reg.Root(), reg.Resolve(""))
}

func TestRegistryNodeCreation(t *testing.T) {
	reg := slogtune.NewRegistry()
	n := reg.Node("a.b.c")
	assert.Equal(t, "a.b.c", n.Name())

	// Intermediate nodes exist after the path has been created.
	mid, ok := reg.Lookup("a.b")
	require.True(t, ok)
	assert.Equal(t, "a.b", mid.Name())

	_, ok = reg.Lookup("a.x")
	assert.False(t, ok)

	assert.Same(t, n, reg.Node("a.b.c"))
}

func TestRegistryEffectiveLevelInheritance(t *testing.T) {
	reg := slogtune.NewRegistry()
	reg.Node("a.b").SetLevel(slogtune.LevelDebug)

	assert.Equal(t, slogtune.LevelDebug, reg.Node("a.b.c").EffectiveLevel())
	assert.Equal(t, slogtune.LevelWarning, reg.Node("a").EffectiveLevel())

	reg.Root().SetLevel(slogtune.LevelError)
	assert.Equal(t, slogtune.LevelError, reg.Node("a").EffectiveLevel())
	assert.Equal(t, slogtune.LevelDebug, reg.Node("a.b.c").EffectiveLevel())
}

func TestRegistryResolve(t *testing.T) {
	reg := slogtune.NewRegistry()
	n := reg.Node("a.b")

	assert.Same(t, n, reg.Resolve("a.b"))
	assert.Same(t, n, reg.Resolve("a.b.c.d"))
	assert.Same(t, reg.Root(), reg.Resolve("zzz.unknown"))
}

func TestNodeAddFuncName(t *testing.T) {
	reg := slogtune.NewRegistry()
	n := reg.Node("pkg.app")
	require.Nil(t, n.Filter())

	assert.True(t, n.AddFuncName("f1"), "first override should create the filter")
	assert.False(t, n.AddFuncName("f2"), "second override should grow the existing filter")

	f := n.Filter()
	require.NotNil(t, f)
	assert.Equal(t, []string{"f1", "f2"}, f.Names())
	assert.Same(t, f, n.Filter(), "at most one filter per node")
}

package slogtune_test

import (
	"testing"

	"github.com/apperia-de/slogtune"
	"github.com/stretchr/testify/assert"
)

func TestFuncNameFilter(t *testing.T) {
	f := slogtune.NewFuncNameFilter("Start")

	assert.True(t, f.Allows("Start"))
	assert.True(t, f.Allows("(*App).Start"), "receiver-qualified names match on the bare method name")
	assert.True(t, f.Allows("pkg.(*App).Start"))
	assert.False(t, f.Allows("Stop"))

	f.AddFuncName("Stop")
	assert.True(t, f.Allows("Stop"))
	assert.True(t, f.Allows("Start"), "names accumulate with OR semantics")
	assert.Equal(t, []string{"Start", "Stop"}, f.Names())
}

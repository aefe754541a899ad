//go:build griddebug

package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugAssertions(t *testing.T) {
	s, err := NewShape(4, 3)
	assert.NoError(t, err)

	assert.Panics(t, func() { s.Linearize(NewKey(4, 0)) })
	assert.Panics(t, func() { s.LinearizeSlice([]int{0, 3}) })
	assert.Panics(t, func() { s.Delinearize(13) })
	assert.NotPanics(t, func() { s.Delinearize(12) })
}

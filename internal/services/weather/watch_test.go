package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCityWatch(t *testing.T) {
	var w cityWatch

	g1, changed := w.Observe("Paris")
	assert.True(t, changed)
	assert.True(t, w.Current(g1))

	g2, changed := w.Observe("Paris")
	assert.False(t, changed, "same city does not fire again")
	assert.Equal(t, g1, g2)

	g3, changed := w.Observe("Oslo")
	assert.True(t, changed)
	assert.False(t, w.Current(g1))
	assert.True(t, w.Current(g3))

	w.Reset()
	assert.False(t, w.Current(g3))

	_, changed = w.Observe("Oslo")
	assert.True(t, changed, "fires again after a reset")
}

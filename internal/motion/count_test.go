package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountStateAccumulate(t *testing.T) {
	var c CountState

	assert.False(t, c.AccumulateDigit('0'), "leading zero is a motion")
	assert.False(t, c.Active)
	assert.Equal(t, 1, c.Get())
	assert.Equal(t, 0, c.Raw())

	assert.True(t, c.AccumulateDigit('1'))
	assert.True(t, c.AccumulateDigit('0'))
	assert.Equal(t, 10, c.Get())
	assert.Equal(t, 10, c.Raw())

	assert.False(t, c.AccumulateDigit('x'))
	assert.False(t, c.AccumulateDigit('٣'), "only ASCII digits")

	c.Reset()
	assert.False(t, c.Active)
	assert.Equal(t, 0, c.Value)
}

func TestCountStateSaturates(t *testing.T) {
	var c CountState
	for i := 0; i < 30; i++ {
		assert.True(t, c.AccumulateDigit('9'))
	}
	assert.Equal(t, maxCount, c.Get())
}

func TestEffectiveCount(t *testing.T) {
	assert.Equal(t, 1, EffectiveCount(0))
	assert.Equal(t, 1, EffectiveCount(-3))
	assert.Equal(t, 7, EffectiveCount(7))
}

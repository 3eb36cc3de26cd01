package page

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRevealFiresOnce(t *testing.T) {
	r := NewReveal("skills")

	assert.False(t, r.Observe(false))
	assert.True(t, r.Observe(true))
	assert.False(t, r.Observe(false))
	assert.False(t, r.Observe(true))

	assert.True(t, r.Revealed())
	assert.Equal(t, 1, r.Fired())
}

func TestRevealIgnoresStoppedObserver(t *testing.T) {
	h := newFakeHost()
	r := NewReveal("about")
	r.attach(h, DefaultRevealThreshold)

	var stale func(bool)
	h.mu.Lock()
	for _, fn := range h.observers["about"] {
		stale = fn
	}
	h.mu.Unlock()

	r.detach()
	stale(true)

	assert.False(t, r.Revealed())
	assert.Equal(t, 0, h.observerCount("about"))
}

func TestStaggerDelay(t *testing.T) {
	assert.Equal(t, time.Duration(0), StaggerDelay(0))
	assert.Equal(t, 200*time.Millisecond, StaggerDelay(2))
	assert.Equal(t, time.Duration(0), StaggerDelay(-1))
}

package page

import (
	"fmt"
	"strconv"
	"sync"

	"psaxe.dev/internal/models"
)

// PointerTracker records the latest pointer position for the glow overlay.
// It holds at most one host subscription at a time.
type PointerTracker struct {
	mu          sync.Mutex
	pos         models.Position
	unsubscribe func()
	gen         uint64
	onChange    func(models.Position)
}

// NewPointerTracker creates a tracker. onChange, if set, runs after every
// position update.
func NewPointerTracker(onChange func(models.Position)) *PointerTracker {
	return &PointerTracker{onChange: onChange}
}

// Attach subscribes to the host's pointer events. It returns false when a
// subscription is already held.
func (t *PointerTracker) Attach(h Host) bool {
	t.mu.Lock()
	if t.unsubscribe != nil {
		t.mu.Unlock()
		return false
	}
	t.gen++
	gen := t.gen
	t.mu.Unlock()

	unsubscribe := h.SubscribePointer(func(pos models.Position) {
		t.update(gen, pos)
	})

	t.mu.Lock()
	t.unsubscribe = unsubscribe
	t.mu.Unlock()
	return true
}

// Detach releases the subscription. It returns false if none was held.
func (t *PointerTracker) Detach() bool {
	t.mu.Lock()
	unsubscribe := t.unsubscribe
	t.unsubscribe = nil
	t.gen++
	t.mu.Unlock()

	if unsubscribe == nil {
		return false
	}
	unsubscribe()
	return true
}

// Active reports whether a subscription is held
func (t *PointerTracker) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.unsubscribe != nil
}

// Position returns the last recorded coordinates
func (t *PointerTracker) Position() models.Position {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pos
}

// Gradient returns the overlay background for the last recorded position
func (t *PointerTracker) Gradient() string {
	return Gradient(t.Position())
}

// Reset moves the stored position back to the origin
func (t *PointerTracker) Reset() {
	t.mu.Lock()
	t.pos = models.Position{}
	t.mu.Unlock()
}

func (t *PointerTracker) update(gen uint64, pos models.Position) {
	t.mu.Lock()
	// events from a released subscription are dropped
	if gen != t.gen {
		t.mu.Unlock()
		return
	}
	t.pos = pos
	onChange := t.onChange
	t.mu.Unlock()

	if onChange != nil {
		onChange(pos)
	}
}

// Gradient renders the radial gradient centred on pos
func Gradient(pos models.Position) string {
	return fmt.Sprintf(
		"radial-gradient(circle at %spx %spx, rgba(255,255,255,0.1) 0%%, rgba(0,0,0,0) 50%%)",
		formatCoord(pos.X), formatCoord(pos.Y),
	)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package page

import (
	"sync"

	"psaxe.dev/internal/models"
)

// fakeHost records subscriptions so tests can assert on leaks.
type fakeHost struct {
	mu        sync.Mutex
	nextID    int
	pointers  map[int]func(models.Position)
	observers map[string]map[int]func(bool)
	threshold map[string]float64
	scrolled  []string
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		pointers:  make(map[int]func(models.Position)),
		observers: make(map[string]map[int]func(bool)),
		threshold: make(map[string]float64),
	}
}

func (h *fakeHost) SubscribePointer(fn func(models.Position)) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	id := h.nextID
	h.pointers[id] = fn
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.pointers, id)
	}
}

func (h *fakeHost) ObserveVisibility(section string, threshold float64, fn func(bool)) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	id := h.nextID
	if h.observers[section] == nil {
		h.observers[section] = make(map[int]func(bool))
	}
	h.observers[section][id] = fn
	h.threshold[section] = threshold
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.observers[section], id)
	}
}

func (h *fakeHost) ScrollTo(anchor string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.scrolled = append(h.scrolled, anchor)
}

func (h *fakeHost) pointerSubscriptions() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.pointers)
}

func (h *fakeHost) observerCount(section string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.observers[section])
}

func (h *fakeHost) movePointer(x, y float64) {
	h.mu.Lock()
	fns := make([]func(models.Position), 0, len(h.pointers))
	for _, fn := range h.pointers {
		fns = append(fns, fn)
	}
	h.mu.Unlock()
	for _, fn := range fns {
		fn(models.Position{X: x, Y: y})
	}
}

func (h *fakeHost) setVisible(section string, visible bool) {
	h.mu.Lock()
	fns := make([]func(bool), 0)
	for _, fn := range h.observers[section] {
		fns = append(fns, fn)
	}
	h.mu.Unlock()
	for _, fn := range fns {
		fn(visible)
	}
}

func (h *fakeHost) lastScroll() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.scrolled) == 0 {
		return ""
	}
	return h.scrolled[len(h.scrolled)-1]
}

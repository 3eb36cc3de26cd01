package page

import (
	"sync"
	"time"
)

const (
	// RevealDuration is how long a section's entrance animation runs
	RevealDuration = 500 * time.Millisecond
	// RevealStagger is the extra delay per list entry or card
	RevealStagger = 100 * time.Millisecond
	// DefaultRevealThreshold is the visible fraction that triggers a reveal
	DefaultRevealThreshold = 0.1
)

// Sections lists the content sections that reveal on scroll, in page order
var Sections = []string{"about", "skills", "projects", "contact"}

// StaggerDelay returns the entrance delay for the entry at index
func StaggerDelay(index int) time.Duration {
	if index < 0 {
		return 0
	}
	return time.Duration(index) * RevealStagger
}

// Reveal tracks one section's reveal-once entrance
type Reveal struct {
	section string

	mu       sync.Mutex
	revealed bool
	fired    int
	stop     func()
	gen      uint64
}

// NewReveal creates a hidden tracker for a section
func NewReveal(section string) *Reveal {
	return &Reveal{section: section}
}

// Section returns the section id
func (r *Reveal) Section() string {
	return r.section
}

// Observe records a visibility change. It returns true only for the first
// time the section becomes visible.
func (r *Reveal) Observe(visible bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.observeLocked(visible)
}

func (r *Reveal) observeLocked(visible bool) bool {
	if !visible || r.revealed {
		return false
	}
	r.revealed = true
	r.fired++
	return true
}

// Revealed reports whether the entrance has played
func (r *Reveal) Revealed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.revealed
}

// Fired returns how many times the entrance played since the last reset
func (r *Reveal) Fired() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fired
}

func (r *Reveal) attach(h Host, threshold float64) {
	r.mu.Lock()
	r.gen++
	gen := r.gen
	r.mu.Unlock()

	stop := h.ObserveVisibility(r.section, threshold, func(visible bool) {
		r.mu.Lock()
		defer r.mu.Unlock()
		if gen == r.gen {
			r.observeLocked(visible)
		}
	})

	r.mu.Lock()
	r.stop = stop
	r.mu.Unlock()
}

func (r *Reveal) detach() {
	r.mu.Lock()
	stop := r.stop
	r.stop = nil
	r.gen++
	r.revealed = false
	r.fired = 0
	r.mu.Unlock()
	if stop != nil {
		stop()
	}
}

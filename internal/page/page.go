package page

import (
	"errors"
	"fmt"
	"sync"

	"psaxe.dev/internal/models"
)

var (
	// ErrAlreadyMounted is returned by Mount on a page that is mounted
	ErrAlreadyMounted = errors.New("page already mounted")
	// ErrUnknownNavItem is returned by ClickNav for a label not in the nav bar
	ErrUnknownNavItem = errors.New("unknown navigation item")
)

// Content is the static content a page projects
type Content interface {
	Profile() models.Profile
	NavItems() []models.NavItem
	NavItem(label string) (models.NavItem, bool)
	Skills() []models.SkillCategory
	Projects() []models.Project
	HeroLinks() []models.SocialLink
	ContactLinks() []models.SocialLink
}

// Option configures a Page
type Option func(*Page)

// WithRevealThreshold sets the visible fraction that reveals a section
func WithRevealThreshold(threshold float64) Option {
	return func(p *Page) {
		if threshold > 0 && threshold <= 1 {
			p.threshold = threshold
		}
	}
}

// WithImageAvailable marks whether the profile image can be served
func WithImageAvailable(available bool) Option {
	return func(p *Page) {
		p.imageAvailable = available
	}
}

// WithRerender registers fn to run whenever the pointer overlay changes
func WithRerender(fn func(View)) Option {
	return func(p *Page) {
		p.rerender = fn
	}
}

// Page is the portfolio page component. Its only mutable state is the menu
// drawer and the pointer position; content is read-only.
type Page struct {
	content        Content
	threshold      float64
	imageAvailable bool
	rerender       func(View)

	// lifecycle serialises Mount and Unmount across the attach/detach calls
	lifecycle sync.Mutex

	mu      sync.Mutex
	host    Host
	menu    *Menu
	pointer *PointerTracker
	reveals []*Reveal
}

// New creates an unmounted page
func New(content Content, opts ...Option) *Page {
	p := &Page{
		content:   content,
		threshold: DefaultRevealThreshold,
		menu:      NewMenu(content.NavItems()),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.pointer = NewPointerTracker(p.pointerMoved)
	for _, section := range Sections {
		p.reveals = append(p.reveals, NewReveal(section))
	}
	return p
}

// Mount attaches the page to a host: one pointer subscription plus one
// visibility observer per content section.
func (p *Page) Mount(h Host) error {
	p.lifecycle.Lock()
	defer p.lifecycle.Unlock()

	p.mu.Lock()
	if p.host != nil {
		p.mu.Unlock()
		return ErrAlreadyMounted
	}
	p.host = h
	p.mu.Unlock()

	p.pointer.Attach(h)
	for _, r := range p.reveals {
		r.attach(h, p.threshold)
	}
	return nil
}

// Unmount releases every host subscription and discards interaction state.
// Calling it on an unmounted page does nothing.
func (p *Page) Unmount() {
	p.lifecycle.Lock()
	defer p.lifecycle.Unlock()

	p.mu.Lock()
	if p.host == nil {
		p.mu.Unlock()
		return
	}
	p.host = nil
	p.menu.Reset()
	p.mu.Unlock()

	p.pointer.Detach()
	p.pointer.Reset()
	for _, r := range p.reveals {
		r.detach()
	}
}

// Mounted reports whether the page is attached to a host
func (p *Page) Mounted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.host != nil
}

// ToggleMenu flips the drawer and returns the new state
func (p *Page) ToggleMenu() MenuState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.menu.Toggle()
}

// MenuState returns the drawer state
func (p *Page) MenuState() MenuState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.menu.State()
}

// ClickNav handles activation of a navigation link: the drawer closes and
// the host scrolls toward the section. The anchor is returned.
func (p *Page) ClickNav(label string) (string, error) {
	item, ok := p.content.NavItem(label)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownNavItem, label)
	}

	p.mu.Lock()
	anchor := p.menu.Navigate(item)
	host := p.host
	p.mu.Unlock()

	if host != nil {
		host.ScrollTo(anchor)
	}
	return anchor, nil
}

// Pointer returns the last recorded pointer position
func (p *Page) Pointer() models.Position {
	return p.pointer.Position()
}

// PointerActive reports whether the pointer subscription is held
func (p *Page) PointerActive() bool {
	return p.pointer.Active()
}

// Reveal returns the tracker for a section
func (p *Page) Reveal(section string) (*Reveal, bool) {
	for _, r := range p.reveals {
		if r.Section() == section {
			return r, true
		}
	}
	return nil, false
}

func (p *Page) pointerMoved(models.Position) {
	if p.rerender != nil {
		p.rerender(p.View())
	}
}

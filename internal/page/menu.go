package page

import "psaxe.dev/internal/models"

// MenuState is the state of the mobile navigation drawer
type MenuState int

const (
	MenuClosed MenuState = iota
	MenuOpen
)

func (s MenuState) String() string {
	switch s {
	case MenuOpen:
		return "open"
	default:
		return "closed"
	}
}

// ParseMenuState maps "open" to MenuOpen; anything else is MenuClosed
func ParseMenuState(s string) MenuState {
	if s == "open" {
		return MenuOpen
	}
	return MenuClosed
}

// Menu is the two-state drawer machine. It is not safe for concurrent use;
// Page serialises access to it.
type Menu struct {
	state MenuState
	items []models.NavItem
}

// NewMenu creates a closed menu over the given links
func NewMenu(items []models.NavItem) *Menu {
	return &Menu{items: append([]models.NavItem(nil), items...)}
}

// State returns the current state
func (m *Menu) State() MenuState {
	return m.state
}

// IsOpen reports whether the drawer is shown
func (m *Menu) IsOpen() bool {
	return m.state == MenuOpen
}

// Toggle flips the state and returns the new one
func (m *Menu) Toggle() MenuState {
	if m.state == MenuOpen {
		m.state = MenuClosed
	} else {
		m.state = MenuOpen
	}
	return m.state
}

// Navigate closes the drawer and returns the anchor to scroll to
func (m *Menu) Navigate(item models.NavItem) string {
	m.state = MenuClosed
	return item.Anchor()
}

// Glyph returns the icon the toggle control shows for the current state
func (m *Menu) Glyph() models.Glyph {
	if m.state == MenuOpen {
		return models.GlyphClose
	}
	return models.GlyphMenu
}

// Items returns the drawer links, or nil while the drawer is closed
func (m *Menu) Items() []models.NavItem {
	if m.state != MenuOpen {
		return nil
	}
	return append([]models.NavItem(nil), m.items...)
}

// Reset returns the machine to its initial state
func (m *Menu) Reset() {
	m.state = MenuClosed
}

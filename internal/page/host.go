// Package page models the portfolio page as a mountable component. The
// rendering runtime is reached only through Host, so the page's behaviour
// (menu drawer, pointer glow, reveal-once sections) can be driven by the HTTP
// renderer, a static generator or a test double alike.
package page

import "psaxe.dev/internal/models"

// Host is the rendering runtime the page is mounted into.
type Host interface {
	// SubscribePointer registers fn for pointer-move notifications. The
	// returned function removes the registration.
	SubscribePointer(fn func(models.Position)) (unsubscribe func())

	// ObserveVisibility reports viewport intersection changes for the
	// section with the given id. threshold is the visible fraction that
	// counts as "in view". The returned function stops observation.
	ObserveVisibility(section string, threshold float64, fn func(visible bool)) (stop func())

	// ScrollTo moves the viewport toward an in-page anchor such as "#projects".
	ScrollTo(anchor string)
}

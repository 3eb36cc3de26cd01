package models

import "strings"

// NavItem is a navigation bar entry pointing at a section anchor
type NavItem struct {
	Label string `json:"label"`
}

// Target returns the id of the section the item points at
func (n NavItem) Target() string {
	return strings.ToLower(n.Label)
}

// Anchor returns the in-page fragment, e.g. "#about"
func (n NavItem) Anchor() string {
	return "#" + n.Target()
}

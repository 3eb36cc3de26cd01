package models

import "testing"

func TestProjectSlug(t *testing.T) {
	tests := map[string]string{
		"Ez Pay":                    "ez-pay",
		"StreamSage":                "streamsage",
		"Library Management System": "library-management-system",
		"  C++ / Rust!  ":           "c-rust",
	}
	for title, want := range tests {
		if got := (Project{Title: title}).Slug(); got != want {
			t.Errorf("Slug(%q) = %q, want %q", title, got, want)
		}
	}
}

func TestNavItemAnchor(t *testing.T) {
	item := NavItem{Label: "Projects"}
	if item.Anchor() != "#projects" {
		t.Fatalf("Anchor() = %q, want %q", item.Anchor(), "#projects")
	}
}

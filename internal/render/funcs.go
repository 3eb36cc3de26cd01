package render

import (
	"fmt"
	"html/template"

	"psaxe.dev/internal/models"
)

var funcs = template.FuncMap{
	"icon":     icon,
	"delay":    delay,
	"overlay":  overlay,
	"external": external,
}

// delay returns the inline style carrying a stagger delay
func delay(ms int64) template.CSS {
	return template.CSS(fmt.Sprintf("--delay: %dms", ms))
}

func overlay(gradient string) template.CSS {
	return template.CSS("background: " + gradient)
}

// external reports whether a link opens outside the page
func external(l models.SocialLink) bool {
	return l.Icon != models.GlyphMail
}

const svgOpen = `<svg class="icon" xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true">`

var glyphPaths = map[models.Glyph]string{
	models.GlyphGitHub:   `<path d="M15 22v-4a4.8 4.8 0 0 0-1-3.5c3 0 6-2 6-5.5.08-1.25-.27-2.48-1-3.5.28-1.15.28-2.35 0-3.5 0 0-1 0-3 1.5-2.64-.5-5.36-.5-8 0C6 2 5 2 5 2c-.3 1.15-.3 2.35 0 3.5A5.4 5.4 0 0 0 4 9c0 3.5 3 5.5 6 5.5-.39.49-.68 1.05-.85 1.65-.17.6-.22 1.23-.15 1.85v4"/><path d="M9 18c-4.51 2-5-2-7-2"/>`,
	models.GlyphLinkedIn: `<path d="M16 8a6 6 0 0 1 6 6v7h-4v-7a2 2 0 0 0-4 0v7h-4v-7a6 6 0 0 1 6-6z"/><rect width="4" height="12" x="2" y="9"/><circle cx="4" cy="4" r="2"/>`,
	models.GlyphMail:     `<rect width="20" height="16" x="2" y="4" rx="2"/><path d="m22 7-8.97 5.7a1.94 1.94 0 0 1-2.06 0L2 7"/>`,
	models.GlyphMenu:     `<line x1="4" x2="20" y1="12" y2="12"/><line x1="4" x2="20" y1="6" y2="6"/><line x1="4" x2="20" y1="18" y2="18"/>`,
	models.GlyphClose:    `<path d="M18 6 6 18"/><path d="m6 6 12 12"/>`,
	models.GlyphCode:     `<path d="m18 16 4-4-4-4"/><path d="m6 8-4 4 4 4"/><path d="m14.5 4-5 16"/>`,
	models.GlyphServer:   `<rect width="20" height="8" x="2" y="2" rx="2"/><rect width="20" height="8" x="2" y="14" rx="2"/><line x1="6" x2="6.01" y1="6" y2="6"/><line x1="6" x2="6.01" y1="18" y2="18"/>`,
	models.GlyphDatabase: `<ellipse cx="12" cy="5" rx="9" ry="3"/><path d="M3 5V19A9 3 0 0 0 21 19V5"/><path d="M3 12A9 3 0 0 0 21 12"/>`,
	models.GlyphExternal: `<path d="M15 3h6v6"/><path d="M10 14 21 3"/><path d="M18 13v6a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2V8a2 2 0 0 1 2-2h3"/>`,
}

// icon renders a glyph as inline SVG; unknown glyphs render nothing
func icon(g models.Glyph) template.HTML {
	path, ok := glyphPaths[g]
	if !ok {
		return ""
	}
	return template.HTML(svgOpen + path + `</svg>`)
}

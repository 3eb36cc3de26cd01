package models

// Glyph names an icon drawn by the renderer
type Glyph string

const (
	GlyphGitHub   Glyph = "github"
	GlyphLinkedIn Glyph = "linkedin"
	GlyphMail     Glyph = "mail"
	GlyphMenu     Glyph = "menu"
	GlyphClose    Glyph = "close"
	GlyphCode     Glyph = "code"
	GlyphServer   Glyph = "server"
	GlyphDatabase Glyph = "database"
	GlyphExternal Glyph = "external"
)

package models

// SkillCategory groups related skills under one heading
type SkillCategory struct {
	Name  string   `json:"name"`
	Icon  Glyph    `json:"icon"`
	Items []string `json:"items"`
}

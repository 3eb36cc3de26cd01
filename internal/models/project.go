package models

import "strings"

// Project represents a showcased portfolio project
type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tech        []string `json:"tech"`
	GitHubURL   string   `json:"github_url"`
}

// Slug returns the URL-safe identifier derived from the title
func (p Project) Slug() string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(p.Title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// ProjectList wraps the array of projects
type ProjectList struct {
	Projects []Project `json:"projects"`
}

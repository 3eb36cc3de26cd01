package models

// Profile holds the owner's hero, about and contact text
type Profile struct {
	Name      string   `json:"name"`
	Brand     string   `json:"brand"`
	Headline  string   `json:"headline"`
	Tagline   string   `json:"tagline"`
	Email     string   `json:"email"`
	Initials  string   `json:"initials"`
	About     []string `json:"about"`
	ImagePath string   `json:"image_path"`
}

// Position represents viewport-relative pointer coordinates
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Content is the full set of static page content
type Content struct {
	Profile  Profile         `json:"profile"`
	Nav      []NavItem       `json:"nav"`
	Skills   []SkillCategory `json:"skills"`
	Projects []Project       `json:"projects"`
	Links    Links           `json:"links"`
}

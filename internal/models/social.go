package models

// SocialLink is an outbound profile or contact URL rendered as an icon
type SocialLink struct {
	Icon Glyph  `json:"icon"`
	URL  string `json:"url"`
}

// Links groups the social links shown in each section
type Links struct {
	Hero    []SocialLink `json:"hero"`
	Contact []SocialLink `json:"contact"`
}

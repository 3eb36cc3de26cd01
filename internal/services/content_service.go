package services

import (
	"errors"
	"fmt"

	"psaxe.dev/internal/models"
)

// ErrProjectNotFound is returned when no project matches a slug
var ErrProjectNotFound = errors.New("project not found")

// ContentService serves the page's static content. Every accessor returns a
// copy so the source collections stay read-only.
type ContentService struct {
	content models.Content
}

// NewContentService creates a ContentService over the given content
func NewContentService(content models.Content) *ContentService {
	s := &ContentService{content: content}
	s.content = s.Content()
	return s
}

// NewDefaultContentService creates a ContentService over the built-in content
func NewDefaultContentService(imagePath string) *ContentService {
	c := DefaultContent()
	c.Profile.ImagePath = imagePath
	return &ContentService{content: c}
}

// Profile returns the owner profile
func (s *ContentService) Profile() models.Profile {
	p := s.content.Profile
	p.About = append([]string(nil), p.About...)
	return p
}

// NavItems returns the navigation entries in display order
func (s *ContentService) NavItems() []models.NavItem {
	return append([]models.NavItem(nil), s.content.Nav...)
}

// NavItem looks up a navigation entry by its label
func (s *ContentService) NavItem(label string) (models.NavItem, bool) {
	for _, item := range s.content.Nav {
		if item.Label == label {
			return item, true
		}
	}
	return models.NavItem{}, false
}

// Skills returns all skill categories
func (s *ContentService) Skills() []models.SkillCategory {
	out := make([]models.SkillCategory, len(s.content.Skills))
	for i, sk := range s.content.Skills {
		sk.Items = append([]string(nil), sk.Items...)
		out[i] = sk
	}
	return out
}

// Projects returns all projects
func (s *ContentService) Projects() []models.Project {
	out := make([]models.Project, len(s.content.Projects))
	for i, p := range s.content.Projects {
		p.Tech = append([]string(nil), p.Tech...)
		out[i] = p
	}
	return out
}

// ProjectBySlug returns a specific project by its slug
func (s *ContentService) ProjectBySlug(slug string) (models.Project, error) {
	for _, p := range s.content.Projects {
		if p.Slug() == slug {
			p.Tech = append([]string(nil), p.Tech...)
			return p, nil
		}
	}
	return models.Project{}, fmt.Errorf("%w: %s", ErrProjectNotFound, slug)
}

// HeroLinks returns the social links shown under the hero heading
func (s *ContentService) HeroLinks() []models.SocialLink {
	return append([]models.SocialLink(nil), s.content.Links.Hero...)
}

// ContactLinks returns the social links shown in the contact section
func (s *ContentService) ContactLinks() []models.SocialLink {
	return append([]models.SocialLink(nil), s.content.Links.Contact...)
}

// Content returns a copy of everything
func (s *ContentService) Content() models.Content {
	return models.Content{
		Profile:  s.Profile(),
		Nav:      s.NavItems(),
		Skills:   s.Skills(),
		Projects: s.Projects(),
		Links: models.Links{
			Hero:    s.HeroLinks(),
			Contact: s.ContactLinks(),
		},
	}
}

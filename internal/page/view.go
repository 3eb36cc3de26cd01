package page

import (
	"time"

	"psaxe.dev/internal/models"
)

// View is an immutable snapshot of everything the renderer needs
type View struct {
	Profile         ProfileView
	Nav             []NavLink
	Menu            MenuView
	Overlay         string
	Pointer         models.Position
	HeroLinks       []models.SocialLink
	ContactLinks    []models.SocialLink
	Skills          []SkillCard
	Projects        []ProjectCard
	Revealed        map[string]bool
	RevealThreshold float64
	RevealDuration  int64
}

// ProfileView is the profile plus avatar availability
type ProfileView struct {
	models.Profile
	ImageAvailable bool
}

// NavLink is a navigation entry with its entrance delay
type NavLink struct {
	Label   string
	Target  string
	Anchor  string
	DelayMS int64
}

// MenuView is the drawer as rendered
type MenuView struct {
	State MenuState
	Open  bool
	Glyph models.Glyph
	Items []NavLink
}

// SkillCard is a skill category with its entrance delay
type SkillCard struct {
	models.SkillCategory
	DelayMS int64
}

// ProjectCard is a project with its entrance delay
type ProjectCard struct {
	models.Project
	DelayMS int64
}

// View builds a snapshot of the current page
func (p *Page) View() View {
	p.mu.Lock()
	menu := MenuView{
		State: p.menu.State(),
		Open:  p.menu.IsOpen(),
		Glyph: p.menu.Glyph(),
		Items: navLinks(p.menu.Items()),
	}
	p.mu.Unlock()

	pos := p.pointer.Position()
	revealed := make(map[string]bool, len(p.reveals))
	for _, r := range p.reveals {
		revealed[r.Section()] = r.Revealed()
	}

	skills := p.content.Skills()
	skillCards := make([]SkillCard, len(skills))
	for i, s := range skills {
		skillCards[i] = SkillCard{SkillCategory: s, DelayMS: ms(StaggerDelay(i))}
	}

	projects := p.content.Projects()
	projectCards := make([]ProjectCard, len(projects))
	for i, pr := range projects {
		projectCards[i] = ProjectCard{Project: pr, DelayMS: ms(StaggerDelay(i))}
	}

	return View{
		Profile: ProfileView{
			Profile:        p.content.Profile(),
			ImageAvailable: p.imageAvailable,
		},
		Nav:             navLinks(p.content.NavItems()),
		Menu:            menu,
		Overlay:         Gradient(pos),
		Pointer:         pos,
		HeroLinks:       p.content.HeroLinks(),
		ContactLinks:    p.content.ContactLinks(),
		Skills:          skillCards,
		Projects:        projectCards,
		Revealed:        revealed,
		RevealThreshold: p.threshold,
		RevealDuration:  ms(RevealDuration),
	}
}

func navLinks(items []models.NavItem) []NavLink {
	if items == nil {
		return nil
	}
	links := make([]NavLink, len(items))
	for i, item := range items {
		links[i] = NavLink{
			Label:   item.Label,
			Target:  item.Target(),
			Anchor:  item.Anchor(),
			DelayMS: ms(StaggerDelay(i)),
		}
	}
	return links
}

func ms(d time.Duration) int64 {
	return d.Milliseconds()
}

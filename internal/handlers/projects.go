package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"psaxe.dev/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	contentService *services.ContentService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(cs *services.ContentService) *ProjectHandler {
	return &ProjectHandler{contentService: cs}
}

type projectResponse struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tech        []string `json:"tech"`
	GitHubURL   string   `json:"github_url"`
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects := h.contentService.Projects()
	out := make([]projectResponse, len(projects))
	for i, p := range projects {
		out[i] = projectResponse{
			Slug:        p.Slug(),
			Title:       p.Title,
			Description: p.Description,
			Tech:        p.Tech,
			GitHubURL:   p.GitHubURL,
		}
	}
	respondJSON(w, http.StatusOK, out)
}

// GetProject handles GET /api/projects/{slug}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	p, err := h.contentService.ProjectBySlug(slug)
	if errors.Is(err, services.ErrProjectNotFound) {
		respondError(w, http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load project")
		return
	}

	respondJSON(w, http.StatusOK, projectResponse{
		Slug:        p.Slug(),
		Title:       p.Title,
		Description: p.Description,
		Tech:        p.Tech,
		GitHubURL:   p.GitHubURL,
	})
}

package handlers

import (
	"net/http"

	"psaxe.dev/internal/models"
	"psaxe.dev/internal/services"
)

// ContentHandler exposes the page content as JSON
type ContentHandler struct {
	contentService *services.ContentService
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(cs *services.ContentService) *ContentHandler {
	return &ContentHandler{contentService: cs}
}

// GetContent handles GET /api/content
func (h *ContentHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.contentService.Content())
}

// ListSkills handles GET /api/skills
func (h *ContentHandler) ListSkills(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.contentService.Skills())
}

// GetLinks handles GET /api/links
func (h *ContentHandler) GetLinks(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, models.Links{
		Hero:    h.contentService.HeroLinks(),
		Contact: h.contentService.ContactLinks(),
	})
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ai-heroes/storyquest/internal/catalog"
	"github.com/ai-heroes/storyquest/internal/i18n"
)

type storySummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Image     string `json:"image"`
	Lang      string `json:"lang"`
	Direction string `json:"direction"`
}

type storyDetail struct {
	catalog.Story
	Lang      string               `json:"lang"`
	Direction string               `json:"direction"`
	Content   catalog.StoryContent `json:"content"`
}

// ListStoriesHandler returns the catalog localized for the request.
//
// GET /stories?lang=fr
func ListStoriesHandler(cat *catalog.Catalog, res *i18n.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tag := res.FromRequest(r)
		lang := i18n.Code(tag)
		out := []storySummary{}
		for _, s := range cat.Stories() {
			content, ok := s.Localized(lang)
			if !ok {
				continue
			}
			out = append(out, storySummary{
				ID:        s.ID,
				Title:     content.Title,
				Image:     s.Image,
				Lang:      lang,
				Direction: i18n.Direction(tag),
			})
		}
		_ = json.NewEncoder(w).Encode(out)
	}
}

// GetStoryHandler returns one story with its localized content. The activity
// item types drop their answer keys during marshaling, so this is safe to
// hand to a student client.
//
// GET /stories/{storyID}?lang=fr
func GetStoryHandler(cat *catalog.Catalog, res *i18n.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := cat.Get(chi.URLParam(r, "storyID"))
		if !ok {
			http.Error(w, "story not found", http.StatusNotFound)
			return
		}
		tag := res.FromRequest(r)
		lang := i18n.Code(tag)
		content, ok := s.Localized(lang)
		if !ok {
			http.Error(w, "story not found", http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(storyDetail{
			Story:     s,
			Lang:      lang,
			Direction: i18n.Direction(tag),
			Content:   content,
		})
	}
}

// GetStoryResourcesHandler returns the educator material as JSON. Guarded by
// resources:view in the router.
//
// GET /stories/{storyID}/resources?lang=fr
func GetStoryResourcesHandler(cat *catalog.Catalog, res *i18n.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := cat.Get(chi.URLParam(r, "storyID"))
		if !ok {
			http.Error(w, "story not found", http.StatusNotFound)
			return
		}
		lang := i18n.Code(res.FromRequest(r))
		rs, ok := s.LocalizedResources(lang)
		if !ok {
			http.Error(w, "no resources", http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(rs)
	}
}

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ai-heroes/storyquest/internal/catalog"
	"github.com/ai-heroes/storyquest/internal/i18n"
	"github.com/ai-heroes/storyquest/internal/printable"
	"github.com/ai-heroes/storyquest/internal/session"
)

// PrintResourcesHandler renders the educator resource sheet as HTML. Routed
// behind printable:view, since the sheet carries the answer keys.
//
// GET /printables/stories/{storyID}?lang=fr
func PrintResourcesHandler(cat *catalog.Catalog, res *i18n.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := cat.Get(chi.URLParam(r, "storyID"))
		if !ok {
			http.Error(w, "story not found", http.StatusNotFound)
			return
		}
		lang := i18n.Code(res.FromRequest(r))
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := printable.RenderResourceSheet(w, s, lang); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

// PrintResultsHandler renders the results sheet for one complete session.
//
// GET /printables/sessions/{sessionID}
func PrintResultsHandler(cat *catalog.Catalog, svc *session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := svc.Results(r.Context(), chi.URLParam(r, "sessionID"))
		if err != nil {
			fail(w, err)
			return
		}
		s, ok := cat.Get(rec.StoryID)
		if !ok {
			http.Error(w, "story not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := printable.RenderResultsSheet(w, s, rec); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ai-heroes/storyquest/internal/activity"
	"github.com/ai-heroes/storyquest/internal/catalog"
	"github.com/ai-heroes/storyquest/internal/i18n"
	"github.com/ai-heroes/storyquest/internal/rbac"
	"github.com/ai-heroes/storyquest/internal/session"
)

// identityCtx stamps a fixed subject and role, standing in for the JWT
// middleware.
func identityCtx(sub, role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := rbac.WithSubject(r.Context(), sub)
			ctx = rbac.WithRole(ctx, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func newTestRouter(t *testing.T, sub, role string) (*chi.Mux, *session.Service) {
	t.Helper()
	cat := catalog.Default()
	res := i18n.NewResolver("en")
	svc := session.NewService(cat, session.NewInMemoryStore(),
		session.WithActivityOptions(activity.WithShuffle(activity.NoShuffle)))

	r := chi.NewRouter()
	r.Use(identityCtx(sub, role))
	r.With(rbac.Require("story:view")).Get("/stories", ListStoriesHandler(cat, res))
	r.With(rbac.Require("story:view")).Get("/stories/{storyID}", GetStoryHandler(cat, res))
	r.With(rbac.Require("session:create")).Post("/sessions", CreateSessionHandler(svc, res))
	r.With(rbac.RequireAny("session:view-own", "session:view-all")).
		Get("/sessions/{sessionID}", GetSessionHandler(svc))
	r.With(rbac.Require("session:operate")).
		Post("/sessions/{sessionID}/quiz/answer", SelectOptionHandler(svc))
	r.With(rbac.Require("session:operate")).
		Post("/sessions/{sessionID}/quiz/submit", SubmitQuizHandler(svc))
	r.With(rbac.RequireAny("session:view-own", "session:view-all")).
		Get("/sessions/{sessionID}/results", GetResultsHandler(svc))
	return r, svc
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Accept-Language", "en")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestStoriesLocalizedAndKeyFree(t *testing.T) {
	r, _ := newTestRouter(t, "u1", "student")

	w := doJSON(t, r, "GET", "/stories?lang=en", nil)
	if w.Code != 200 {
		t.Fatalf("list: %d %s", w.Code, w.Body.String())
	}
	var list []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatal(err)
	}
	if len(list) != 3 {
		t.Fatalf("want 3 stories, got %d", len(list))
	}

	w = doJSON(t, r, "GET", "/stories/tibo-the-helper?lang=en", nil)
	if w.Code != 200 {
		t.Fatalf("get: %d %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	for _, leak := range []string{"correct_option", "correct_answer", "solution"} {
		if strings.Contains(body, leak) {
			t.Fatalf("story payload leaks %q", leak)
		}
	}
}

func TestSessionQuizFlowOverHTTP(t *testing.T) {
	r, _ := newTestRouter(t, "u1", "student")

	w := doJSON(t, r, "POST", "/sessions", map[string]string{"story_id": "tibo-the-helper"})
	if w.Code != 200 {
		t.Fatalf("create: %d %s", w.Code, w.Body.String())
	}
	var v session.View
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatal(err)
	}
	id := v.Session.ID
	if id == "" {
		t.Fatal("no session id")
	}

	// Premature submit is a conflict.
	w = doJSON(t, r, "POST", "/sessions/"+id+"/quiz/submit", nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("premature submit: want 409, got %d", w.Code)
	}

	for i, opt := range []string{"Helping at home", "Cameras", "On his charging dock"} {
		w = doJSON(t, r, "POST", "/sessions/"+id+"/quiz/answer",
			map[string]any{"item": i, "option": opt})
		if w.Code != 200 {
			t.Fatalf("answer %d: %d %s", i, w.Code, w.Body.String())
		}
	}

	w = doJSON(t, r, "POST", "/sessions/"+id+"/quiz/submit", nil)
	if w.Code != 200 {
		t.Fatalf("submit: %d %s", w.Code, w.Body.String())
	}
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatal(err)
	}
	if !v.Quiz.Submitted || v.Quiz.Score == nil || v.Quiz.Score.Correct != 3 {
		t.Fatalf("quiz after submit: %+v", v.Quiz)
	}

	// Out-of-range item maps to 400.
	w = doJSON(t, r, "POST", "/sessions/"+id+"/quiz/answer",
		map[string]any{"item": 99, "option": "x"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("out of range: want 400, got %d", w.Code)
	}

	// Results stay conflict until every engine reports.
	w = doJSON(t, r, "GET", "/sessions/"+id+"/results", nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("results before complete: want 409, got %d", w.Code)
	}
}

func TestSessionOwnershipEnforced(t *testing.T) {
	rOwner, svc := newTestRouter(t, "u1", "student")

	w := doJSON(t, rOwner, "POST", "/sessions", map[string]string{"story_id": "tibo-the-helper"})
	var v session.View
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatal(err)
	}
	id := v.Session.ID

	// Someone else's student token is forbidden, an educator is not. Both
	// routers share the service so the session is visible to each.
	intruder := chi.NewRouter()
	intruder.Use(identityCtx("u2", "student"))
	intruder.With(rbac.RequireAny("session:view-own", "session:view-all")).
		Get("/sessions/{sessionID}", GetSessionHandler(svc))
	if w := doJSON(t, intruder, "GET", "/sessions/"+id, nil); w.Code != http.StatusForbidden {
		t.Fatalf("intruder: want 403, got %d", w.Code)
	}

	educator := chi.NewRouter()
	educator.Use(identityCtx("t1", "educator"))
	educator.With(rbac.RequireAny("session:view-own", "session:view-all")).
		Get("/sessions/{sessionID}", GetSessionHandler(svc))
	if w := doJSON(t, educator, "GET", "/sessions/"+id, nil); w.Code != 200 {
		t.Fatalf("educator: want 200, got %d", w.Code)
	}
}

func TestUnknownSessionIs404(t *testing.T) {
	r, _ := newTestRouter(t, "u1", "student")
	if w := doJSON(t, r, "GET", "/sessions/nope", nil); w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", w.Code)
	}
}

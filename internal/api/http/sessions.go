package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ai-heroes/storyquest/internal/i18n"
	"github.com/ai-heroes/storyquest/internal/rbac"
	"github.com/ai-heroes/storyquest/internal/session"
)

var checker = rbac.NewChecker(nil)

// canViewSession: owners always, plus anyone with session:view-all.
func canViewSession(r *http.Request, rec session.Record) bool {
	if checker.Has(rbac.RoleFromContext(r.Context()), "session:view-all") {
		return true
	}
	return rec.UserID != "" && rec.UserID == rbac.SubjectFromContext(r.Context())
}

// CreateSessionHandler starts a session for the authenticated user. The
// language comes from the request like everywhere else.
//
// POST /sessions  { "story_id": "tibo-the-helper" }
func CreateSessionHandler(svc *session.Service, res *i18n.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			StoryID string `json:"story_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if req.StoryID == "" {
			http.Error(w, "story_id required", http.StatusBadRequest)
			return
		}
		lang := i18n.Code(res.FromRequest(r))
		v, err := svc.Start(r.Context(), req.StoryID, rbac.SubjectFromContext(r.Context()), lang)
		if err != nil {
			fail(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(v)
	}
}

// GetSessionHandler returns the full session snapshot.
//
// GET /sessions/{sessionID}
func GetSessionHandler(svc *session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "sessionID")
		rec, err := svc.Record(r.Context(), id)
		if err != nil {
			fail(w, err)
			return
		}
		if !canViewSession(r, rec) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		v, err := svc.Get(r.Context(), id)
		if err != nil {
			fail(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(v)
	}
}

// ListSessionsHandler lists the caller's sessions. With session:view-all a
// ?user_id= filter may name someone else.
//
// GET /sessions?user_id=...
func ListSessionsHandler(svc *session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := rbac.SubjectFromContext(r.Context())
		if q := r.URL.Query().Get("user_id"); q != "" && q != userID {
			if !checker.Has(rbac.RoleFromContext(r.Context()), "session:view-all") {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			userID = q
		}
		recs, err := svc.ListByUser(r.Context(), userID)
		if err != nil {
			fail(w, err)
			return
		}
		if recs == nil {
			recs = []session.Record{}
		}
		_ = json.NewEncoder(w).Encode(recs)
	}
}

// GetResultsHandler returns the composite scores of a complete session.
//
// GET /sessions/{sessionID}/results
func GetResultsHandler(svc *session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "sessionID")
		rec, err := svc.Results(r.Context(), id)
		if err != nil {
			fail(w, err)
			return
		}
		if !canViewSession(r, rec) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		_ = json.NewEncoder(w).Encode(rec)
	}
}

// operate wraps one mutation: ownership check, the op itself, then the
// refreshed snapshot as the response body.
func operate(svc *session.Service, op func(r *http.Request, id string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "sessionID")
		rec, err := svc.Record(r.Context(), id)
		if err != nil {
			fail(w, err)
			return
		}
		if !canViewSession(r, rec) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		if err := op(r, id); err != nil {
			fail(w, err)
			return
		}
		v, err := svc.Get(r.Context(), id)
		if err != nil {
			fail(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(v)
	}
}

// SelectOptionHandler records one quiz choice.
//
// POST /sessions/{sessionID}/quiz/answer  { "item": 0, "option": "Cameras" }
func SelectOptionHandler(svc *session.Service) http.HandlerFunc {
	return operate(svc, func(r *http.Request, id string) error {
		var req struct {
			Item   int    `json:"item"`
			Option string `json:"option"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return errBadJSON
		}
		return svc.SelectOption(r.Context(), id, req.Item, req.Option)
	})
}

// SubmitQuizHandler grades the quiz round.
//
// POST /sessions/{sessionID}/quiz/submit
func SubmitQuizHandler(svc *session.Service) http.HandlerFunc {
	return operate(svc, func(r *http.Request, id string) error {
		_, err := svc.SubmitQuiz(r.Context(), id)
		return err
	})
}

// PlaceTokenHandler drops a pool token onto a slot.
//
// POST /sessions/{sessionID}/matching/place  { "item": 1, "token_id": 2 }
func PlaceTokenHandler(svc *session.Service) http.HandlerFunc {
	return operate(svc, func(r *http.Request, id string) error {
		var req struct {
			Item    int `json:"item"`
			TokenID int `json:"token_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return errBadJSON
		}
		return svc.Place(r.Context(), id, req.Item, req.TokenID)
	})
}

// ClearSlotHandler returns a placed token to the pool.
//
// POST /sessions/{sessionID}/matching/clear  { "item": 1 }
func ClearSlotHandler(svc *session.Service) http.HandlerFunc {
	return operate(svc, func(r *http.Request, id string) error {
		var req struct {
			Item int `json:"item"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return errBadJSON
		}
		return svc.ClearSlot(r.Context(), id, req.Item)
	})
}

// SubmitMatchingHandler grades the matching round.
//
// POST /sessions/{sessionID}/matching/submit
func SubmitMatchingHandler(svc *session.Service) http.HandlerFunc {
	return operate(svc, func(r *http.Request, id string) error {
		_, err := svc.SubmitMatching(r.Context(), id)
		return err
	})
}

// MoveLetterHandler moves a letter tile onto a word slot.
//
// POST /sessions/{sessionID}/scramble/place  { "item": 0, "slot": 2, "letter_id": 4 }
func MoveLetterHandler(svc *session.Service) http.HandlerFunc {
	return operate(svc, func(r *http.Request, id string) error {
		var req struct {
			Item     int `json:"item"`
			Slot     int `json:"slot"`
			LetterID int `json:"letter_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return errBadJSON
		}
		return svc.MoveToTarget(r.Context(), id, req.Item, req.Slot, req.LetterID)
	})
}

// ReturnLetterHandler sends a tile back to the rack.
//
// POST /sessions/{sessionID}/scramble/return  { "item": 0, "letter_id": 4 }
func ReturnLetterHandler(svc *session.Service) http.HandlerFunc {
	return operate(svc, func(r *http.Request, id string) error {
		var req struct {
			Item     int `json:"item"`
			LetterID int `json:"letter_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return errBadJSON
		}
		return svc.MoveToSource(r.Context(), id, req.Item, req.LetterID)
	})
}

// SubmitScrambleHandler grades the scramble round.
//
// POST /sessions/{sessionID}/scramble/submit
func SubmitScrambleHandler(svc *session.Service) http.HandlerFunc {
	return operate(svc, func(r *http.Request, id string) error {
		_, err := svc.SubmitScramble(r.Context(), id)
		return err
	})
}

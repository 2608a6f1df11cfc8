package http

import (
	"errors"
	"net/http"

	"github.com/ai-heroes/storyquest/internal/activity"
	"github.com/ai-heroes/storyquest/internal/session"
)

var errBadJSON = errors.New("bad json")

// statusFor maps engine and session errors onto HTTP statuses. Anything
// unrecognized is a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadJSON):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrNotFound),
		errors.Is(err, session.ErrStoryNotFound):
		return http.StatusNotFound
	case errors.Is(err, session.ErrNoLiveState):
		return http.StatusGone
	case errors.Is(err, session.ErrNotReady),
		errors.Is(err, session.ErrIncomplete),
		errors.Is(err, activity.ErrFinalized):
		return http.StatusConflict
	case errors.Is(err, activity.ErrOutOfRange),
		errors.Is(err, activity.ErrUnknownToken),
		errors.Is(err, activity.ErrNotInPool),
		errors.Is(err, activity.ErrEmptySlot),
		errors.Is(err, activity.ErrUnknownEngine):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func fail(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), statusFor(err))
}

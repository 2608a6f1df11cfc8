package session

import (
	"context"
	"testing"
	"time"

	"github.com/ai-heroes/storyquest/internal/activity"
	"github.com/ai-heroes/storyquest/internal/catalog"
)

type fakeEvents struct {
	typs []string
	keys []string
}

func (f *fakeEvents) Append(_ context.Context, typ, key string, _ any) error {
	f.typs = append(f.typs, typ)
	f.keys = append(f.keys, key)
	return nil
}

func newTestService(t *testing.T, store Store) (*Service, *fakeEvents) {
	t.Helper()
	ev := &fakeEvents{}
	svc := NewService(catalog.Default(), store,
		WithEvents(ev),
		WithActivityOptions(activity.WithShuffle(activity.NoShuffle)),
		WithClock(func() time.Time { return time.Unix(1700000000, 0) }),
	)
	return svc, ev
}

// Plays the tibo-the-helper story in English to a perfect score. Token and
// tile IDs are predictable because the shuffle is disabled.
func playPerfectSession(t *testing.T, svc *Service, id string) {
	t.Helper()
	ctx := context.Background()

	correct := []string{"Helping at home", "Cameras", "On his charging dock"}
	for i, opt := range correct {
		if err := svc.SelectOption(ctx, id, i, opt); err != nil {
			t.Fatalf("select %d: %v", i, err)
		}
	}
	if _, err := svc.SubmitQuiz(ctx, id); err != nil {
		t.Fatalf("submit quiz: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := svc.Place(ctx, id, i, i); err != nil {
			t.Fatalf("place %d: %v", i, err)
		}
	}
	if _, err := svc.SubmitMatching(ctx, id); err != nil {
		t.Fatalf("submit matching: %v", err)
	}

	// "torbo" -> "robot", "perleh" -> "helper"
	for _, m := range []struct{ item, slot, tile int }{
		{0, 0, 2}, {0, 1, 1}, {0, 2, 3}, {0, 3, 4}, {0, 4, 0},
		{1, 0, 5}, {1, 1, 1}, {1, 2, 3}, {1, 3, 0}, {1, 4, 4}, {1, 5, 2},
	} {
		if err := svc.MoveToTarget(ctx, id, m.item, m.slot, m.tile); err != nil {
			t.Fatalf("move %+v: %v", m, err)
		}
	}
	if _, err := svc.SubmitScramble(ctx, id); err != nil {
		t.Fatalf("submit scramble: %v", err)
	}
}

func TestFullSessionFlow(t *testing.T) {
	ctx := context.Background()
	svc, ev := newTestService(t, NewInMemoryStore())

	view, err := svc.Start(ctx, "tibo-the-helper", "student-1", "en")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	id := view.Session.ID
	if view.Session.Status != StatusInProgress {
		t.Fatalf("status %q", view.Session.Status)
	}
	if len(view.Quiz.Items) != 3 || len(view.Matching.Pool) != 3 || len(view.Scramble.Items) != 2 {
		t.Fatalf("unexpected view shape: %+v", view)
	}

	if _, err := svc.Results(ctx, id); err != ErrIncomplete {
		t.Fatalf("results before completion: got %v", err)
	}
	if _, err := svc.SubmitQuiz(ctx, id); err != ErrNotReady {
		t.Fatalf("premature quiz submit: got %v", err)
	}

	playPerfectSession(t, svc, id)

	rec, err := svc.Results(ctx, id)
	if err != nil {
		t.Fatalf("results: %v", err)
	}
	if rec.Status != StatusComplete {
		t.Fatalf("status %q", rec.Status)
	}
	if rec.Combined.Correct != 8 || rec.Combined.Total != 8 || rec.Combined.Percentage != 100 {
		t.Fatalf("combined %+v", rec.Combined)
	}
	if rec.Scores.Quiz.Percentage != 100 || rec.Scores.Matching.Percentage != 100 || rec.Scores.Scramble.Percentage != 100 {
		t.Fatalf("scores %+v", rec.Scores)
	}
	if rec.CompletedAt != 1700000000 {
		t.Fatalf("completed_at %d", rec.CompletedAt)
	}
	if len(ev.typs) != 1 || ev.typs[0] != "SessionCompleted" || ev.keys[0] != id {
		t.Fatalf("events %v %v", ev.typs, ev.keys)
	}
}

func TestSubmitGatingAndFreezing(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, NewInMemoryStore())
	view, err := svc.Start(ctx, "tibo-the-helper", "student-1", "en")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	id := view.Session.ID

	// matching requires every slot placed before submit
	if _, err := svc.SubmitMatching(ctx, id); err != ErrNotReady {
		t.Fatalf("got %v, want ErrNotReady", err)
	}
	// scramble requires a full board
	if _, err := svc.SubmitScramble(ctx, id); err != ErrNotReady {
		t.Fatalf("got %v, want ErrNotReady", err)
	}

	for i, opt := range []string{"Helping at home", "Cameras", "On his charging dock"} {
		_ = svc.SelectOption(ctx, id, i, opt)
	}
	first, err := svc.SubmitQuiz(ctx, id)
	if err != nil {
		t.Fatalf("submit quiz: %v", err)
	}
	if _, err := svc.SubmitQuiz(ctx, id); err != activity.ErrFinalized {
		t.Fatalf("double submit: got %v", err)
	}
	if err := svc.SelectOption(ctx, id, 0, "Flying to Mars"); err != activity.ErrFinalized {
		t.Fatalf("select after submit: got %v", err)
	}
	v, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if v.Quiz.Score == nil || *v.Quiz.Score != first {
		t.Fatalf("quiz score changed after rejected calls")
	}
	if v.Session.Scores.Quiz != first {
		t.Fatalf("persisted quiz score %+v, want %+v", v.Session.Scores.Quiz, first)
	}
}

func TestUnknownStoryAndSession(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, NewInMemoryStore())
	if _, err := svc.Start(ctx, "no-such-story", "u", "en"); err != ErrStoryNotFound {
		t.Fatalf("got %v", err)
	}
	if err := svc.SelectOption(ctx, "no-such-session", 0, "x"); err != ErrNotFound {
		t.Fatalf("got %v", err)
	}
}

// A second service instance over the same store stands in for a restarted
// process: in-progress boards are gone, completed results survive.
func TestLiveStateDoesNotOutliveProcess(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()
	svc, _ := newTestService(t, store)
	view, err := svc.Start(ctx, "tibo-the-helper", "student-1", "en")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	id := view.Session.ID

	restarted, _ := newTestService(t, store)
	if _, err := restarted.Get(ctx, id); err != ErrNoLiveState {
		t.Fatalf("got %v, want ErrNoLiveState", err)
	}

	playPerfectSession(t, svc, id)
	v, err := restarted.Get(ctx, id)
	if err != nil {
		t.Fatalf("get after completion: %v", err)
	}
	if !v.Complete || v.Session.Combined.Percentage != 100 {
		t.Fatalf("view %+v", v)
	}
}

func TestListByUser(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, NewInMemoryStore())
	v1, _ := svc.Start(ctx, "tibo-the-helper", "student-1", "en")
	_, _ = svc.Start(ctx, "luna-the-explorer", "student-2", "fr")
	recs, err := svc.ListByUser(ctx, "student-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 1 || recs[0].ID != v1.Session.ID {
		t.Fatalf("recs %+v", recs)
	}
}

package activity

import (
	"sort"
	"testing"
)

func sampleMatch() []MatchItem {
	return []MatchItem{
		{Prompt: "Robot that cleans", CorrectAnswer: "vacuum"},
		{Prompt: "Robot that flies", CorrectAnswer: "drone"},
		{Prompt: "Robot that talks", CorrectAnswer: "assistant"},
	}
}

// poolPlusPlaced gathers the token values currently in the pool and on the
// slots, sorted, so invariants survive any permutation.
func poolPlusPlaced(e *MatchingEngine) []string {
	var vals []string
	for _, tok := range e.Pool() {
		vals = append(vals, tok.Value)
	}
	for i := 0; i < e.Len(); i++ {
		if tok, ok := e.Answer(i); ok {
			vals = append(vals, tok.Value)
		}
	}
	sort.Strings(vals)
	return vals
}

func TestMatchingPoolIsAnswerMultiset(t *testing.T) {
	e := NewMatching(sampleMatch())
	want := []string{"assistant", "drone", "vacuum"}
	got := poolPlusPlaced(e)
	if len(got) != len(want) {
		t.Fatalf("pool size %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pool %v, want %v", got, want)
		}
	}
}

func TestMatchingPoolInvariantAcrossMoves(t *testing.T) {
	e := NewMatching(sampleMatch(), WithShuffle(NoShuffle))
	want := poolPlusPlaced(e)
	check := func(step string) {
		got := poolPlusPlaced(e)
		if len(got) != len(want) {
			t.Fatalf("%s: multiset size changed: %v vs %v", step, got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("%s: multiset changed: %v vs %v", step, got, want)
			}
		}
	}

	if err := e.Place(0, 1); err != nil {
		t.Fatalf("place: %v", err)
	}
	check("place")
	if err := e.Place(0, 0); err != nil { // displaces token 1 back to pool
		t.Fatalf("replace: %v", err)
	}
	check("replace")
	if err := e.Place(1, 1); err != nil {
		t.Fatalf("place displaced token: %v", err)
	}
	check("place displaced")
	if err := e.Clear(0); err != nil {
		t.Fatalf("clear: %v", err)
	}
	check("clear")
}

func TestMatchingPlaceRejectsPlacedToken(t *testing.T) {
	e := NewMatching(sampleMatch(), WithShuffle(NoShuffle))
	if err := e.Place(0, 2); err != nil {
		t.Fatalf("place: %v", err)
	}
	// token 2 is no longer in the pool
	if err := e.Place(1, 2); err != ErrNotInPool {
		t.Fatalf("got %v, want ErrNotInPool", err)
	}
}

func TestMatchingClearEmptySlot(t *testing.T) {
	e := NewMatching(sampleMatch(), WithShuffle(NoShuffle))
	if err := e.Clear(0); err != ErrEmptySlot {
		t.Fatalf("got %v, want ErrEmptySlot", err)
	}
}

func TestMatchingGrading(t *testing.T) {
	e := NewMatching(sampleMatch(), WithShuffle(NoShuffle))
	_ = e.Place(0, 0) // vacuum -> correct
	_ = e.Place(1, 2) // assistant on "flies" -> wrong
	_ = e.Place(2, 1) // drone on "talks" -> wrong
	rec, err := e.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	want := ScoreRecord{Correct: 1, Total: 3, Percentage: 33}
	if rec != want {
		t.Fatalf("got %+v, want %+v", rec, want)
	}
}

// Duplicate answer strings: grading is by value, so swapping which instance
// lands on which duplicate slot still scores both correct. Token identity
// exists for addressing, not for grading.
func TestMatchingDuplicateAnswersScoreByValue(t *testing.T) {
	items := []MatchItem{
		{Prompt: "A", CorrectAnswer: "X"},
		{Prompt: "B", CorrectAnswer: "X"},
	}
	e := NewMatching(items, WithShuffle(NoShuffle))
	_ = e.Place(0, 1) // the instance that originated from item B
	_ = e.Place(1, 0)
	rec, err := e.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if rec.Correct != 2 || rec.Percentage != 100 {
		t.Fatalf("got %+v, want both correct", rec)
	}
}

func TestMatchingDuplicateValueOnWrongItem(t *testing.T) {
	items := []MatchItem{
		{Prompt: "A", CorrectAnswer: "X"},
		{Prompt: "B", CorrectAnswer: "Y"},
	}
	e := NewMatching(items, WithShuffle(NoShuffle))
	_ = e.Place(0, 1) // "Y" on the slot expecting "X"
	_ = e.Place(1, 0) // "X" on the slot expecting "Y"
	rec, err := e.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if rec.Correct != 0 {
		t.Fatalf("got %+v, want none correct", rec)
	}
}

func TestMatchingFrozenAfterSubmit(t *testing.T) {
	e := NewMatching(sampleMatch(), WithShuffle(NoShuffle))
	_ = e.Place(0, 0)
	first, err := e.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := e.Place(1, 1); err != ErrFinalized {
		t.Fatalf("place after submit: got %v", err)
	}
	if err := e.Clear(0); err != ErrFinalized {
		t.Fatalf("clear after submit: got %v", err)
	}
	if _, err := e.Submit(); err != ErrFinalized {
		t.Fatalf("double submit: got %v", err)
	}
	got, ok := e.Score()
	if !ok || got != first {
		t.Fatalf("score changed after rejected calls")
	}
}

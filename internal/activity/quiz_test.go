package activity

import "testing"

func sampleQuiz() []QuizItem {
	return []QuizItem{
		{Prompt: "2+2?", Options: []string{"3", "4", "5"}, CorrectOption: "4"},
		{Prompt: "Color of the sky?", Options: []string{"blue", "green"}, CorrectOption: "blue"},
	}
}

func TestQuizGrading(t *testing.T) {
	e := NewQuiz(sampleQuiz(), WithShuffle(NoShuffle))
	if err := e.Select(0, "4"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := e.Select(1, "green"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if !e.AllAnswered() {
		t.Fatalf("expected all answered")
	}
	rec, err := e.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	want := ScoreRecord{Correct: 1, Total: 2, Percentage: 50}
	if rec != want {
		t.Fatalf("got %+v, want %+v", rec, want)
	}
}

func TestQuizSingleItemFullScore(t *testing.T) {
	e := NewQuiz([]QuizItem{{Prompt: "2+2?", Options: []string{"3", "4", "5"}, CorrectOption: "4"}})
	if err := e.Select(0, "4"); err != nil {
		t.Fatalf("select: %v", err)
	}
	rec, err := e.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if rec != (ScoreRecord{Correct: 1, Total: 1, Percentage: 100}) {
		t.Fatalf("got %+v", rec)
	}
}

func TestQuizSelectOverwrites(t *testing.T) {
	e := NewQuiz(sampleQuiz(), WithShuffle(NoShuffle))
	_ = e.Select(0, "3")
	_ = e.Select(0, "4")
	got, ok := e.Answer(0)
	if !ok || got != "4" {
		t.Fatalf("answer = %q ok=%v, want 4", got, ok)
	}
}

// Grading is by value, so any display permutation of the options must yield
// the same score.
func TestQuizDisplayOrderInvariance(t *testing.T) {
	reverse := func(n int, swap func(i, j int)) {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			swap(i, j)
		}
	}
	for _, shuffle := range []ShuffleFunc{NoShuffle, reverse} {
		e := NewQuiz(sampleQuiz(), WithShuffle(shuffle))
		_ = e.Select(0, "4")
		_ = e.Select(1, "blue")
		rec, err := e.Submit()
		if err != nil {
			t.Fatalf("submit: %v", err)
		}
		if rec.Correct != 2 || rec.Percentage != 100 {
			t.Fatalf("got %+v, want full score", rec)
		}
	}
}

func TestQuizFrozenAfterSubmit(t *testing.T) {
	e := NewQuiz(sampleQuiz(), WithShuffle(NoShuffle))
	_ = e.Select(0, "4")
	first, err := e.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := e.Select(1, "blue"); err != ErrFinalized {
		t.Fatalf("select after submit: got %v, want ErrFinalized", err)
	}
	if _, err := e.Submit(); err != ErrFinalized {
		t.Fatalf("double submit: got %v, want ErrFinalized", err)
	}
	got, ok := e.Score()
	if !ok || got != first {
		t.Fatalf("score changed after rejected calls: %+v vs %+v", got, first)
	}
}

func TestQuizPartialSubmission(t *testing.T) {
	e := NewQuiz(sampleQuiz(), WithShuffle(NoShuffle))
	_ = e.Select(0, "4")
	rec, err := e.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if rec.Correct != 1 || rec.Total != 2 {
		t.Fatalf("got %+v", rec)
	}
}

func TestQuizSelectOutOfRange(t *testing.T) {
	e := NewQuiz(sampleQuiz(), WithShuffle(NoShuffle))
	if err := e.Select(5, "4"); err != ErrOutOfRange {
		t.Fatalf("got %v, want ErrOutOfRange", err)
	}
	if err := e.Select(-1, "4"); err != ErrOutOfRange {
		t.Fatalf("got %v, want ErrOutOfRange", err)
	}
}

func TestScorePercentageRounding(t *testing.T) {
	cases := []struct {
		correct, total, pct int
	}{
		{0, 0, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 2, 50},
		{3, 3, 100},
	}
	for _, c := range cases {
		rec := NewScoreRecord(c.correct, c.total)
		if rec.Percentage != c.pct {
			t.Fatalf("%d/%d: got %d, want %d", c.correct, c.total, rec.Percentage, c.pct)
		}
	}
}

package activity

// QuizItem is one multiple-choice question. Options are unique and include
// CorrectOption; content integrity is the catalog's responsibility, not
// re-checked here.
type QuizItem struct {
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	CorrectOption string   `json:"-"`
}

// QuizEngine grades a multiple-choice round. One instance belongs to one
// session and is not safe for concurrent use.
type QuizEngine struct {
	items     []QuizItem
	display   [][]string // per item, options in shuffled display order
	answers   []string   // "" means unanswered
	submitted bool
	record    ScoreRecord
}

func NewQuiz(items []QuizItem, opts ...Option) *QuizEngine {
	cfg := newConfig(opts...)
	display := make([][]string, len(items))
	for i, it := range items {
		order := append([]string(nil), it.Options...)
		cfg.shuffle(len(order), func(a, b int) { order[a], order[b] = order[b], order[a] })
		display[i] = order
	}
	return &QuizEngine{
		items:   items,
		display: display,
		answers: make([]string, len(items)),
	}
}

func (e *QuizEngine) Len() int { return len(e.items) }

func (e *QuizEngine) Prompt(item int) string {
	if item < 0 || item >= len(e.items) {
		return ""
	}
	return e.items[item].Prompt
}

// DisplayOptions returns the options of one item in display order. Grading
// is by value, so the display permutation never affects the score.
func (e *QuizEngine) DisplayOptions(item int) []string {
	if item < 0 || item >= len(e.display) {
		return nil
	}
	return append([]string(nil), e.display[item]...)
}

// Select records the chosen option for an item, overwriting any earlier
// choice. Rejected once the round is submitted.
func (e *QuizEngine) Select(item int, option string) error {
	if e.submitted {
		return ErrFinalized
	}
	if item < 0 || item >= len(e.items) {
		return ErrOutOfRange
	}
	e.answers[item] = option
	return nil
}

// Answer reports the stored choice for an item; ok is false while the item
// is unanswered.
func (e *QuizEngine) Answer(item int) (string, bool) {
	if item < 0 || item >= len(e.answers) || e.answers[item] == "" {
		return "", false
	}
	return e.answers[item], true
}

func (e *QuizEngine) AllAnswered() bool {
	for _, a := range e.answers {
		if a == "" {
			return false
		}
	}
	return true
}

func (e *QuizEngine) Submitted() bool { return e.submitted }

// Score returns the finalized record; ok is false before Submit.
func (e *QuizEngine) Score() (ScoreRecord, bool) {
	return e.record, e.submitted
}

// Submit grades whatever is selected and freezes the engine. A second call
// is rejected and never recomputes the stored record.
func (e *QuizEngine) Submit() (ScoreRecord, error) {
	if e.submitted {
		return ScoreRecord{}, ErrFinalized
	}
	correct := 0
	for i, it := range e.items {
		if e.answers[i] == it.CorrectOption {
			correct++
		}
	}
	e.submitted = true
	e.record = NewScoreRecord(correct, len(e.items))
	return e.record, nil
}

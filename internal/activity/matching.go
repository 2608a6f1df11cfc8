package activity

// MatchItem pairs a prompt with the answer that belongs to it. The multiset
// of answers across a round forms the draggable pool.
type MatchItem struct {
	Prompt        string `json:"prompt"`
	CorrectAnswer string `json:"-"`
}

// Token is one draggable answer. The ID addresses a specific instance so
// rounds with duplicate answer strings stay unambiguous.
type Token struct {
	ID    int    `json:"id"`
	Value string `json:"value"`
}

// MatchingEngine grades a matching round. Tokens move between the pool and
// per-item slots; the pool plus the placed tokens always equal the original
// answer multiset until Submit freezes the round.
type MatchingEngine struct {
	items     []MatchItem
	tokens    []Token // all tokens, indexed by ID
	pool      []int   // token IDs still unplaced, in display order
	answers   []int   // per item: token ID, or -1 for empty
	submitted bool
	record    ScoreRecord
}

func NewMatching(items []MatchItem, opts ...Option) *MatchingEngine {
	cfg := newConfig(opts...)
	e := &MatchingEngine{
		items:   items,
		tokens:  make([]Token, len(items)),
		pool:    make([]int, len(items)),
		answers: make([]int, len(items)),
	}
	for i, it := range items {
		e.tokens[i] = Token{ID: i, Value: it.CorrectAnswer}
		e.pool[i] = i
		e.answers[i] = -1
	}
	cfg.shuffle(len(e.pool), func(a, b int) { e.pool[a], e.pool[b] = e.pool[b], e.pool[a] })
	return e
}

func (e *MatchingEngine) Len() int { return len(e.items) }

func (e *MatchingEngine) Prompt(item int) string {
	if item < 0 || item >= len(e.items) {
		return ""
	}
	return e.items[item].Prompt
}

// Pool returns the unplaced tokens in display order.
func (e *MatchingEngine) Pool() []Token {
	out := make([]Token, len(e.pool))
	for i, id := range e.pool {
		out[i] = e.tokens[id]
	}
	return out
}

// Answer reports the token placed on an item; ok is false for an empty slot.
func (e *MatchingEngine) Answer(item int) (Token, bool) {
	if item < 0 || item >= len(e.answers) || e.answers[item] < 0 {
		return Token{}, false
	}
	return e.tokens[e.answers[item]], true
}

func (e *MatchingEngine) AllPlaced() bool {
	for _, a := range e.answers {
		if a < 0 {
			return false
		}
	}
	return true
}

func (e *MatchingEngine) Submitted() bool { return e.submitted }

func (e *MatchingEngine) Score() (ScoreRecord, bool) {
	return e.record, e.submitted
}

// Place moves a pool token onto an item's slot. A token already on the slot
// returns to the pool, taking the mover's spot so the pool keeps its size.
func (e *MatchingEngine) Place(item, tokenID int) error {
	if e.submitted {
		return ErrFinalized
	}
	if item < 0 || item >= len(e.items) {
		return ErrOutOfRange
	}
	pos := e.poolIndex(tokenID)
	if pos < 0 {
		return ErrNotInPool
	}
	if prev := e.answers[item]; prev >= 0 {
		e.pool[pos] = prev
	} else {
		e.pool = append(e.pool[:pos], e.pool[pos+1:]...)
	}
	e.answers[item] = tokenID
	return nil
}

// Clear returns an item's token to the pool.
func (e *MatchingEngine) Clear(item int) error {
	if e.submitted {
		return ErrFinalized
	}
	if item < 0 || item >= len(e.items) {
		return ErrOutOfRange
	}
	if e.answers[item] < 0 {
		return ErrEmptySlot
	}
	e.pool = append(e.pool, e.answers[item])
	e.answers[item] = -1
	return nil
}

// Submit grades by answer value: a slot is correct when the placed token's
// text equals that item's own answer. With duplicate answer strings either
// instance satisfies either duplicate slot; token identity only exists so
// the UI can address instances, it does not affect the score.
func (e *MatchingEngine) Submit() (ScoreRecord, error) {
	if e.submitted {
		return ScoreRecord{}, ErrFinalized
	}
	correct := 0
	for i, it := range e.items {
		if id := e.answers[i]; id >= 0 && e.tokens[id].Value == it.CorrectAnswer {
			correct++
		}
	}
	e.submitted = true
	e.record = NewScoreRecord(correct, len(e.items))
	return e.record, nil
}

func (e *MatchingEngine) poolIndex(tokenID int) int {
	for i, id := range e.pool {
		if id == tokenID {
			return i
		}
	}
	return -1
}

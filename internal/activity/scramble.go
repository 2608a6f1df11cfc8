package activity

import "strings"

// ScrambleItem is one word to reassemble. Scrambled must be a permutation of
// Solution's letters; the catalog guarantees that.
type ScrambleItem struct {
	Scrambled string `json:"scrambled"`
	Solution  string `json:"-"`
	Hint      string `json:"hint"`
}

// Letter is one draggable character tile. Duplicate characters get distinct
// IDs so each tile is individually addressable.
type Letter struct {
	ID   int    `json:"id"`
	Char string `json:"char"`
}

// Each item gets its own board: a rack of source tiles and one target slot
// per solution character.
type scrambleBoard struct {
	letters []Letter // all tiles for this item, indexed by ID
	source  []int    // tile IDs still on the rack, in display order
	target  []int    // per slot: tile ID, or -1 for empty
}

// ScrambleEngine grades a word-assembly round across all its items.
type ScrambleEngine struct {
	items     []ScrambleItem
	boards    []*scrambleBoard
	submitted bool
	record    ScoreRecord
}

func NewScramble(items []ScrambleItem, opts ...Option) *ScrambleEngine {
	cfg := newConfig(opts...)
	boards := make([]*scrambleBoard, len(items))
	for i, it := range items {
		runes := []rune(it.Scrambled)
		b := &scrambleBoard{
			letters: make([]Letter, len(runes)),
			source:  make([]int, len(runes)),
			target:  make([]int, len([]rune(it.Solution))),
		}
		for j, r := range runes {
			b.letters[j] = Letter{ID: j, Char: string(r)}
			b.source[j] = j
		}
		for j := range b.target {
			b.target[j] = -1
		}
		cfg.shuffle(len(b.source), func(a, c int) { b.source[a], b.source[c] = b.source[c], b.source[a] })
		boards[i] = b
	}
	return &ScrambleEngine{items: items, boards: boards}
}

func (e *ScrambleEngine) Len() int { return len(e.items) }

func (e *ScrambleEngine) Hint(item int) string {
	if item < 0 || item >= len(e.items) {
		return ""
	}
	return e.items[item].Hint
}

// Source returns the rack tiles of one item in display order.
func (e *ScrambleEngine) Source(item int) []Letter {
	if item < 0 || item >= len(e.boards) {
		return nil
	}
	b := e.boards[item]
	out := make([]Letter, len(b.source))
	for i, id := range b.source {
		out[i] = b.letters[id]
	}
	return out
}

// Target returns the slot contents of one item; nil entries are empty slots.
func (e *ScrambleEngine) Target(item int) []*Letter {
	if item < 0 || item >= len(e.boards) {
		return nil
	}
	b := e.boards[item]
	out := make([]*Letter, len(b.target))
	for i, id := range b.target {
		if id >= 0 {
			l := b.letters[id]
			out[i] = &l
		}
	}
	return out
}

// MoveToTarget places a tile on a slot. A tile moved from the rack evicts
// any occupant back to the rack; a tile moved from another slot swaps with
// the occupant, or simply vacates its old slot when the destination is
// empty.
func (e *ScrambleEngine) MoveToTarget(item, slot, letterID int) error {
	if e.submitted {
		return ErrFinalized
	}
	if item < 0 || item >= len(e.boards) {
		return ErrOutOfRange
	}
	b := e.boards[item]
	if slot < 0 || slot >= len(b.target) {
		return ErrOutOfRange
	}
	if pos := indexOf(b.source, letterID); pos >= 0 {
		if occupant := b.target[slot]; occupant >= 0 {
			b.source[pos] = occupant
		} else {
			b.source = append(b.source[:pos], b.source[pos+1:]...)
		}
		b.target[slot] = letterID
		return nil
	}
	if from := indexOf(b.target, letterID); from >= 0 {
		if from == slot {
			return nil
		}
		b.target[from] = b.target[slot] // -1 when the destination was empty
		b.target[slot] = letterID
		return nil
	}
	return ErrUnknownToken
}

// MoveToSource vacates a tile's slot and returns it to the rack. A tile
// already on the rack is left where it is.
func (e *ScrambleEngine) MoveToSource(item, letterID int) error {
	if e.submitted {
		return ErrFinalized
	}
	if item < 0 || item >= len(e.boards) {
		return ErrOutOfRange
	}
	b := e.boards[item]
	if indexOf(b.source, letterID) >= 0 {
		return nil
	}
	from := indexOf(b.target, letterID)
	if from < 0 {
		return ErrUnknownToken
	}
	b.target[from] = -1
	b.source = append(b.source, letterID)
	return nil
}

// CurrentAnswer concatenates the filled slots in order; empty slots
// contribute nothing, so the answer is shorter than the solution until the
// board is full.
func (e *ScrambleEngine) CurrentAnswer(item int) string {
	if item < 0 || item >= len(e.boards) {
		return ""
	}
	b := e.boards[item]
	var sb strings.Builder
	for _, id := range b.target {
		if id >= 0 {
			sb.WriteString(b.letters[id].Char)
		}
	}
	return sb.String()
}

// Filled reports whether every slot of one item holds a tile.
func (e *ScrambleEngine) Filled(item int) bool {
	if item < 0 || item >= len(e.boards) {
		return false
	}
	for _, id := range e.boards[item].target {
		if id < 0 {
			return false
		}
	}
	return true
}

func (e *ScrambleEngine) AllFilled() bool {
	for i := range e.boards {
		if !e.Filled(i) {
			return false
		}
	}
	return true
}

func (e *ScrambleEngine) Submitted() bool { return e.submitted }

func (e *ScrambleEngine) Score() (ScoreRecord, bool) {
	return e.record, e.submitted
}

// Submit scores each item by case-insensitive equality between the current
// answer and the solution, whatever is present. Filling every slot before
// submitting is the composing layer's rule, not the engine's.
func (e *ScrambleEngine) Submit() (ScoreRecord, error) {
	if e.submitted {
		return ScoreRecord{}, ErrFinalized
	}
	correct := 0
	for i, it := range e.items {
		if strings.EqualFold(e.CurrentAnswer(i), it.Solution) {
			correct++
		}
	}
	e.submitted = true
	e.record = NewScoreRecord(correct, len(e.items))
	return e.record, nil
}

func indexOf(ids []int, id int) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

package activity

// EngineTag identifies one of the three activity engines within a session.
type EngineTag string

const (
	TagQuiz     EngineTag = "quiz"
	TagMatching EngineTag = "matching"
	TagScramble EngineTag = "scramble"
)

// Tags lists the engine tags in presentation order.
var Tags = []EngineTag{TagQuiz, TagMatching, TagScramble}

// SessionScores combines the three engines' finalized records for a results
// view. Engines with zero items keep a zero record.
type SessionScores struct {
	Quiz     ScoreRecord `json:"quiz"`
	Matching ScoreRecord `json:"matching"`
	Scramble ScoreRecord `json:"scramble"`
}

// Aggregator collects ScoreRecords as engines finish. An engine with zero
// items is trivially complete and excluded from gating and totals. Once
// every non-empty engine has reported the aggregator is complete and stays
// complete; further reports are rejected.
type Aggregator struct {
	sizes    map[EngineTag]int
	reported map[EngineTag]ScoreRecord
}

func NewAggregator(quizItems, matchItems, scrambleItems int) *Aggregator {
	a := &Aggregator{
		sizes: map[EngineTag]int{
			TagQuiz:     quizItems,
			TagMatching: matchItems,
			TagScramble: scrambleItems,
		},
		reported: map[EngineTag]ScoreRecord{},
	}
	for tag, n := range a.sizes {
		if n == 0 {
			a.reported[tag] = ScoreRecord{}
		}
	}
	return a
}

// Report records one engine's finalized score. Reporting twice, or reporting
// an empty engine, is rejected without touching earlier records.
func (a *Aggregator) Report(tag EngineTag, rec ScoreRecord) error {
	if _, ok := a.sizes[tag]; !ok {
		return ErrUnknownEngine
	}
	if _, done := a.reported[tag]; done {
		return ErrFinalized
	}
	a.reported[tag] = rec
	return nil
}

// Completed reports whether one engine has finished (or was empty).
func (a *Aggregator) Completed(tag EngineTag) bool {
	_, done := a.reported[tag]
	return done
}

// Complete reports whether every non-empty engine has reported.
func (a *Aggregator) Complete() bool {
	return len(a.reported) == len(a.sizes)
}

func (a *Aggregator) Scores() SessionScores {
	return SessionScores{
		Quiz:     a.reported[TagQuiz],
		Matching: a.reported[TagMatching],
		Scramble: a.reported[TagScramble],
	}
}

// Combined sums correct and total over the engines that have items and
// derives the composite percentage with the usual rounding.
func (a *Aggregator) Combined() ScoreRecord {
	correct, total := 0, 0
	for _, rec := range a.reported {
		correct += rec.Correct
		total += rec.Total
	}
	return NewScoreRecord(correct, total)
}

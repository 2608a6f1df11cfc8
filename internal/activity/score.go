package activity

import "math"

// ScoreRecord is the immutable outcome of one engine's grading pass.
type ScoreRecord struct {
	Correct    int `json:"correct"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// NewScoreRecord rounds the percentage to the nearest integer; a zero-item
// round scores 0.
func NewScoreRecord(correct, total int) ScoreRecord {
	pct := 0
	if total > 0 {
		pct = int(math.Round(100 * float64(correct) / float64(total)))
	}
	return ScoreRecord{Correct: correct, Total: total, Percentage: pct}
}

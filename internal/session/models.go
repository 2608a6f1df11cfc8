package session

import "github.com/ai-heroes/storyquest/internal/activity"

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusComplete   Status = "complete"
)

// Record is the persisted view of one story session. Live engine state stays
// in memory for the lifetime of the process; only metadata and finalized
// scores are written to the store.
type Record struct {
	ID          string                 `json:"id"`
	StoryID     string                 `json:"story_id"`
	UserID      string                 `json:"user_id"`
	Lang        string                 `json:"lang"`
	Status      Status                 `json:"status"`
	Scores      activity.SessionScores `json:"scores"`
	Combined    activity.ScoreRecord   `json:"combined"`
	StartedAt   int64                  `json:"started_at"`
	CompletedAt int64                  `json:"completed_at,omitempty"`
}

package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ai-heroes/storyquest/internal/activity"
)

// SQLStore persists session records in sqlite or postgres; both accept the
// $n placeholder style used here.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{db: db} }

func (s *SQLStore) Create(ctx context.Context, rec Record) error {
	scores, err := json.Marshal(rec.Scores)
	if err != nil {
		return fmt.Errorf("marshal scores: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, story_id, user_id, lang, status, scores_json, correct, total, percentage, started_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		rec.ID, rec.StoryID, rec.UserID, rec.Lang, string(rec.Status), string(scores),
		rec.Combined.Correct, rec.Combined.Total, rec.Combined.Percentage, rec.StartedAt)
	return err
}

func (s *SQLStore) Get(ctx context.Context, id string) (Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, story_id, user_id, lang, status, scores_json, correct, total, percentage, started_at, COALESCE(completed_at, 0)
		 FROM sessions WHERE id=$1`, id)
	return scanRecord(row)
}

func (s *SQLStore) SaveScores(ctx context.Context, rec Record) error {
	scores, err := json.Marshal(rec.Scores)
	if err != nil {
		return fmt.Errorf("marshal scores: %w", err)
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET status=$1, scores_json=$2, correct=$3, total=$4, percentage=$5, completed_at=$6 WHERE id=$7`,
		string(rec.Status), string(scores),
		rec.Combined.Correct, rec.Combined.Total, rec.Combined.Percentage,
		nullableUnix(rec.CompletedAt), rec.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLStore) ListByUser(ctx context.Context, userID string) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, story_id, user_id, lang, status, scores_json, correct, total, percentage, started_at, COALESCE(completed_at, 0)
		 FROM sessions WHERE user_id=$1 ORDER BY started_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var rec Record
	var status, scores string
	err := row.Scan(&rec.ID, &rec.StoryID, &rec.UserID, &rec.Lang, &status, &scores,
		&rec.Combined.Correct, &rec.Combined.Total, &rec.Combined.Percentage,
		&rec.StartedAt, &rec.CompletedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	rec.Status = Status(status)
	if err := json.Unmarshal([]byte(scores), &rec.Scores); err != nil {
		rec.Scores = activity.SessionScores{}
	}
	return rec, nil
}

func nullableUnix(ts int64) any {
	if ts == 0 {
		return nil
	}
	return ts
}

package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ai-heroes/storyquest/internal/activity"
	"github.com/ai-heroes/storyquest/internal/catalog"
)

// EventAppender receives an entry when a session completes.
type EventAppender interface {
	Append(ctx context.Context, typ, key string, data any) error
}

// One live session: three engines plus the aggregator gating the results
// view. Engines run to completion per call; the service mutex serializes
// them, so the engines themselves stay lock-free.
type liveSession struct {
	quiz     *activity.QuizEngine
	matching *activity.MatchingEngine
	scramble *activity.ScrambleEngine
	agg      *activity.Aggregator
}

// Service composes the activity engines over the catalog and the store. It
// owns all live engine state; the store only ever sees immutable records.
type Service struct {
	mu      sync.Mutex
	catalog *catalog.Catalog
	store   Store
	events  EventAppender
	actOpts []activity.Option
	live    map[string]*liveSession
	now     func() time.Time
	newID   func() string
}

type ServiceOption func(*Service)

func WithEvents(ev EventAppender) ServiceOption {
	return func(s *Service) { s.events = ev }
}

// WithActivityOptions forwards options (e.g. a deterministic shuffle) to
// every engine the service creates.
func WithActivityOptions(opts ...activity.Option) ServiceOption {
	return func(s *Service) { s.actOpts = opts }
}

func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) { s.now = now }
}

func WithIDFunc(fn func() string) ServiceOption {
	return func(s *Service) { s.newID = fn }
}

func NewService(cat *catalog.Catalog, store Store, opts ...ServiceOption) *Service {
	s := &Service{
		catalog: cat,
		store:   store,
		live:    map[string]*liveSession{},
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Start creates a session for one story in one language and instantiates
// its engines from the localized content.
func (s *Service) Start(ctx context.Context, storyID, userID, lang string) (View, error) {
	story, ok := s.catalog.Get(storyID)
	if !ok {
		return View{}, ErrStoryNotFound
	}
	content, ok := story.Localized(lang)
	if !ok {
		return View{}, ErrStoryNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ls := &liveSession{
		quiz:     activity.NewQuiz(content.Quiz, s.actOpts...),
		matching: activity.NewMatching(content.Matching, s.actOpts...),
		scramble: activity.NewScramble(content.Scramble, s.actOpts...),
		agg:      activity.NewAggregator(len(content.Quiz), len(content.Matching), len(content.Scramble)),
	}
	rec := Record{
		ID:        s.newID(),
		StoryID:   storyID,
		UserID:    userID,
		Lang:      lang,
		Status:    StatusInProgress,
		StartedAt: s.now().Unix(),
	}
	if err := s.store.Create(ctx, rec); err != nil {
		return View{}, err
	}
	s.live[rec.ID] = ls
	return buildView(rec, ls), nil
}

// Get returns the session snapshot. Completed sessions survive a restart as
// record-only views; an in-progress session without live state is gone.
func (s *Service) Get(ctx context.Context, id string) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, err := s.store.Get(ctx, id)
	if err != nil {
		return View{}, err
	}
	ls, ok := s.live[id]
	if !ok {
		if rec.Status == StatusComplete {
			return buildView(rec, nil), nil
		}
		return View{}, ErrNoLiveState
	}
	return buildView(rec, ls), nil
}

// Record returns the persisted record without engine state.
func (s *Service) Record(ctx context.Context, id string) (Record, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]Record, error) {
	return s.store.ListByUser(ctx, userID)
}

// Results returns the composite scores; only complete sessions have any.
func (s *Service) Results(ctx context.Context, id string) (Record, error) {
	rec, err := s.store.Get(ctx, id)
	if err != nil {
		return Record{}, err
	}
	if rec.Status != StatusComplete {
		return Record{}, ErrIncomplete
	}
	return rec, nil
}

// --- quiz intents ---

func (s *Service) SelectOption(ctx context.Context, id string, item int, option string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ls, err := s.liveLocked(ctx, id)
	if err != nil {
		return err
	}
	return ls.quiz.Select(item, option)
}

// SubmitQuiz enforces the all-answered rule the UI shows as a disabled
// button; the engine itself would accept a partial round.
func (s *Service) SubmitQuiz(ctx context.Context, id string) (activity.ScoreRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ls, err := s.liveLocked(ctx, id)
	if err != nil {
		return activity.ScoreRecord{}, err
	}
	if ls.quiz.Len() == 0 {
		return activity.ScoreRecord{}, activity.ErrFinalized
	}
	if !ls.quiz.AllAnswered() {
		return activity.ScoreRecord{}, ErrNotReady
	}
	scored, err := ls.quiz.Submit()
	if err != nil {
		return activity.ScoreRecord{}, err
	}
	return scored, s.reportLocked(ctx, rec, ls, activity.TagQuiz, scored)
}

// --- matching intents ---

func (s *Service) Place(ctx context.Context, id string, item, tokenID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ls, err := s.liveLocked(ctx, id)
	if err != nil {
		return err
	}
	return ls.matching.Place(item, tokenID)
}

func (s *Service) ClearSlot(ctx context.Context, id string, item int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ls, err := s.liveLocked(ctx, id)
	if err != nil {
		return err
	}
	return ls.matching.Clear(item)
}

func (s *Service) SubmitMatching(ctx context.Context, id string) (activity.ScoreRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ls, err := s.liveLocked(ctx, id)
	if err != nil {
		return activity.ScoreRecord{}, err
	}
	if ls.matching.Len() == 0 {
		return activity.ScoreRecord{}, activity.ErrFinalized
	}
	if !ls.matching.AllPlaced() {
		return activity.ScoreRecord{}, ErrNotReady
	}
	scored, err := ls.matching.Submit()
	if err != nil {
		return activity.ScoreRecord{}, err
	}
	return scored, s.reportLocked(ctx, rec, ls, activity.TagMatching, scored)
}

// --- scramble intents ---

func (s *Service) MoveToTarget(ctx context.Context, id string, item, slot, letterID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ls, err := s.liveLocked(ctx, id)
	if err != nil {
		return err
	}
	return ls.scramble.MoveToTarget(item, slot, letterID)
}

func (s *Service) MoveToSource(ctx context.Context, id string, item, letterID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ls, err := s.liveLocked(ctx, id)
	if err != nil {
		return err
	}
	return ls.scramble.MoveToSource(item, letterID)
}

func (s *Service) SubmitScramble(ctx context.Context, id string) (activity.ScoreRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ls, err := s.liveLocked(ctx, id)
	if err != nil {
		return activity.ScoreRecord{}, err
	}
	if ls.scramble.Len() == 0 {
		return activity.ScoreRecord{}, activity.ErrFinalized
	}
	if !ls.scramble.AllFilled() {
		return activity.ScoreRecord{}, ErrNotReady
	}
	scored, err := ls.scramble.Submit()
	if err != nil {
		return activity.ScoreRecord{}, err
	}
	return scored, s.reportLocked(ctx, rec, ls, activity.TagScramble, scored)
}

// --- internals ---

func (s *Service) liveLocked(ctx context.Context, id string) (Record, *liveSession, error) {
	rec, err := s.store.Get(ctx, id)
	if err != nil {
		return Record{}, nil, err
	}
	ls, ok := s.live[id]
	if !ok {
		return Record{}, nil, ErrNoLiveState
	}
	return rec, ls, nil
}

// reportLocked feeds a finalized engine score into the aggregator and
// persists the updated record. Completing the last engine flips the session
// to complete and appends an event; the event log is best-effort.
func (s *Service) reportLocked(ctx context.Context, rec Record, ls *liveSession, tag activity.EngineTag, scored activity.ScoreRecord) error {
	if err := ls.agg.Report(tag, scored); err != nil {
		return err
	}
	rec.Scores = ls.agg.Scores()
	if ls.agg.Complete() {
		rec.Status = StatusComplete
		rec.Combined = ls.agg.Combined()
		rec.CompletedAt = s.now().Unix()
	}
	if err := s.store.SaveScores(ctx, rec); err != nil {
		return err
	}
	if rec.Status == StatusComplete && s.events != nil {
		_ = s.events.Append(ctx, "SessionCompleted", rec.ID, rec)
	}
	return nil
}

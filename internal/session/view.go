package session

import "github.com/ai-heroes/storyquest/internal/activity"

// View is the presentation-facing snapshot of one session: the persisted
// record plus the engines' current boards. Answer keys never appear here.
type View struct {
	Session  Record       `json:"session"`
	Quiz     QuizView     `json:"quiz"`
	Matching MatchingView `json:"matching"`
	Scramble ScrambleView `json:"scramble"`
	Complete bool         `json:"complete"`
}

type QuizItemView struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
	Answer  string   `json:"answer,omitempty"`
}

type QuizView struct {
	Items       []QuizItemView        `json:"items"`
	AllAnswered bool                  `json:"all_answered"`
	Submitted   bool                  `json:"submitted"`
	Score       *activity.ScoreRecord `json:"score,omitempty"`
}

type MatchingItemView struct {
	Prompt string          `json:"prompt"`
	Placed *activity.Token `json:"placed,omitempty"`
}

type MatchingView struct {
	Items     []MatchingItemView    `json:"items"`
	Pool      []activity.Token      `json:"pool"`
	AllPlaced bool                  `json:"all_placed"`
	Submitted bool                  `json:"submitted"`
	Score     *activity.ScoreRecord `json:"score,omitempty"`
}

type ScrambleItemView struct {
	Hint   string             `json:"hint"`
	Source []activity.Letter  `json:"source"`
	Target []*activity.Letter `json:"target"`
	Answer string             `json:"answer"`
	Filled bool               `json:"filled"`
}

type ScrambleView struct {
	Items     []ScrambleItemView    `json:"items"`
	AllFilled bool                  `json:"all_filled"`
	Submitted bool                  `json:"submitted"`
	Score     *activity.ScoreRecord `json:"score,omitempty"`
}

func buildView(rec Record, ls *liveSession) View {
	v := View{Session: rec, Complete: rec.Status == StatusComplete}
	if ls == nil {
		return v
	}

	v.Quiz = QuizView{
		AllAnswered: ls.quiz.AllAnswered(),
		Submitted:   ls.quiz.Submitted(),
	}
	for i := 0; i < ls.quiz.Len(); i++ {
		item := QuizItemView{Prompt: ls.quiz.Prompt(i), Options: ls.quiz.DisplayOptions(i)}
		if a, ok := ls.quiz.Answer(i); ok {
			item.Answer = a
		}
		v.Quiz.Items = append(v.Quiz.Items, item)
	}
	if rec, ok := ls.quiz.Score(); ok {
		v.Quiz.Score = &rec
	}

	v.Matching = MatchingView{
		Pool:      ls.matching.Pool(),
		AllPlaced: ls.matching.AllPlaced(),
		Submitted: ls.matching.Submitted(),
	}
	for i := 0; i < ls.matching.Len(); i++ {
		item := MatchingItemView{Prompt: ls.matching.Prompt(i)}
		if tok, ok := ls.matching.Answer(i); ok {
			item.Placed = &tok
		}
		v.Matching.Items = append(v.Matching.Items, item)
	}
	if rec, ok := ls.matching.Score(); ok {
		v.Matching.Score = &rec
	}

	v.Scramble = ScrambleView{
		AllFilled: ls.scramble.AllFilled(),
		Submitted: ls.scramble.Submitted(),
	}
	for i := 0; i < ls.scramble.Len(); i++ {
		v.Scramble.Items = append(v.Scramble.Items, ScrambleItemView{
			Hint:   ls.scramble.Hint(i),
			Source: ls.scramble.Source(i),
			Target: ls.scramble.Target(i),
			Answer: ls.scramble.CurrentAnswer(i),
			Filled: ls.scramble.Filled(i),
		})
	}
	if rec, ok := ls.scramble.Score(); ok {
		v.Scramble.Score = &rec
	}
	return v
}

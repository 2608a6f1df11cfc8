package catalog

import "github.com/ai-heroes/storyquest/internal/activity"

// InfoField is one line of a robot's ID card. Kept as a slice so the card
// prints in a stable order.
type InfoField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// StoryContent is a story projected down to a single language. The activity
// item types omit their answer keys from JSON, so serving content to
// students never leaks them.
type StoryContent struct {
	Title      string                  `json:"title"`
	Paragraphs []string                `json:"paragraphs"`
	Quiz       []activity.QuizItem     `json:"quiz"`
	Matching   []activity.MatchItem    `json:"matching"`
	Scramble   []activity.ScrambleItem `json:"scramble"`
}

// EducatorResources holds the educator-facing material for one language.
type EducatorResources struct {
	DiscussionPrompts []string `json:"discussion_prompts"`
}

// Story is one catalog record with per-language content. Content integrity
// (options contain the correct one, scrambled letters are a permutation of
// the solution) is validated by the catalog tests, not re-checked by the
// engines.
type Story struct {
	ID            string                       `json:"id"`
	Image         string                       `json:"image"`
	ColoringImage string                       `json:"coloring_image"`
	VideoURL      string                       `json:"video_url"`
	RobotInfo     []InfoField                  `json:"robot_info"`
	Content       map[string]StoryContent      `json:"-"`
	Resources     map[string]EducatorResources `json:"-"`
}

// Localized projects the story to one language, falling back to English the
// way the original UI strings do.
func (s Story) Localized(lang string) (StoryContent, bool) {
	if c, ok := s.Content[lang]; ok {
		return c, true
	}
	c, ok := s.Content["en"]
	return c, ok
}

// LocalizedResources mirrors Localized for the educator material.
func (s Story) LocalizedResources(lang string) (EducatorResources, bool) {
	if r, ok := s.Resources[lang]; ok {
		return r, true
	}
	r, ok := s.Resources["en"]
	return r, ok
}

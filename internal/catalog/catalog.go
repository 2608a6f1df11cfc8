package catalog

// Catalog is the read-only story table. It is populated once at startup and
// shared freely; nothing mutates it afterwards.
type Catalog struct {
	stories []Story
	byID    map[string]Story
}

func New(stories []Story) *Catalog {
	c := &Catalog{stories: stories, byID: make(map[string]Story, len(stories))}
	for _, s := range stories {
		c.byID[s.ID] = s
	}
	return c
}

// Default returns the built-in story set.
func Default() *Catalog { return New(seedStories) }

func (c *Catalog) Stories() []Story {
	return append([]Story(nil), c.stories...)
}

func (c *Catalog) Get(id string) (Story, bool) {
	s, ok := c.byID[id]
	return s, ok
}

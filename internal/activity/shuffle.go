package activity

import "math/rand"

// ShuffleFunc permutes n elements through swap, matching the contract of
// rand.Shuffle. Engines randomize pools and display orders through it so
// tests can inject a deterministic permutation.
type ShuffleFunc func(n int, swap func(i, j int))

func defaultShuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// NoShuffle keeps elements in their original order.
func NoShuffle(n int, swap func(i, j int)) {}

// Option configures an engine at construction.
type Option func(*config)

type config struct {
	shuffle ShuffleFunc
}

func newConfig(opts ...Option) config {
	cfg := config{shuffle: defaultShuffle}
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

func WithShuffle(fn ShuffleFunc) Option {
	return func(c *config) { c.shuffle = fn }
}

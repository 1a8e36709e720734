package quotes

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/0xmhha/pomodoro/pkg/logger"
)

// Rotator holds the quote list and the index of the current quote.
type Rotator struct {
	quotes   []Quote
	interval time.Duration
	category Category
	logger   logger.Logger

	mu      sync.Mutex
	rng     *rand.Rand
	current int
}

// New creates a rotator positioned on a random quote.
func New(cfg Config, log logger.Logger) (*Rotator, error) {
	list := cfg.Quotes
	if list == nil {
		list = builtin
	}
	if len(list) == 0 {
		return nil, ErrNoQuotes
	}

	if cfg.RotationInterval <= 0 {
		cfg.RotationInterval = DefaultRotationInterval
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	r := &Rotator{
		quotes:   append([]Quote(nil), list...),
		interval: cfg.RotationInterval,
		category: cfg.Category,
		logger:   log,
		rng:      cfg.Rand,
	}

	if r.category != "" && len(r.indexesOf(r.category)) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrCategoryNotFound, r.category)
	}

	r.current = r.rng.IntN(len(r.quotes))
	return r, nil
}

// Len returns the number of quotes.
func (r *Rotator) Len() int {
	return len(r.quotes)
}

// Current returns the current quote.
func (r *Rotator) Current() Quote {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.quotes[r.current]
}

// Next moves to the cyclic successor and returns it.
func (r *Rotator) Next() Quote {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.current = (r.current + 1) % len(r.quotes)
	return r.quotes[r.current]
}

// Previous moves to the cyclic predecessor and returns it.
func (r *Rotator) Previous() Quote {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.current = (r.current - 1 + len(r.quotes)) % len(r.quotes)
	return r.quotes[r.current]
}

// Random moves to a uniformly chosen quote and returns it. The choice may
// repeat the current quote.
func (r *Rotator) Random() Quote {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.current = r.rng.IntN(len(r.quotes))
	return r.quotes[r.current]
}

// ByCategory returns a uniformly chosen quote of category c. The current
// quote is left unchanged.
func (r *Rotator) ByCategory(c Category) (Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matches := r.indexesOf(c)
	if len(matches) == 0 {
		return Quote{}, fmt.Errorf("%w: %s", ErrCategoryNotFound, c)
	}
	return r.quotes[matches[r.rng.IntN(len(matches))]], nil
}

// Rotate performs one background rotation step: Random, or a random
// pick within the configured category, which then becomes current.
func (r *Rotator) Rotate() Quote {
	if r.category == "" {
		return r.Random()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	matches := r.indexesOf(r.category)
	r.current = matches[r.rng.IntN(len(matches))]
	return r.quotes[r.current]
}

// Run calls Rotate every rotation interval until ctx is done, passing each
// new quote to onRotate when it is non-nil.
func (r *Rotator) Run(ctx context.Context, onRotate func(Quote)) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			q := r.Rotate()
			r.logger.Debug("quote rotated", "author", q.Author, "category", q.Category)
			if onRotate != nil {
				onRotate(q)
			}
		}
	}
}

// Categories returns the distinct categories in list order.
func (r *Rotator) Categories() []Category {
	seen := make(map[Category]bool)
	var out []Category
	for _, q := range r.quotes {
		if !seen[q.Category] {
			seen[q.Category] = true
			out = append(out, q.Category)
		}
	}
	return out
}

func (r *Rotator) indexesOf(c Category) []int {
	var matches []int
	for i, q := range r.quotes {
		if q.Category == c {
			matches = append(matches, i)
		}
	}
	return matches
}

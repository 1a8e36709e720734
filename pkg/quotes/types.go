// Package quotes rotates through a fixed list of motivational quotes.
//
// A Rotator keeps an index into an immutable list. It moves on demand
// (Next, Previous, Random) or on a fixed interval through Run, which is
// independent of the timer engine.
//
// Example usage:
//
//	rot, err := quotes.New(quotes.Config{}, logger.Default())
//	if err != nil {
//	    return err
//	}
//
//	go rot.Run(ctx, func(q quotes.Quote) {
//	    fmt.Printf("%q - %s\n", q.Text, q.Author)
//	})
package quotes

import (
	"math/rand/v2"
	"time"
)

// DefaultRotationInterval is the period of background rotation.
const DefaultRotationInterval = 30 * time.Second

// Category classifies a quote.
type Category string

// Quote categories.
const (
	CategoryProductivity Category = "productivity"
	CategoryFocus        Category = "focus"
	CategorySuccess      Category = "success"
	CategoryMotivation   Category = "motivation"
)

// Quote is a motivational quote.
type Quote struct {
	Text     string   `json:"text"`
	Author   string   `json:"author"`
	Category Category `json:"category"`
}

// Config contains rotator options.
type Config struct {
	// Quotes overrides the built-in list. Default: Builtin().
	Quotes []Quote

	// RotationInterval is the period used by Run. Default: 30s.
	RotationInterval time.Duration

	// Category restricts background rotation to one category.
	// Empty rotates across all quotes.
	Category Category

	// Rand is the randomness source. Default: a randomly seeded PCG.
	Rand *rand.Rand
}

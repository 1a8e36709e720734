package sound

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

const bel = "\a"

// Bell rings the terminal bell by writing BEL characters.
type Bell struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBell creates a Bell writing to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// Play writes one BEL for ToneNearEnd and three for ToneComplete.
func (b *Bell) Play(tone Tone) error {
	var count int
	switch tone {
	case ToneNearEnd:
		count = 1
	case ToneComplete:
		count = 3
	default:
		return fmt.Errorf("%w: %d", ErrUnknownTone, tone)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, err := io.WriteString(b.w, strings.Repeat(bel, count)); err != nil {
		return fmt.Errorf("failed to ring bell: %w", err)
	}
	return nil
}

type noop struct{}

func (noop) Play(Tone) error { return nil }

// Noop returns a Player that plays nothing.
func Noop() Player {
	return noop{}
}

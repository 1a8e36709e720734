// Package sound plays the notification tones of the timer.
//
// The engine only depends on the Player interface. The terminal build uses
// a Bell that rings the terminal bell; tests use Noop or a recording fake.
//
// Example usage:
//
//	player := sound.NewBell(os.Stdout)
//	if err := player.Play(sound.ToneComplete); err != nil {
//	    log.Warn("failed to play tone", "error", err)
//	}
package sound

// Tone identifies a notification sound.
type Tone int

const (
	// ToneNearEnd is played during the last seconds of a countdown.
	ToneNearEnd Tone = iota

	// ToneComplete is played when a countdown finishes.
	ToneComplete
)

// String returns the tone name.
func (t Tone) String() string {
	switch t {
	case ToneNearEnd:
		return "near-end"
	case ToneComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Player plays notification tones.
type Player interface {
	// Play plays the tone. It must not block for long; the engine calls it
	// from the tick goroutine.
	Play(tone Tone) error
}

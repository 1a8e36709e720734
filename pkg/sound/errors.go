package sound

import "errors"

// ErrUnknownTone is returned when asked to play an undefined tone.
var ErrUnknownTone = errors.New("unknown tone")

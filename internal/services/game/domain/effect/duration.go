package effect

import (
	"fmt"
	"strconv"

	apperrors "github.com/louisbranch/andaria/internal/platform/errors"
)

// Flat wire values of the two sentinel durations.
const (
	InstantRaw   int32 = -1
	PermanentRaw int32 = -2
)

// ErrInvalidDuration indicates a negative duration other than the sentinels.
var ErrInvalidDuration = apperrors.New(apperrors.CodeEffectInvalidDuration, "invalid effect duration")

type durationMode uint8

const (
	modePermanent durationMode = iota
	modeInstant
	modeTimed
)

// Duration is how long an effect lasts: Instant, Permanent or a number of
// remaining turns. The zero value is Permanent.
type Duration struct {
	mode  durationMode
	turns int32
}

var (
	// Permanent effects never expire and are not shortened.
	Permanent = Duration{mode: modePermanent}
	// Instant effects apply once and are not tracked over time.
	Instant = Duration{mode: modeInstant}
)

// Turns returns a timed duration with n turns remaining.
func Turns(n int32) (Duration, error) {
	if n < 0 {
		return Duration{}, invalidDuration(n)
	}
	return Duration{mode: modeTimed, turns: n}, nil
}

// MustTurns is Turns for literal values; it panics when n is negative.
func MustTurns(n int32) Duration {
	d, err := Turns(n)
	if err != nil {
		panic(err)
	}
	return d
}

// ParseDuration maps a flat wire value back to a Duration.
func ParseDuration(raw int32) (Duration, error) {
	switch {
	case raw == InstantRaw:
		return Instant, nil
	case raw == PermanentRaw:
		return Permanent, nil
	case raw >= 0:
		return Duration{mode: modeTimed, turns: raw}, nil
	default:
		return Duration{}, invalidDuration(raw)
	}
}

func invalidDuration(raw int32) error {
	return apperrors.WithMetadata(apperrors.CodeEffectInvalidDuration,
		fmt.Sprintf("invalid effect duration %d", raw),
		map[string]string{"Duration": strconv.Itoa(int(raw))})
}

// Raw returns the flat wire value of d.
func (d Duration) Raw() int32 {
	switch d.mode {
	case modeInstant:
		return InstantRaw
	case modeTimed:
		return d.turns
	default:
		return PermanentRaw
	}
}

// IsInstant reports whether d is the Instant sentinel.
func (d Duration) IsInstant() bool { return d.mode == modeInstant }

// IsPermanent reports whether d is the Permanent sentinel.
func (d Duration) IsPermanent() bool { return d.mode == modePermanent }

// IsTimed reports whether d counts down turns.
func (d Duration) IsTimed() bool { return d.mode == modeTimed }

// Remaining returns the turns left for a timed duration.
func (d Duration) Remaining() (int32, bool) {
	if d.mode != modeTimed {
		return 0, false
	}
	return d.turns, true
}

// Expired reports whether a timed duration has no turns left.
func (d Duration) Expired() bool {
	return d.mode == modeTimed && d.turns == 0
}

// Shorten returns d with one turn fewer. Sentinels and exhausted timers are
// returned unchanged.
func (d Duration) Shorten() Duration {
	if d.mode == modeTimed && d.turns > 0 {
		d.turns--
	}
	return d
}

func (d Duration) String() string {
	switch d.mode {
	case modeInstant:
		return "instant"
	case modeTimed:
		if d.turns == 1 {
			return "1 turn"
		}
		return fmt.Sprintf("%d turns", d.turns)
	default:
		return "permanent"
	}
}

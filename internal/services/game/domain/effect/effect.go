package effect

import (
	"fmt"

	"golang.org/x/text/message"
)

// Format strings used for descriptions. They double as message catalog keys
// for localized output.
const (
	DescriptionFormat  = "%s %+d, %s"
	DurationInstantKey = "instant"
	DurationForeverKey = "permanent"
	DurationTurnsKey   = "%d turns"
)

// Effect is a single modifier applied to an actor. The zero value is a
// permanent MaxHealth effect with value 0. Effects compare with ==.
type Effect struct {
	Type     Type
	Value    int32
	Duration Duration
}

// New returns an effect with the given fields.
func New(t Type, value int32, d Duration) Effect {
	return Effect{Type: t, Value: value, Duration: d}
}

// IsInstant reports whether e applies once without being tracked.
func (e Effect) IsInstant() bool { return e.Duration.IsInstant() }

// IsPermanent reports whether e never expires.
func (e Effect) IsPermanent() bool { return e.Duration.IsPermanent() }

// Expired reports whether a timed effect has run out. Instant and Permanent
// effects never expire.
func (e Effect) Expired() bool { return e.Duration.Expired() }

// Shorten advances e by one turn. Only timed effects change.
func (e *Effect) Shorten() {
	e.Duration = e.Duration.Shorten()
}

// Validate reports whether e holds a registered type.
func (e Effect) Validate() error {
	if !e.Type.Valid() {
		return fmt.Errorf("%w: ordinal %d", ErrUnknownType, uint8(e.Type))
	}
	return nil
}

// Description returns the English display text of e.
func (e Effect) Description() string {
	return fmt.Sprintf(DescriptionFormat, e.Type.Label(), e.Value, e.Duration.String())
}

// Describe returns the display text of e rendered through p, so registered
// translations of the labels and duration strings apply.
func (e Effect) Describe(p *message.Printer) string {
	if p == nil {
		return e.Description()
	}
	var duration string
	switch {
	case e.Duration.IsInstant():
		duration = p.Sprintf(DurationInstantKey)
	case e.Duration.IsPermanent():
		duration = p.Sprintf(DurationForeverKey)
	default:
		turns, _ := e.Duration.Remaining()
		duration = p.Sprintf(DurationTurnsKey, turns)
	}
	return p.Sprintf(DescriptionFormat, p.Sprintf(e.Type.Label()), e.Value, duration)
}

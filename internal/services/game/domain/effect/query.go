package effect

import "math"

// Contains reports whether any effect in effects has type t.
func Contains(effects []Effect, t Type) bool {
	for _, e := range effects {
		if e.Type == t {
			return true
		}
	}
	return false
}

// Filter returns the effects of type t in their original order.
func Filter(effects []Effect, t Type) []Effect {
	out := []Effect{}
	for _, e := range effects {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// FilterCategory returns the effects whose type belongs to c, in order.
func FilterCategory(effects []Effect, c Category) []Effect {
	out := []Effect{}
	for _, e := range effects {
		if e.Type.Valid() && reg.typeCategory[e.Type] == c {
			out = append(out, e)
		}
	}
	return out
}

// SumValue adds the values of all effects. The total saturates at the int32
// bounds instead of wrapping.
func SumValue(effects []Effect) int32 {
	var total int64
	for _, e := range effects {
		total += int64(e.Value)
	}
	return saturate(total)
}

// SumValueOf adds the values of the effects of type t, saturating like SumValue.
func SumValueOf(effects []Effect, t Type) int32 {
	var total int64
	for _, e := range effects {
		if e.Type == t {
			total += int64(e.Value)
		}
	}
	return saturate(total)
}

func saturate(v int64) int32 {
	switch {
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	default:
		return int32(v)
	}
}

// Tick advances every effect by one turn and splits the result into the
// effects still active and those that expired on this tick or earlier.
// Instant and Permanent effects always stay active. effects is not modified.
func Tick(effects []Effect) (active, expired []Effect) {
	active = make([]Effect, 0, len(effects))
	for _, e := range effects {
		e.Shorten()
		if e.Expired() {
			expired = append(expired, e)
			continue
		}
		active = append(active, e)
	}
	return active, expired
}

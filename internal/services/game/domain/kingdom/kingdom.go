// Package kingdom identifies the factions that track reputation.
package kingdom

import (
	"fmt"
	"strings"

	apperrors "github.com/louisbranch/andaria/internal/platform/errors"
)

// Kingdom is a faction identifier. Ordinals are part of the wire format.
type Kingdom uint8

const (
	Humans Kingdom = iota
	Dwarfs
	Elves
	Halflings

	count = int(Halflings) + 1
)

// ErrUnknown indicates a kingdom label or ordinal outside the known set.
var ErrUnknown = apperrors.New(apperrors.CodeKingdomUnknown, "unknown kingdom")

var labels = [count]string{
	Humans:    "Humans",
	Dwarfs:    "Dwarfs",
	Elves:     "Elves",
	Halflings: "Halflings",
}

var byLabel = func() map[string]Kingdom {
	out := make(map[string]Kingdom, count)
	for k, label := range labels {
		out[strings.ToLower(label)] = Kingdom(k)
	}
	return out
}()

// All returns every kingdom in ordinal order.
func All() []Kingdom {
	out := make([]Kingdom, count)
	for i := range out {
		out[i] = Kingdom(i)
	}
	return out
}

// Valid reports whether k is a known kingdom.
func (k Kingdom) Valid() bool {
	return int(k) < count
}

// Label returns the display label of k.
func (k Kingdom) Label() string {
	if !k.Valid() {
		return fmt.Sprintf("Kingdom(%d)", uint8(k))
	}
	return labels[k]
}

func (k Kingdom) String() string {
	return k.Label()
}

// Parse returns the kingdom for a label, ignoring case and surrounding space.
func Parse(label string) (Kingdom, error) {
	k, ok := byLabel[strings.ToLower(strings.TrimSpace(label))]
	if !ok {
		return 0, apperrors.WithMetadata(apperrors.CodeKingdomUnknown,
			fmt.Sprintf("unknown kingdom %q", label),
			map[string]string{"Label": label})
	}
	return k, nil
}

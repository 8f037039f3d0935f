package prizeimporter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/louisbranch/andaria/internal/services/game/domain/effect"
)

// catalogPayload is one prize catalog file.
type catalogPayload struct {
	Version int           `json:"version"`
	Source  string        `json:"source"`
	Items   []prizeRecord `json:"items"`
}

type prizeRecord struct {
	ID          string          `json:"id"`
	Effects     []effectRecord  `json:"effects"`
	Experience  uint16          `json:"experience"`
	Gold        uint16          `json:"gold"`
	Items       []uint16        `json:"items"`
	Reputations map[string]int8 `json:"reputations"`
}

type effectRecord struct {
	Type     string        `json:"type"`
	Value    int32         `json:"value"`
	Duration durationValue `json:"duration"`
}

// durationValue accepts "instant", "permanent" or a non-negative turn count.
// A missing duration is permanent.
type durationValue struct {
	effect.Duration
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *durationValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		d.Duration = effect.Permanent
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var word string
		if err := json.Unmarshal(data, &word); err != nil {
			return err
		}
		switch strings.ToLower(strings.TrimSpace(word)) {
		case effect.DurationInstantKey:
			d.Duration = effect.Instant
		case effect.DurationForeverKey:
			d.Duration = effect.Permanent
		default:
			return fmt.Errorf("%w: %q", effect.ErrInvalidDuration, word)
		}
		return nil
	}

	var turns int32
	if err := json.Unmarshal(data, &turns); err != nil {
		return fmt.Errorf("%w: %s", effect.ErrInvalidDuration, data)
	}
	parsed, err := effect.Turns(turns)
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

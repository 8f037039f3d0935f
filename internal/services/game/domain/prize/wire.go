package prize

import (
	"fmt"
	"maps"
	"math"
	"slices"

	apperrors "github.com/louisbranch/andaria/internal/platform/errors"
	"github.com/louisbranch/andaria/internal/services/game/domain/effect"
	"github.com/louisbranch/andaria/internal/services/game/domain/kingdom"
	"google.golang.org/protobuf/encoding/protowire"
)

// Wire layout, in order:
//
//	effects      varint count, then count encoded effects
//	experience   varint (uint16 range)
//	items        varint count, then count varint ids (uint16 range)
//	gold         varint (uint16 range)
//	reputations  varint count, then (kingdom byte, int8 byte) pairs in kingdom order

const reputationPairSize = 2

var (
	// ErrLengthExceeded indicates a count larger than the remaining input allows.
	ErrLengthExceeded = apperrors.New(apperrors.CodeWireLengthExceeded, "sequence length exceeds input")
	// ErrValueOutOfRange indicates a decoded number outside its field's range.
	ErrValueOutOfRange = apperrors.New(apperrors.CodeWireValueOutOfRange, "value out of range")
	// ErrDuplicateKingdom indicates a reputation entry repeated for one kingdom.
	ErrDuplicateKingdom = apperrors.New(apperrors.CodeWireDuplicateKey, "duplicate kingdom in reputations")
)

// AppendBinary appends the encoding of p to b. On error b is returned as
// given.
func (p Prize) AppendBinary(b []byte) ([]byte, error) {
	var err error
	out := protowire.AppendVarint(b, uint64(len(p.effects)))
	for i, e := range p.effects {
		if out, err = e.AppendBinary(out); err != nil {
			return b, fmt.Errorf("effect %d: %w", i, err)
		}
	}
	out = protowire.AppendVarint(out, uint64(p.experience))
	out = protowire.AppendVarint(out, uint64(len(p.items)))
	for _, id := range p.items {
		out = protowire.AppendVarint(out, uint64(id))
	}
	out = protowire.AppendVarint(out, uint64(p.gold))

	kingdoms := slices.Sorted(maps.Keys(p.reputations))
	out = protowire.AppendVarint(out, uint64(len(kingdoms)))
	for _, k := range kingdoms {
		if !k.Valid() {
			return b, fmt.Errorf("reputation: %w: ordinal %d", kingdom.ErrUnknown, uint8(k))
		}
		out = append(out, byte(k), byte(p.reputations[k]))
	}
	return out, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (p Prize) MarshalBinary() ([]byte, error) {
	return p.AppendBinary(nil)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. data must hold
// exactly one prize. On error p is left unchanged.
func (p *Prize) UnmarshalBinary(data []byte) error {
	decoded, n, err := ConsumePrize(data)
	if err != nil {
		return err
	}
	if n != len(data) {
		return fmt.Errorf("%w: %d bytes after prize", effect.ErrTrailingBytes, len(data)-n)
	}
	*p = decoded
	return nil
}

// ConsumePrize decodes one prize from the front of b and reports the number of
// bytes read.
func ConsumePrize(b []byte) (Prize, int, error) {
	var p Prize
	n := 0

	count, m, err := consumeCount(b[n:], effect.EncodedSize, "effects")
	if err != nil {
		return Prize{}, 0, err
	}
	n += m
	if count > 0 {
		p.effects = make([]effect.Effect, 0, count)
	}
	for i := 0; i < count; i++ {
		e, m, err := effect.ConsumeEffect(b[n:])
		if err != nil {
			return Prize{}, 0, fmt.Errorf("effect %d: %w", i, err)
		}
		n += m
		p.effects = append(p.effects, e)
	}

	if p.experience, m, err = consumeUint16(b[n:], "experience"); err != nil {
		return Prize{}, 0, err
	}
	n += m

	if count, m, err = consumeCount(b[n:], 1, "items"); err != nil {
		return Prize{}, 0, err
	}
	n += m
	if count > 0 {
		p.items = make([]ItemID, 0, count)
	}
	for i := 0; i < count; i++ {
		id, m, err := consumeUint16(b[n:], "item id")
		if err != nil {
			return Prize{}, 0, err
		}
		n += m
		p.items = append(p.items, ItemID(id))
	}

	if p.gold, m, err = consumeUint16(b[n:], "gold"); err != nil {
		return Prize{}, 0, err
	}
	n += m

	if count, m, err = consumeCount(b[n:], reputationPairSize, "reputations"); err != nil {
		return Prize{}, 0, err
	}
	n += m
	if count > 0 {
		p.reputations = make(map[kingdom.Kingdom]int8, count)
	}
	for i := 0; i < count; i++ {
		k := kingdom.Kingdom(b[n])
		if !k.Valid() {
			return Prize{}, 0, fmt.Errorf("reputation %d: %w: ordinal %d", i, kingdom.ErrUnknown, b[n])
		}
		if _, dup := p.reputations[k]; dup {
			return Prize{}, 0, fmt.Errorf("%w: %s", ErrDuplicateKingdom, k)
		}
		p.reputations[k] = int8(b[n+1])
		n += reputationPairSize
	}
	return p, n, nil
}

// consumeCount reads a sequence length and checks that count elements of at
// least minSize bytes fit in the rest of b.
func consumeCount(b []byte, minSize int, what string) (int, int, error) {
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, 0, effect.Truncated(what + " count")
	}
	if v > uint64(len(b)-n)/uint64(minSize) {
		return 0, 0, fmt.Errorf("%w: %s count %d", ErrLengthExceeded, what, v)
	}
	return int(v), n, nil
}

func consumeUint16(b []byte, what string) (uint16, int, error) {
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, 0, effect.Truncated(what)
	}
	if v > math.MaxUint16 {
		return 0, 0, fmt.Errorf("%w: %s %d", ErrValueOutOfRange, what, v)
	}
	return uint16(v), n, nil
}

package effect

import (
	"fmt"

	apperrors "github.com/louisbranch/andaria/internal/platform/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

// EncodedSize is the length of one encoded Effect.
const EncodedSize = 1 + 4 + 4

var (
	// ErrTruncated indicates input that ends before a value is complete.
	ErrTruncated = apperrors.New(apperrors.CodeWireTruncated, "truncated input")
	// ErrTrailingBytes indicates input with bytes left after a complete value.
	ErrTrailingBytes = apperrors.New(apperrors.CodeWireTrailingBytes, "trailing bytes after value")
)

// Truncated returns a truncation error naming what was being decoded.
func Truncated(what string) error {
	return apperrors.WithMetadata(apperrors.CodeWireTruncated,
		fmt.Sprintf("truncated input reading %s", what),
		map[string]string{"Field": what})
}

// AppendBinary appends the one-byte ordinal of c.
func (c Category) AppendBinary(b []byte) ([]byte, error) {
	if !c.Valid() {
		return b, fmt.Errorf("%w: ordinal %d", ErrUnknownCategory, uint8(c))
	}
	return append(b, byte(c)), nil
}

// ConsumeCategory decodes a category ordinal from the front of b and reports
// the number of bytes read.
func ConsumeCategory(b []byte) (Category, int, error) {
	if len(b) < 1 {
		return 0, 0, Truncated("category")
	}
	c := Category(b[0])
	if !c.Valid() {
		return 0, 0, fmt.Errorf("%w: ordinal %d", ErrUnknownCategory, b[0])
	}
	return c, 1, nil
}

// AppendBinary appends the one-byte ordinal of t.
func (t Type) AppendBinary(b []byte) ([]byte, error) {
	if !t.Valid() {
		return b, fmt.Errorf("%w: ordinal %d", ErrUnknownType, uint8(t))
	}
	return append(b, byte(t)), nil
}

// ConsumeType decodes a type ordinal from the front of b.
func ConsumeType(b []byte) (Type, int, error) {
	if len(b) < 1 {
		return 0, 0, Truncated("effect type")
	}
	t := Type(b[0])
	if !t.Valid() {
		return 0, 0, fmt.Errorf("%w: ordinal %d", ErrUnknownType, b[0])
	}
	return t, 1, nil
}

// AppendBinary appends the encoding of e to b.
func (e Effect) AppendBinary(b []byte) ([]byte, error) {
	b, err := e.Type.AppendBinary(b)
	if err != nil {
		return b, err
	}
	b = protowire.AppendFixed32(b, uint32(e.Value))
	b = protowire.AppendFixed32(b, uint32(e.Duration.Raw()))
	return b, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (e Effect) MarshalBinary() ([]byte, error) {
	b, err := e.AppendBinary(make([]byte, 0, EncodedSize))
	if err != nil {
		return nil, err
	}
	return b, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. data must hold
// exactly one effect. On error e is left unchanged.
func (e *Effect) UnmarshalBinary(data []byte) error {
	decoded, n, err := ConsumeEffect(data)
	if err != nil {
		return err
	}
	if n != len(data) {
		return fmt.Errorf("%w: %d bytes after effect", ErrTrailingBytes, len(data)-n)
	}
	*e = decoded
	return nil
}

// ConsumeEffect decodes one effect from the front of b and reports the number
// of bytes read.
func ConsumeEffect(b []byte) (Effect, int, error) {
	t, n, err := ConsumeType(b)
	if err != nil {
		return Effect{}, 0, err
	}
	value, m := protowire.ConsumeFixed32(b[n:])
	if m < 0 {
		return Effect{}, 0, Truncated("effect value")
	}
	n += m
	raw, m := protowire.ConsumeFixed32(b[n:])
	if m < 0 {
		return Effect{}, 0, Truncated("effect duration")
	}
	n += m
	d, err := ParseDuration(int32(raw))
	if err != nil {
		return Effect{}, 0, err
	}
	return Effect{Type: t, Value: int32(value), Duration: d}, n, nil
}

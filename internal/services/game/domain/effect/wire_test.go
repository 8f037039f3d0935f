package effect

import (
	"bytes"
	"errors"
	"testing"
)

func TestEffectRoundTrip(t *testing.T) {
	tests := []Effect{
		New(TypeStun, 0, MustTurns(2)),
		New(TypeMaxHealth, 5, Permanent),
		New(TypeHeal, -12, Instant),
		New(TypeExperienceBonus, 1<<30, MustTurns(0)),
		{},
	}
	for _, want := range tests {
		data, err := want.MarshalBinary()
		if err != nil {
			t.Fatalf("marshal %v: %v", want, err)
		}
		if len(data) != EncodedSize {
			t.Fatalf("encoded length = %d, want %d", len(data), EncodedSize)
		}
		var got Effect
		if err := got.UnmarshalBinary(data); err != nil {
			t.Fatalf("unmarshal %v: %v", want, err)
		}
		if got != want {
			t.Fatalf("round trip = %v, want %v", got, want)
		}
	}
}

func TestEffectEncodingLayout(t *testing.T) {
	data, err := New(TypeStun, 0, MustTurns(2)).MarshalBinary()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := []byte{16, 0, 0, 0, 0, 2, 0, 0, 0}
	if !bytes.Equal(data, want) {
		t.Fatalf("encoding = %v, want %v", data, want)
	}

	data, err = New(TypeMaxHealth, -1, Permanent).MarshalBinary()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want = []byte{0, 0xff, 0xff, 0xff, 0xff, 0xfe, 0xff, 0xff, 0xff}
	if !bytes.Equal(data, want) {
		t.Fatalf("encoding = %v, want %v", data, want)
	}
}

func TestUnmarshalRejectsUnknownType(t *testing.T) {
	data := []byte{17, 1, 0, 0, 0, 0xfe, 0xff, 0xff, 0xff}
	e := New(TypeHeal, 9, Instant)
	err := e.UnmarshalBinary(data)
	if !errors.Is(err, ErrUnknownType) {
		t.Fatalf("error = %v, want %v", err, ErrUnknownType)
	}
	if e != New(TypeHeal, 9, Instant) {
		t.Fatalf("failed decode modified target: %v", e)
	}
}

func TestUnmarshalRejectsInvalidDuration(t *testing.T) {
	data := []byte{3, 1, 0, 0, 0, 0xfd, 0xff, 0xff, 0xff}
	var e Effect
	if err := e.UnmarshalBinary(data); !errors.Is(err, ErrInvalidDuration) {
		t.Fatalf("error = %v, want %v", err, ErrInvalidDuration)
	}
}

func TestUnmarshalRejectsTruncatedInput(t *testing.T) {
	full, err := New(TypeDeflect, 4, MustTurns(3)).MarshalBinary()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for n := 0; n < len(full); n++ {
		var e Effect
		if err := e.UnmarshalBinary(full[:n]); !errors.Is(err, ErrTruncated) {
			t.Fatalf("length %d: error = %v, want %v", n, err, ErrTruncated)
		}
	}
}

func TestUnmarshalRejectsTrailingBytes(t *testing.T) {
	data, err := New(TypeDeflect, 4, MustTurns(3)).MarshalBinary()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var e Effect
	if err := e.UnmarshalBinary(append(data, 0)); !errors.Is(err, ErrTrailingBytes) {
		t.Fatalf("error = %v, want %v", err, ErrTrailingBytes)
	}
}

func TestMarshalRejectsUnknownType(t *testing.T) {
	data, err := New(Type(17), 0, Permanent).MarshalBinary()
	if !errors.Is(err, ErrUnknownType) {
		t.Fatalf("error = %v, want %v", err, ErrUnknownType)
	}
	if data != nil {
		t.Fatalf("data = %x, want nil", data)
	}
}

func TestConsumeEffectReportsLength(t *testing.T) {
	var buf []byte
	var err error
	first := New(TypeVamp, 3, Instant)
	second := New(TypeGoldBonus, 20, Permanent)
	if buf, err = first.AppendBinary(buf); err != nil {
		t.Fatalf("append: %v", err)
	}
	if buf, err = second.AppendBinary(buf); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, n, err := ConsumeEffect(buf)
	if err != nil || got != first || n != EncodedSize {
		t.Fatalf("first = %v, %d, %v", got, n, err)
	}
	got, n, err = ConsumeEffect(buf[n:])
	if err != nil || got != second || n != EncodedSize {
		t.Fatalf("second = %v, %d, %v", got, n, err)
	}
}

func TestCategoryWire(t *testing.T) {
	for _, c := range Categories() {
		b, err := c.AppendBinary(nil)
		if err != nil {
			t.Fatalf("append %v: %v", c, err)
		}
		got, n, err := ConsumeCategory(b)
		if err != nil || got != c || n != 1 {
			t.Fatalf("consume %v = %v, %d, %v", c, got, n, err)
		}
	}
	if _, _, err := ConsumeCategory([]byte{5}); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("error = %v, want %v", err, ErrUnknownCategory)
	}
	if _, _, err := ConsumeCategory(nil); !errors.Is(err, ErrTruncated) {
		t.Fatalf("error = %v, want %v", err, ErrTruncated)
	}
	if _, err := Category(5).AppendBinary(nil); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("error = %v, want %v", err, ErrUnknownCategory)
	}
}

package broadvoice

import (
	"errors"
	"testing"
)

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in   string
		want Variant
		err  error
	}{
		{"bv16", BV16, nil},
		{" BV32 ", BV32, nil},
		{"nb", BV16, nil},
		{"wideband", BV32, nil},
		{"g729", 0, ErrUnknownVariant},
	}

	for _, tt := range tests {
		got, err := ParseVariant(tt.in)
		if !errors.Is(err, tt.err) || got != tt.want {
			t.Fatalf("ParseVariant(%q)=(%s, %v), want (%s, %v)", tt.in, got, err, tt.want, tt.err)
		}
	}
}

func TestVariantGeometry(t *testing.T) {
	tests := []struct {
		v                  Variant
		rate, size, packed int
	}{
		{BV16, 8000, 40, 10},
		{BV32, 16000, 80, 20},
		{Variant(3), 0, 0, 0},
	}

	for _, tt := range tests {
		if tt.v.SampleRate() != tt.rate || tt.v.FrameSize() != tt.size || tt.v.FrameBytes() != tt.packed {
			t.Fatalf("%s: rate=%d size=%d bytes=%d", tt.v, tt.v.SampleRate(), tt.v.FrameSize(), tt.v.FrameBytes())
		}
	}
}

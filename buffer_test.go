package broadvoice

import (
	"errors"
	"testing"

	"github.com/go-audio/audio"
)

func TestEncodeBufferPadsLastFrame(t *testing.T) {
	enc, _ := NewEncoder(BV16)

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: 8000},
		Data:           make([]int, 2*40+7),
		SourceBitDepth: 16,
	}

	packed, err := enc.EncodeBuffer(buf)
	if err != nil {
		t.Fatal(err)
	}

	if len(packed) != 3*BV16.FrameBytes() {
		t.Fatalf("packed %d bytes, want %d", len(packed), 3*BV16.FrameBytes())
	}

	dec, _ := NewDecoder(BV16)
	out, err := dec.DecodeBuffer(packed)
	if err != nil {
		t.Fatal(err)
	}

	if len(out.Data) != 3*40 || out.Format.SampleRate != 8000 || out.Format.NumChannels != 1 || out.SourceBitDepth != 16 {
		t.Fatalf("unexpected buffer: %d samples, format %+v, depth %d", len(out.Data), out.Format, out.SourceBitDepth)
	}
}

func TestEncodeBufferFormatErrors(t *testing.T) {
	enc, _ := NewEncoder(BV32)

	tests := []struct {
		name string
		buf  *audio.IntBuffer
		want error
	}{
		{"nil", nil, ErrChannels},
		{"stereo", &audio.IntBuffer{Format: &audio.Format{NumChannels: 2, SampleRate: 16000}}, ErrChannels},
		{"wrong rate", &audio.IntBuffer{Format: &audio.Format{NumChannels: 1, SampleRate: 8000}}, ErrSampleRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := enc.EncodeBuffer(tt.buf); !errors.Is(err, tt.want) {
				t.Fatalf("err=%v, want %v", err, tt.want)
			}
		})
	}
}

func TestEncodeBufferRescalesBitDepth(t *testing.T) {
	data16 := make([]int, 400)
	data24 := make([]int, 400)
	for i, s := range tone(BV16, 400) {
		data16[i] = int(s)
		data24[i] = int(s) << 8
	}

	a, _ := NewEncoder(BV16)
	b, _ := NewEncoder(BV16)

	out16, err := a.EncodeBuffer(&audio.IntBuffer{Format: &audio.Format{NumChannels: 1, SampleRate: 8000}, Data: data16, SourceBitDepth: 16})
	if err != nil {
		t.Fatal(err)
	}

	out24, err := b.EncodeBuffer(&audio.IntBuffer{Format: &audio.Format{NumChannels: 1, SampleRate: 8000}, Data: data24, SourceBitDepth: 24})
	if err != nil {
		t.Fatal(err)
	}

	if string(out16) != string(out24) {
		t.Fatal("24-bit input was not rescaled to 16 bits")
	}
}

func TestRescale16(t *testing.T) {
	tests := []struct {
		v, shift int
		want     int16
	}{
		{1000, 0, 1000},
		{1 << 20, 8, 4096},
		{100, -8, 25600},
		{200, -8, 32767},
		{-200, -8, -32768},
	}

	for _, tt := range tests {
		if got := rescale16(tt.v, tt.shift); got != tt.want {
			t.Fatalf("rescale16(%d, %d)=%d, want %d", tt.v, tt.shift, got, tt.want)
		}
	}
}

func TestBufferAfterClose(t *testing.T) {
	enc, _ := NewEncoder(BV16)
	enc.Close()

	if _, err := enc.EncodeBuffer(pcmBuffer(make([]int16, 40), 8000)); !errors.Is(err, ErrClosed) {
		t.Fatalf("err=%v, want ErrClosed", err)
	}

	dec, _ := NewDecoder(BV16)
	dec.Close()

	if _, err := dec.DecodeBuffer(make([]byte, 10)); !errors.Is(err, ErrClosed) {
		t.Fatalf("err=%v, want ErrClosed", err)
	}
}

package broadvoice

import (
	"testing"
	"time"
)

func TestFrameDuration(t *testing.T) {
	tests := []struct {
		v        Variant
		frame    time.Duration
		frames   int
		duration time.Duration
	}{
		{BV16, 5 * time.Millisecond, 200, 50 * time.Millisecond},
		{BV32, 5 * time.Millisecond, 200, 25 * time.Millisecond},
		{Variant(0), 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.v.String(), func(t *testing.T) {
			if got := tt.v.FrameDuration(); got != tt.frame {
				t.Fatalf("FrameDuration=%s, want %s", got, tt.frame)
			}

			if got := tt.v.FramesForDuration(time.Second); got != tt.frames {
				t.Fatalf("FramesForDuration(1s)=%d, want %d", got, tt.frames)
			}

			// 100 bytes is ten BV16 frames or five BV32 frames
			if got := tt.v.Duration(100); got != tt.duration {
				t.Fatalf("Duration(100)=%s, want %s", got, tt.duration)
			}
		})
	}
}

func TestFramesForDurationRoundsUp(t *testing.T) {
	if got := BV16.FramesForDuration(5*time.Millisecond + time.Microsecond*125); got != 2 {
		t.Fatalf("FramesForDuration=%d, want 2", got)
	}

	if got := BV32.Duration(BV32.FrameBytes() + 1); got != 5*time.Millisecond {
		t.Fatalf("Duration of a partial frame=%s, want 5ms", got)
	}
}

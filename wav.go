package broadvoice

import (
	"math"
	"time"
)

// FrameDuration returns the playback time of one frame.
func (v Variant) FrameDuration() time.Duration {
	return time.Duration(v.FrameSize()) * sampleDuration(v.SampleRate())
}

// FramesForDuration returns the number of whole frames covering dur.
func (v Variant) FramesForDuration(dur time.Duration) int {
	fs := v.FrameSize()
	if fs == 0 {
		return 0
	}

	n := samplesNumFromDuration(dur, v.SampleRate())

	return (n + fs - 1) / fs
}

// Duration returns the playback time of a packed bitstream of n bytes.
func (v Variant) Duration(n int) time.Duration {
	fb := v.FrameBytes()
	if fb == 0 {
		return 0
	}

	return time.Duration(n/fb) * v.FrameDuration()
}

func samplesNumFromDuration(dur time.Duration, sampleRate int) int {
	sd := sampleDuration(sampleRate)
	if sd == 0 {
		return 0
	}

	return int(math.Floor(float64(dur / sd)))
}

func sampleDuration(sampleRate int) time.Duration {
	if sampleRate == 0 {
		return 0
	}

	return time.Second / time.Duration(math.Abs(float64(sampleRate)))
}

package broadvoice

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	"github.com/go-audio/audio"
)

// WriteAIFF writes a mono buffer as a 16-bit AIFF file.
func WriteAIFF(w io.WriteSeeker, buf *audio.IntBuffer) error {
	if buf == nil || buf.Format == nil {
		return fmt.Errorf("%w: missing format", ErrChannels)
	}

	if buf.Format.NumChannels != 1 {
		return fmt.Errorf("%w: got %d channels", ErrChannels, buf.Format.NumChannels)
	}

	out := buf
	if buf.SourceBitDepth != 16 {
		shift := 0
		if buf.SourceBitDepth > 0 {
			shift = buf.SourceBitDepth - 16
		}

		out = &audio.IntBuffer{Format: buf.Format, Data: make([]int, len(buf.Data)), SourceBitDepth: 16}
		for i, v := range buf.Data {
			out.Data[i] = int(rescale16(v, shift))
		}
	}

	encoder := aiff.NewEncoder(w, buf.Format.SampleRate, 16, 1)
	if err := encoder.Write(out); err != nil {
		return fmt.Errorf("failed to write AIFF data: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to finalize AIFF file: %w", err)
	}

	return nil
}

package broadvoice

import (
	"fmt"

	"github.com/go-audio/audio"
)

// EncodeBuffer encodes a mono buffer at the codec sample rate. The last
// partial frame is padded with silence. Samples of other bit depths are
// rescaled to 16 bits.
func (e *Encoder) EncodeBuffer(buf *audio.IntBuffer) ([]byte, error) {
	if e.closed {
		return nil, ErrClosed
	}

	if err := checkFormat(e.p, buf); err != nil {
		return nil, err
	}

	p := e.p
	frames := (len(buf.Data) + p.frameSize - 1) / p.frameSize
	out := make([]byte, frames*p.frameBytes)
	pcm := make([]int16, p.frameSize)

	shift := 0
	if buf.SourceBitDepth > 0 {
		shift = buf.SourceBitDepth - 16
	}

	for i := range frames {
		clear(pcm)
		chunk := buf.Data[i*p.frameSize : min(len(buf.Data), (i+1)*p.frameSize)]
		for n, v := range chunk {
			pcm[n] = rescale16(v, shift)
		}

		if _, err := e.Encode(out[i*p.frameBytes:], pcm); err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
	}

	return out, nil
}

// DecodeBuffer decodes every complete frame of packed into a 16-bit mono
// buffer.
func (d *Decoder) DecodeBuffer(packed []byte) (*audio.IntBuffer, error) {
	if d.closed {
		return nil, ErrClosed
	}

	p := d.p
	pcm := make([]int16, len(packed)/p.frameBytes*p.frameSize)

	n, err := d.Decode(pcm, packed)
	if err != nil {
		return nil, err
	}

	return pcmBuffer(pcm[:n], p.sampleRate), nil
}

func checkFormat(p *codecParams, buf *audio.IntBuffer) error {
	if buf == nil || buf.Format == nil {
		return fmt.Errorf("%w: missing format", ErrChannels)
	}

	if buf.Format.NumChannels != 1 {
		return fmt.Errorf("%w: got %d channels", ErrChannels, buf.Format.NumChannels)
	}

	if buf.Format.SampleRate != p.sampleRate {
		return fmt.Errorf("%w: got %d Hz, %s needs %d Hz", ErrSampleRate, buf.Format.SampleRate, p.variant, p.sampleRate)
	}

	return nil
}

// pcmBuffer wraps 16-bit samples in an audio.IntBuffer.
func pcmBuffer(pcm []int16, sampleRate int) *audio.IntBuffer {
	data := make([]int, len(pcm))
	for i, v := range pcm {
		data[i] = int(v)
	}

	return &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
}

func rescale16(v, shift int) int16 {
	switch {
	case shift > 0:
		v >>= shift
	case shift < 0:
		v <<= -shift
	}

	return int16(max(-32768, min(32767, v)))
}

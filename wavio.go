package broadvoice

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/riff"
)

const wavFormatPCM = 1

// ReadWAV reads a mono or multichannel 16-bit PCM WAV stream. Chunks other
// than fmt and data are skipped.
func ReadWAV(r io.Reader) (*audio.IntBuffer, error) {
	parser := riff.New(r)
	if err := parser.ParseHeaders(); err != nil {
		return nil, fmt.Errorf("failed to read RIFF header: %w", err)
	}

	if parser.Format != riff.WavFormatID {
		return nil, fmt.Errorf("%s - %w", parser.Format, riff.ErrFmtNotSupported)
	}

	var (
		gotFmt bool
		buf    *audio.IntBuffer
	)

	for buf == nil {
		chunk, err := parser.NextChunk()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return nil, fmt.Errorf("failed to read chunk: %w", err)
		}

		switch chunk.ID {
		case riff.FmtID:
			if err := chunk.DecodeWavHeader(parser); err != nil {
				return nil, fmt.Errorf("failed to decode fmt chunk: %w", err)
			}

			if parser.WavAudioFormat != wavFormatPCM || parser.BitsPerSample != 16 {
				return nil, fmt.Errorf("%w: format %d, %d bits", ErrNotPCM16, parser.WavAudioFormat, parser.BitsPerSample)
			}

			gotFmt = true
		case riff.DataFormatID:
			if !gotFmt {
				return nil, fmt.Errorf("%w: data chunk before fmt chunk", riff.ErrFmtNotSupported)
			}

			buf, err = readPCM16(chunk, parser)
			if err != nil {
				return nil, err
			}
		default:
			chunk.Drain()
		}
	}

	if buf == nil {
		return nil, fmt.Errorf("%w: no data chunk", ErrNotPCM16)
	}

	return buf, nil
}

func readPCM16(chunk *riff.Chunk, parser *riff.Parser) (*audio.IntBuffer, error) {
	raw := make([]byte, chunk.Size)

	n, err := io.ReadFull(chunk, raw)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("failed to read PCM data: %w", err)
	}

	raw = raw[:n-n%2]
	data := make([]int, len(raw)/2)
	for i := range data {
		data[i] = int(int16(binary.LittleEndian.Uint16(raw[2*i:])))
	}

	return &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: int(parser.NumChannels),
			SampleRate:  int(parser.SampleRate),
		},
		Data:           data,
		SourceBitDepth: 16,
	}, nil
}

// WAVWriter streams mono 16-bit PCM into a WAV container. The RIFF and
// data sizes are patched on Close.
type WAVWriter struct {
	w          io.WriteSeeker
	sampleRate int

	WrittenBytes int
	samples      int
	sizePos      int
	wroteHeader  bool
	scratch      []byte
}

// NewWAVWriter creates a writer for mono 16-bit audio at sampleRate.
// Don't forget to Close it or the file won't be valid.
func NewWAVWriter(w io.WriteSeeker, sampleRate int) *WAVWriter {
	return &WAVWriter{w: w, sampleRate: sampleRate}
}

func (ww *WAVWriter) addLE(src any) error {
	ww.WrittenBytes += binary.Size(src)

	if err := binary.Write(ww.w, binary.LittleEndian, src); err != nil {
		return fmt.Errorf("failed to write little endian: %w", err)
	}

	return nil
}

func (ww *WAVWriter) writeHeader() error {
	ww.wroteHeader = true

	const bitDepth = 16

	fields := []any{
		riff.RiffID,
		// file size, to update later on
		uint32(4294967295),
		riff.WavFormatID,
		riff.FmtID,
		uint32(16),
		uint16(wavFormatPCM),
		uint16(1),
		uint32(ww.sampleRate),
		uint32(ww.sampleRate * bitDepth / 8),
		uint16(bitDepth / 8),
		uint16(bitDepth),
		riff.DataFormatID,
	}

	for _, f := range fields {
		if err := ww.addLE(f); err != nil {
			return fmt.Errorf("error encoding WAV header: %w", err)
		}
	}

	// temporary chunk size
	ww.sizePos = ww.WrittenBytes

	return ww.addLE(uint32(4294967295))
}

// Write appends samples to the data chunk.
func (ww *WAVWriter) Write(pcm []int16) error {
	if !ww.wroteHeader {
		if err := ww.writeHeader(); err != nil {
			return err
		}
	}

	ww.scratch = ww.scratch[:0]
	for _, v := range pcm {
		ww.scratch = binary.LittleEndian.AppendUint16(ww.scratch, uint16(v))
	}

	if _, err := ww.w.Write(ww.scratch); err != nil {
		return fmt.Errorf("failed to write PCM data: %w", err)
	}

	ww.WrittenBytes += len(ww.scratch)
	ww.samples += len(pcm)

	return nil
}

// Close patches the header sizes. The underlying writer is NOT closed.
func (ww *WAVWriter) Close() error {
	if !ww.wroteHeader {
		if err := ww.writeHeader(); err != nil {
			return err
		}
	}

	// go back and write total size in header
	if _, err := ww.w.Seek(4, io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek to file size position: %w", err)
	}

	if err := binary.Write(ww.w, binary.LittleEndian, uint32(ww.WrittenBytes-8)); err != nil {
		return fmt.Errorf("%w when writing the total written bytes", err)
	}

	if _, err := ww.w.Seek(int64(ww.sizePos), io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek to PCM chunk size position: %w", err)
	}

	if err := binary.Write(ww.w, binary.LittleEndian, uint32(2*ww.samples)); err != nil {
		return fmt.Errorf("%w when writing wav data chunk size header", err)
	}

	// jump back to the end of the file.
	if _, err := ww.w.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("failed to seek to end of file: %w", err)
	}

	if f, ok := ww.w.(*os.File); ok {
		return f.Sync()
	}

	return nil
}

// WriteWAV writes a mono 16-bit buffer as a complete WAV file.
func WriteWAV(w io.WriteSeeker, buf *audio.IntBuffer) error {
	if buf == nil || buf.Format == nil {
		return fmt.Errorf("%w: missing format", ErrChannels)
	}

	if buf.Format.NumChannels != 1 {
		return fmt.Errorf("%w: got %d channels", ErrChannels, buf.Format.NumChannels)
	}

	shift := 0
	if buf.SourceBitDepth > 0 {
		shift = buf.SourceBitDepth - 16
	}

	pcm := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		pcm[i] = rescale16(v, shift)
	}

	ww := NewWAVWriter(w, buf.Format.SampleRate)
	if err := ww.Write(pcm); err != nil {
		return err
	}

	return ww.Close()
}

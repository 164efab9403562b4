// Package broadvoice implements a pair of two-stage noise feedback speech
// codecs: BV16, a narrowband codec for 8 kHz audio at 16 kbit/s, and BV32,
// a wideband codec for 16 kHz audio at 32 kbit/s.
//
// Both variants work on 5 ms frames. The encoder performs LPC analysis,
// predictive LSP vector quantization, a decimated coarse pitch search with
// fine refinement, three-tap pitch prediction, log-gain prediction with
// level-adaptive clipping and noise feedback vector quantization of the
// excitation. The decoder mirrors this, adds an adaptive long-term
// postfilter (BV16 only) and conceals lost frames with FillIn.
//
// The codebook and filter tables are provisional. Frames have the standard
// field layout, but they do not interoperate with reference BV16/BV32
// implementations until the tables are replaced with the published ones.
//
// An Encoder or Decoder owns all per-stream state and must not be used
// from more than one goroutine at a time. Codebooks are shared read-only.
//
// Numerical recovery paths (ill-conditioned LPC analysis, implausible
// decoded LSPs, gain clipping) never fail a frame. They are reported as
// Diagnostic events through the optional Diagnostics handler:
//
//	enc, err := broadvoice.NewEncoder(broadvoice.BV16)
//	if err != nil {
//		return err
//	}
//	enc.Diagnostics = broadvoice.LogrusDiagnostics(logrus.StandardLogger())
//
// For host applications the package also reads and writes mono 16-bit WAV
// files (ReadWAV, WriteWAV, NewWAVWriter for streaming) and AIFF files
// (WriteAIFF) on top of the go-audio buffers.
package broadvoice

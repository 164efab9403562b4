package broadvoice

import (
	"errors"
	"fmt"
	"strings"
)

const (
	lpcOrder     = 8
	vecDim       = 4
	lspPredOrder = 8

	lspMin      = 0.0025
	lspMax      = 0.9975
	lspBisects  = 4
	lspCheckDim = 3

	// minLogGain is the log2 energy floor (MinE).
	minLogGain = -2.0

	gainLevelLow  = -24.0 // LGLB
	gainDeltaLow  = -8.0  // GCLB
	gainLimitRows = 18    // NGB
	gainLimitCols = 11    // NGCB

	// Long-term noise feedback scale applied to the fine pitch ratio.
	ltnfScale = 0.5
	// Bandwidth factors of the short-term noise feedback filter and the
	// perceptual weighting filter.
	stnfZeroGamma = 0.75
	stnfPoleGamma = 0.9
	weightGamma   = 0.75
)

// Variant selects one of the two codecs.
type Variant int

const (
	// BV16 is the narrowband codec: 8 kHz input, 40 sample frames, 10 bytes
	// per frame.
	BV16 Variant = iota + 1
	// BV32 is the wideband codec: 16 kHz input, 80 sample frames, 20 bytes
	// per frame.
	BV32
)

var (
	// ErrUnknownVariant is returned for a Variant other than BV16 or BV32.
	ErrUnknownVariant = errors.New("unknown codec variant")
	// ErrFrameSize is returned when a PCM frame doesn't hold exactly one
	// frame of samples.
	ErrFrameSize = errors.New("invalid frame size")
	// ErrShortBuffer is returned when a destination buffer is too small.
	ErrShortBuffer = errors.New("destination buffer too short")
	// ErrClosed is returned by an Encoder or Decoder after Close.
	ErrClosed = errors.New("codec closed")
	// ErrNotPCM16 is returned when a WAV file isn't 16-bit linear PCM.
	ErrNotPCM16 = errors.New("not 16-bit PCM")
	// ErrSampleRate is returned when audio doesn't match the codec rate.
	ErrSampleRate = errors.New("sample rate mismatch")
	// ErrChannels is returned for audio that isn't mono.
	ErrChannels = errors.New("audio must be mono")
)

// String implements the Stringer interface.
func (v Variant) String() string {
	switch v {
	case BV16:
		return "bv16"
	case BV32:
		return "bv32"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant maps "bv16"/"bv32" (case insensitive) to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bv16", "nb", "narrowband":
		return BV16, nil
	case "bv32", "wb", "wideband":
		return BV32, nil
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownVariant)
}

// SampleRate returns the PCM sample rate in Hz, or 0 for an unknown variant.
func (v Variant) SampleRate() int {
	p, err := v.params()
	if err != nil {
		return 0
	}

	return p.sampleRate
}

// FrameSize returns the number of PCM samples per frame.
func (v Variant) FrameSize() int {
	p, err := v.params()
	if err != nil {
		return 0
	}

	return p.frameSize
}

// FrameBytes returns the packed size of one frame.
func (v Variant) FrameBytes() int {
	p, err := v.params()
	if err != nil {
		return 0
	}

	return p.frameBytes
}

func (v Variant) params() (*codecParams, error) {
	switch v {
	case BV16:
		return bv16Params, nil
	case BV32:
		return bv32Params, nil
	}

	return nil, fmt.Errorf("%s: %w", v, ErrUnknownVariant)
}

// codecParams holds every constant that differs between the two variants.
// Instances are package-level and never mutated.
type codecParams struct {
	variant      Variant
	sampleRate   int
	frameSize    int
	subframes    int
	subframeSize int
	frameBytes   int

	// LPC analysis
	lpcWindow []float64
	lagWindow []float64
	hpfNum    []float64
	hpfDen    []float64

	// pitch
	minPitch     int
	maxPitch     int
	decimation   int
	minLagD      int
	maxLagD      int
	pitchWinD    int
	decimNum     []float64
	decimDen     []float64
	pitchTapCB   []float64
	pitchLagBits uint8
	pitchTapBits uint8

	// LSP quantization
	lspMinSpacing    float64
	lspMean          []float64
	lspPredictor     []float64
	lspStage1        []float64
	lspStage2        []float64
	lspStage2Low     []float64
	lspStage2High    []float64
	lspSplit         bool
	lspFallbackIndex int
	lspBits          []uint8

	// gain
	gainPredictor   []float64
	gainMean        float64
	gainCB          []float64
	gainOrder       []int
	gainNextHigher  []float64
	gainThreshold   float64
	gainLimit       []float64
	gainConvergence bool
	gainBits        uint8

	// excitation and postfilter
	excitationCB     []float64
	excitationShapes int
	excitationBits   uint8
	postfilter       bool

	// wire order of the frame fields, see wireLayout
	layout []wireField
}

var bv16Params = &codecParams{
	variant:      BV16,
	sampleRate:   8000,
	frameSize:    40,
	subframes:    1,
	subframeSize: 40,
	frameBytes:   10,

	lpcWindow: bv16LPCWindow[:],
	lagWindow: bv16LagWindow[:],
	hpfNum:    bv16HPFNum[:],
	hpfDen:    bv16HPFDen[:],

	minPitch:     10,
	maxPitch:     137,
	decimation:   4,
	minLagD:      2,
	maxLagD:      34,
	pitchWinD:    60,
	decimNum:     bv16DecimNum[:],
	decimDen:     bv16DecimDen[:],
	pitchTapCB:   bv16PitchTapCB[:],
	pitchLagBits: 7,
	pitchTapBits: 5,

	lspMinSpacing:    0.0125,
	lspMean:          bv16LSPMean[:],
	lspPredictor:     bv16LSPPredictor[:],
	lspStage1:        bv16LSPStage1[:],
	lspStage2:        bv16LSPStage2[:],
	lspFallbackIndex: 1,
	lspBits:          []uint8{7, 7},

	gainPredictor:  bv16GainPredictor[:],
	gainMean:       11.45,
	gainCB:         bv16GainCB[:],
	gainOrder:      bv16GainOrder[:],
	gainNextHigher: bv16GainNextHigher[:],
	gainThreshold:  0.0,
	gainLimit:      bv16GainLimit[:],
	gainBits:       4,

	excitationCB:     bv16ExcitationCB[:],
	excitationShapes: len(bv16ExcitationCB) / vecDim,
	excitationBits:   5,
	postfilter:       true,
}

var bv32Params = &codecParams{
	variant:      BV32,
	sampleRate:   16000,
	frameSize:    80,
	subframes:    2,
	subframeSize: 40,
	frameBytes:   20,

	lpcWindow: bv32LPCWindow[:],
	lagWindow: bv32LagWindow[:],
	hpfNum:    bv32HPFNum[:],
	hpfDen:    bv32HPFDen[:],

	minPitch:     10,
	maxPitch:     265,
	decimation:   8,
	minLagD:      2,
	maxLagD:      33,
	pitchWinD:    60,
	decimNum:     bv32DecimNum[:],
	decimDen:     bv32DecimDen[:],
	pitchTapCB:   bv32PitchTapCB[:],
	pitchLagBits: 8,
	pitchTapBits: 5,

	lspMinSpacing:    0.01,
	lspMean:          bv32LSPMean[:],
	lspPredictor:     bv32LSPPredictor[:],
	lspStage1:        bv32LSPStage1[:],
	lspStage2Low:     bv32LSPStage2Low[:],
	lspStage2High:    bv32LSPStage2High[:],
	lspSplit:         true,
	lspFallbackIndex: 0,
	lspBits:          []uint8{7, 5, 5},

	gainPredictor:   bv32GainPredictor[:],
	gainMean:        11.82,
	gainCB:          bv32GainCB[:],
	gainOrder:       bv32GainOrder[:],
	gainNextHigher:  bv32GainNextHigher[:],
	gainThreshold:   minLogGain,
	gainLimit:       bv32GainLimit[:],
	gainConvergence: true,
	gainBits:        5,

	excitationCB:     bv32ExcitationCB[:],
	excitationShapes: len(bv32ExcitationCB) / vecDim,
	excitationBits:   6,
}

func (p *codecParams) vectorsPerSubframe() int {
	return p.subframeSize / vecDim
}

func (p *codecParams) gainOrderLen() int {
	return len(p.gainPredictor)
}

// ltHistory is the number of past samples the long-term filters need:
// the largest lag plus one for the third pitch tap.
func (p *codecParams) ltHistory() int {
	return p.maxPitch + 1
}

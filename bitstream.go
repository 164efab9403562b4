package broadvoice

// bitWriter packs variable width fields MSB first into a byte slice.
// Invariant: residual < 8 after every put.
type bitWriter struct {
	buf      []byte
	pos      int
	acc      uint32
	residual uint8
}

func (w *bitWriter) init(dst []byte) {
	w.buf = dst
	w.pos = 0
	w.acc = 0
	w.residual = 0
}

// put appends the low bits of value. Fields wider than 24 bits are split
// into a head and an 8 bit tail.
func (w *bitWriter) put(value uint32, bits uint8) {
	if bits == 0 {
		return
	}

	if bits > 24 {
		w.put(value>>8, bits-8)
		value &= 0xff
		bits = 8
	}

	value &= 1<<bits - 1
	w.acc = w.acc<<bits | value
	w.residual += bits

	for w.residual >= 8 {
		w.residual -= 8
		if w.pos < len(w.buf) {
			w.buf[w.pos] = byte(w.acc >> w.residual)
		}
		w.pos++
	}

	w.acc &= 1<<w.residual - 1
}

// flush emits a partial trailing byte, left aligned and zero padded.
func (w *bitWriter) flush() {
	if w.residual > 0 {
		if w.pos < len(w.buf) {
			w.buf[w.pos] = byte(w.acc << (8 - w.residual))
		}
		w.pos++
	}

	w.acc = 0
	w.residual = 0
}

// bitReader is the dual of bitWriter. Reading past the end yields zero bits.
type bitReader struct {
	buf      []byte
	pos      int
	acc      uint32
	residual uint8
}

func (r *bitReader) init(src []byte) {
	r.buf = src
	r.pos = 0
	r.acc = 0
	r.residual = 0
}

func (r *bitReader) get(bits uint8) uint32 {
	if bits == 0 {
		return 0
	}

	if bits > 24 {
		hi := r.get(bits - 8)
		return hi<<8 | r.get(8)
	}

	for r.residual < bits {
		var b byte
		if r.pos < len(r.buf) {
			b = r.buf[r.pos]
		}
		r.pos++
		r.acc = r.acc<<8 | uint32(b)
		r.residual += 8
	}

	r.residual -= bits
	v := r.acc >> r.residual & (1<<bits - 1)
	r.acc &= 1<<r.residual - 1

	return v
}

// frameIndices is the quantization index set of one frame.
type frameIndices struct {
	lsp        [3]int
	pitchLag   int // pitch lag minus minPitch
	pitchTap   int
	gain       [2]int
	excitation [20]int
}

// fieldKind names the index set member a wire field is stored in.
type fieldKind uint8

const (
	fieldLSP fieldKind = iota
	fieldPitchLag
	fieldPitchTap
	fieldGain
	fieldExcitation
)

// wireField is one entry of a variant's frame layout.
type wireField struct {
	kind  fieldKind
	index int
	bits  uint8
}

// wireLayout lists the fields of one frame in wire order.
func wireLayout(p *codecParams) []wireField {
	var layout []wireField

	for i, bits := range p.lspBits {
		layout = append(layout, wireField{fieldLSP, i, bits})
	}

	layout = append(layout,
		wireField{fieldPitchLag, 0, p.pitchLagBits},
		wireField{fieldPitchTap, 0, p.pitchTapBits},
	)

	for i := range p.subframes {
		layout = append(layout, wireField{fieldGain, i, p.gainBits})
	}

	for i := range p.subframes * p.vectorsPerSubframe() {
		layout = append(layout, wireField{fieldExcitation, i, p.excitationBits})
	}

	return layout
}

func init() {
	bv16Params.layout = wireLayout(bv16Params)
	bv32Params.layout = wireLayout(bv32Params)
}

// slot returns the index set member that stores fld.
func (f *frameIndices) slot(fld wireField) *int {
	switch fld.kind {
	case fieldLSP:
		return &f.lsp[fld.index]
	case fieldPitchLag:
		return &f.pitchLag
	case fieldPitchTap:
		return &f.pitchTap
	case fieldGain:
		return &f.gain[fld.index]
	default:
		return &f.excitation[fld.index]
	}
}

// frameBits returns the total number of bits in one packed frame.
func (p *codecParams) frameBits() int {
	total := 0
	for _, fld := range p.layout {
		total += int(fld.bits)
	}

	return total
}

// packFrame writes f into dst, which must hold p.frameBytes bytes.
func packFrame(p *codecParams, f *frameIndices, dst []byte) {
	var w bitWriter
	w.init(dst[:p.frameBytes])

	for _, fld := range p.layout {
		w.put(uint32(*f.slot(fld)), fld.bits)
	}

	w.flush()
}

func unpackFrame(p *codecParams, src []byte, f *frameIndices) {
	var r bitReader
	r.init(src[:p.frameBytes])

	for _, fld := range p.layout {
		*f.slot(fld) = int(r.get(fld.bits))
	}
}

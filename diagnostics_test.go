package broadvoice

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestDiagnosticKindString(t *testing.T) {
	tests := []struct {
		kind DiagnosticKind
		want string
	}{
		{DiagLevinsonFallback, "levinson_fallback"},
		{DiagLSPQuantizerFallback, "lsp_quantizer_fallback"},
		{DiagFrameErased, "frame_erased"},
		{DiagnosticKind(99), "DiagnosticKind(99)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Fatalf("String()=%q, want %q", got, tt.want)
		}
	}
}

func TestLogrusDiagnostics(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	h := LogrusDiagnostics(logger)
	h(Diagnostic{Kind: DiagGainLimit, Variant: BV32, Frame: 7, Detail: "clipped"})
	h(Diagnostic{Kind: DiagLSPQuantizerFallback, Variant: BV16, Frame: 3})

	entries := hook.AllEntries()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	first := entries[0]
	if first.Level != logrus.DebugLevel || first.Message != "clipped" {
		t.Fatalf("first entry level=%s message=%q", first.Level, first.Message)
	}

	if first.Data["kind"] != "gain_limit" || first.Data["variant"] != "bv32" || first.Data["frame"] != uint64(7) {
		t.Fatalf("unexpected fields %v", first.Data)
	}

	second := entries[1]
	if second.Level != logrus.WarnLevel || second.Message != "lsp_quantizer_fallback" {
		t.Fatalf("second entry level=%s message=%q", second.Level, second.Message)
	}
}

func TestEncoderDiagnosticsReachLogrus(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	enc, _ := NewEncoder(BV16)
	enc.Diagnostics = LogrusDiagnostics(logger)

	// silence makes the LPC recursion fall back on every frame
	if _, err := enc.Encode(make([]byte, 10), make([]int16, 40)); err != nil {
		t.Fatal(err)
	}

	found := false
	for _, e := range hook.AllEntries() {
		if e.Data["kind"] == DiagLevinsonFallback.String() && e.Data["frame"] == uint64(0) {
			found = true
		}
	}

	if !found {
		t.Fatal("no levinson_fallback entry logged")
	}
}

func TestMultiDiagnostics(t *testing.T) {
	a, b := DiagnosticCounter{}, DiagnosticCounter{}
	h := MultiDiagnostics(a.Handle, nil, b.Handle)

	h(Diagnostic{Kind: DiagFrameErased})
	h(Diagnostic{Kind: DiagFrameErased})
	h(Diagnostic{Kind: DiagGainLimit})

	if a[DiagFrameErased] != 2 || b[DiagFrameErased] != 2 || a[DiagGainLimit] != 1 {
		t.Fatalf("counters a=%v b=%v", a, b)
	}

	// a nil handler discards events
	emit(nil, Diagnostic{Kind: DiagGainLimit})
}

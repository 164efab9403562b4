package broadvoice

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// DiagnosticKind identifies a local recovery path taken while coding a frame.
type DiagnosticKind int

const (
	// DiagLevinsonFallback: the LPC recursion was ill-conditioned and the
	// previous frame's predictor was reused.
	DiagLevinsonFallback DiagnosticKind = iota + 1
	// DiagLSPRootFallback: fewer than eight LSP roots were found and the
	// previous LSP vector was reused.
	DiagLSPRootFallback
	// DiagLSPQuantizerFallback: no second stage LSP candidate kept the
	// vector ordered and the fixed default index was sent. The decoder may
	// lose synchronization on such a frame.
	DiagLSPQuantizerFallback
	// DiagLSPStabilityFallback: a decoded LSP vector failed the ordering
	// check and the previous one was used instead.
	DiagLSPStabilityFallback
	// DiagGainLimit: a log-gain exceeded the gain-change limit and was
	// replaced by the previous gain.
	DiagGainLimit
	// DiagFrameErased: a frame was synthesized by packet loss concealment.
	DiagFrameErased
)

var diagnosticNames = map[DiagnosticKind]string{
	DiagLevinsonFallback:     "levinson_fallback",
	DiagLSPRootFallback:      "lsp_root_fallback",
	DiagLSPQuantizerFallback: "lsp_quantizer_fallback",
	DiagLSPStabilityFallback: "lsp_stability_fallback",
	DiagGainLimit:            "gain_limit",
	DiagFrameErased:          "frame_erased",
}

func (k DiagnosticKind) String() string {
	if name, ok := diagnosticNames[k]; ok {
		return name
	}

	return fmt.Sprintf("DiagnosticKind(%d)", int(k))
}

// Diagnostic is a structured event emitted by an Encoder or Decoder.
type Diagnostic struct {
	Kind    DiagnosticKind
	Variant Variant
	// Frame is the zero based index of the frame being processed.
	Frame  uint64
	Detail string
}

// DiagnosticHandler receives diagnostics synchronously on the coding
// goroutine. A nil handler discards them.
type DiagnosticHandler func(Diagnostic)

// LogrusDiagnostics returns a handler that logs every event to logger.
// Events that may desynchronize the decoder are logged as warnings, the
// rest at debug level.
func LogrusDiagnostics(logger logrus.FieldLogger) DiagnosticHandler {
	return func(d Diagnostic) {
		entry := logger.WithFields(logrus.Fields{
			"kind":    d.Kind.String(),
			"variant": d.Variant.String(),
			"frame":   d.Frame,
		})

		msg := d.Detail
		if msg == "" {
			msg = d.Kind.String()
		}

		if d.Kind == DiagLSPQuantizerFallback {
			entry.Warn(msg)
			return
		}

		entry.Debug(msg)
	}
}

// DiagnosticCounter counts events per kind.
type DiagnosticCounter map[DiagnosticKind]int

// Handle records d. Pass c.Handle as a DiagnosticHandler.
func (c DiagnosticCounter) Handle(d Diagnostic) {
	c[d.Kind]++
}

// MultiDiagnostics fans every event out to all non-nil handlers.
func MultiDiagnostics(handlers ...DiagnosticHandler) DiagnosticHandler {
	return func(d Diagnostic) {
		for _, h := range handlers {
			if h != nil {
				h(d)
			}
		}
	}
}

func emit(h DiagnosticHandler, d Diagnostic) {
	if h != nil {
		h(d)
	}
}

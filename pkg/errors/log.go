package errors

import (
	"fmt"
	"os"
)

// LogHandler is a Handler that logs diagnostics to stderr.
type LogHandler struct {
	// Verbose enables detailed output, including the ordered list of
	// close calls a premature close skipped.
	Verbose bool
}

// HandleClose logs a CloseError to stderr.
func (h *LogHandler) HandleClose(err *CloseError) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "[panelkit] %v\n", err)
	if h.Verbose && err.Kind == KindPrematureClose {
		fmt.Fprintf(os.Stderr, "[panelkit] make sure to call these first:\n")
		for _, call := range err.CloseFirst {
			fmt.Fprintf(os.Stderr, "[panelkit]     %s;\n", call)
		}
	}
}

// HandleUnclosed logs an UnclosedError to stderr.
func (h *LogHandler) HandleUnclosed(err *UnclosedError) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "[panelkit] %v\n", err)
}

// HandleFrame logs a FrameError to stderr.
func (h *LogHandler) HandleFrame(err *FrameError) {
	if err == nil {
		return
	}
	if err.Kind == KindFrameSummary {
		fmt.Fprintf(os.Stderr, "[panelkit] ================= %v =================\n", err)
		return
	}
	fmt.Fprintf(os.Stderr, "[panelkit] %v\n", err)
}

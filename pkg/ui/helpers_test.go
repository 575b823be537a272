package ui

import (
	"strings"
	"testing"

	"github.com/go-panelkit/panelkit/pkg/errors"
)

// captureHandler records reported diagnostics for assertions.
type captureHandler struct {
	closes   []*errors.CloseError
	unclosed []*errors.UnclosedError
	frames   []*errors.FrameError
}

func (h *captureHandler) HandleClose(err *errors.CloseError) {
	h.closes = append(h.closes, err)
}

func (h *captureHandler) HandleUnclosed(err *errors.UnclosedError) {
	h.unclosed = append(h.unclosed, err)
}

func (h *captureHandler) HandleFrame(err *errors.FrameError) {
	h.frames = append(h.frames, err)
}

// installCapture routes diagnostics into a captureHandler for the
// duration of the test.
func installCapture(t *testing.T) *captureHandler {
	t.Helper()
	h := &captureHandler{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return h
}

// containerCalls filters layout pushes out of a recorded call list,
// leaving the open/close/widget/draw sequence.
func containerCalls(calls []string) []string {
	var out []string
	for _, c := range calls {
		if strings.HasPrefix(c, "set_layout") {
			continue
		}
		out = append(out, c)
	}
	return out
}

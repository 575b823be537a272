package errors

import (
	"sync"
	"time"
)

var (
	// DefaultHandler is the global diagnostics handler.
	// It defaults to LogHandler with verbose=false.
	DefaultHandler Handler = &LogHandler{}

	handlerMu sync.RWMutex
)

// SetHandler configures the global diagnostics handler.
// Pass nil to restore the default LogHandler.
func SetHandler(h Handler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		DefaultHandler = &LogHandler{}
	} else {
		DefaultHandler = h
	}
}

// getHandler returns the current diagnostics handler.
func getHandler() Handler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// ReportClose sends a close mismatch to the global handler.
// If err.Timestamp is zero, it is set to the current time.
func ReportClose(err *CloseError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := getHandler(); h != nil {
		h.HandleClose(err)
	}
}

// ReportUnclosed sends a forced-closure diagnostic to the global handler.
func ReportUnclosed(err *UnclosedError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := getHandler(); h != nil {
		h.HandleUnclosed(err)
	}
}

// ReportFrame sends a frame-lifecycle diagnostic to the global handler.
func ReportFrame(err *FrameError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := getHandler(); h != nil {
		h.HandleFrame(err)
	}
}

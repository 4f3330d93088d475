package wdraw

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Backend identifies a native rendering backend.
type Backend int

const (
	// BackendAuto picks the best available backend. It resolves to
	// BackendRetained.
	BackendAuto Backend = iota
	// BackendRetained is the reference-counted retained-mode backend
	// (backend/retained, rendered by gg).
	BackendRetained
	// BackendImmediate is the handle-based immediate-mode backend
	// (backend/immediate).
	BackendImmediate
)

// String returns the backend name.
func (b Backend) String() string {
	switch b {
	case BackendAuto:
		return "auto"
	case BackendRetained:
		return "retained"
	case BackendImmediate:
		return "immediate"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

// ParseBackend parses a backend name as returned by Backend.String.
func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return BackendAuto, nil
	case "retained":
		return BackendRetained, nil
	case "immediate":
		return BackendImmediate, nil
	default:
		return BackendAuto, fmt.Errorf("%w: %q", ErrUnknownBackend, s)
	}
}

// active holds the process-wide backend. It is written by Initialize and
// Terminate and only read elsewhere.
var active atomic.Int32

func init() {
	active.Store(int32(BackendRetained))
}

// Initialize selects the process-wide backend. Call it once during start-up,
// before creating canvases. Canvases capture the selection when they are
// created; changing it later does not affect existing canvases or brushes.
//
// Without Initialize the retained backend is used.
func Initialize(opts ...InitOption) error {
	o := defaultInitOptions()
	for _, opt := range opts {
		opt(&o)
	}

	b := o.backend
	switch b {
	case BackendAuto:
		b = BackendRetained
	case BackendRetained, BackendImmediate:
	default:
		return fmt.Errorf("%w: %v", ErrUnknownBackend, b)
	}

	if o.logger != nil {
		SetLogger(o.logger)
	}
	active.Store(int32(b))
	Logger().Info("wdraw: backend selected", "backend", b)
	return nil
}

// Terminate restores the default backend selection.
func Terminate() {
	active.Store(int32(BackendRetained))
}

// ActiveBackend returns the selected backend.
func ActiveBackend() Backend {
	return Backend(active.Load())
}

// RetainedEnabled reports whether the retained backend is selected.
func RetainedEnabled() bool {
	return ActiveBackend() == BackendRetained
}

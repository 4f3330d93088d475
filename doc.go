// Package wdraw creates and manages brushes on one of two native 2D
// backends chosen at runtime.
//
// # Overview
//
// wdraw is a thin layer. Rasterization, gradient interpolation and
// compositing happen in the backends:
//
//   - retained (backend/retained): reference-counted device resources bound
//     to a render target, rendered by github.com/gogpu/gg.
//   - immediate (backend/immediate): a flat handle-based API with status
//     codes, rendered on the CPU with golang.org/x/image/vector.
//
// # Quick Start
//
//	// Pick the backend once at start-up (optional, retained is the default).
//	if err := wdraw.Initialize(wdraw.WithBackend(wdraw.BackendImmediate)); err != nil {
//	    log.Fatal(err)
//	}
//	defer wdraw.Terminate()
//
//	c, err := wdraw.NewCanvas(200, 100)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close()
//
//	b, err := c.CreateLinearGradientBrush(0, 0, wdraw.Red, 200, 0, wdraw.Blue)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer b.Close()
//
//	_ = c.FillRect(b, 0, 0, 200, 100)
//
// # Backend Selection
//
// The selection is process-wide and read when a canvas is created. The
// canvas keeps its backend for its whole life, and brushes only work with
// the canvas backend that created them.
//
// # Resource Ownership
//
// Every brush owns exactly one native resource and must be destroyed once,
// with Destroy or Close. wdraw does not reference count brushes on top of
// the backend.
//
// # Errors and Diagnostics
//
// A failed native call returns a nil brush and an error wrapping the
// backend error, and logs one warning through the logger set with
// SetLogger. Invalid input such as a gradient with fewer than two stops is
// rejected before any backend call and is not logged.
//
// # Concurrency
//
// wdraw adds no locking. Canvases and brushes must not be used from several
// goroutines at once without external synchronization.
package wdraw

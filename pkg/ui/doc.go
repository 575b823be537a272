// Package ui implements an immediate-mode container engine: the
// bookkeeping that lets calling code open and close nested UI
// containers (panels, popups, insets, tree nodes, layout columns)
// across repeated per-frame calls, while recovering from mismatched
// open/close pairs without crashing the host application.
//
// # Quick Start
//
// Create a Context around a backend driver, issue container and widget
// calls each frame, and finish with Draw:
//
//	ctx := ui.New(drv)
//
//	for running {
//	    if ctx.StartPanel("settings", driver.Rect{X: 10, Y: 10, Width: 240, Height: 320}) {
//	        if ctx.ButtonLabeled("Audio", "Mute") {
//	            muted = !muted
//	        }
//	    }
//	    ctx.EndPanel("settings")
//	    ctx.Draw()
//	}
//
// # Mismatch Recovery
//
// Opens always succeed; only closes are validated. A close that does
// not match the innermost open container is reconciled in place: an
// orphan close is ignored, a premature close unwinds the skipped inner
// containers in LIFO order, and anything still open at Draw is closed
// for you. Every case is reported through the errors package's Handler
// and none is surfaced as an error return, so a buggy frame renders
// visibly wrong instead of breaking the program.
package ui

// Package testing provides a recording fake backend for testing code
// built on the panelkit container engine.
//
// FakeDriver records every backend call in order and lets tests script
// which containers report open, whether the frame is started, and what
// each widget primitive returns:
//
//	func TestMyFrame(t *testing.T) {
//	    drv := pktest.NewFakeDriver()
//	    ctx := ui.New(drv)
//
//	    ctx.StartPanel("settings", driver.Rect{Width: 200, Height: 100})
//	    ctx.EndPanel("settings")
//	    ctx.Draw()
//
//	    if drv.Calls[len(drv.Calls)-1] != "draw" {
//	        t.Error("expected a draw call")
//	    }
//	}
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import pktest "github.com/go-panelkit/panelkit/pkg/testing"
package testing

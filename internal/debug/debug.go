// Package debug provides contract assertions that are compiled out of
// release builds. Enable them with the vecdebug build tag, or by setting
// Enabled directly in tests.
package debug

import "fmt"

// Enabled controls whether assertions are checked. Defaults to the value
// selected by the vecdebug build tag.
var Enabled = enabledDefault

// Failure captures the most recent assertion failure.
type Failure struct {
	Expr string
}

// Last records the most recent assertion failure.
var Last Failure

// Assert panics if cond is false and assertions are enabled.
func Assert(cond bool, format string, args ...any) {
	if !Enabled || cond {
		return
	}
	expr := fmt.Sprintf(format, args...)
	Last = Failure{Expr: expr}
	panic("assertion failed: " + expr)
}

// Reset clears the recorded failure state.
func Reset() {
	Last = Failure{}
}

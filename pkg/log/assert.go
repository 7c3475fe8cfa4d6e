package log

import (
	"fmt"
	"os"
)

// trap terminates the process abnormally. 134 is the conventional status of
// an aborted process (128+SIGABRT), so supervisors and core-dump tooling
// treat it as a crash rather than a clean exit. Tests intercept it.
var trap = func() {
	os.Exit(134)
}

// Assert logs an assertion failure at PriorityFatal and aborts the process.
// The message comes from format if one is given; otherwise it is synthesized
// from cond. Assert never returns, whether or not the write itself succeeded:
// a broken log path must not suppress the abort.
//
// cond is never used as a format string, since it may contain spurious '%'
// (e.g. "blocks%devs == 0").
func Assert(cond, tag, format string, args ...any) {
	var msg string
	switch {
	case format != "":
		msg = clampMessage(fmt.Sprintf(format, args...))
	case cond != "":
		msg = clampMessage("Assertion failed: " + cond)
	default:
		msg = "Unspecified assertion failed"
	}

	Write(PriorityFatal, tag, msg)

	trap()
}

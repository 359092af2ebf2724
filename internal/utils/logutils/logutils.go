package logutils

import (
	"fmt"
)

// FormatPrinter is a simple wrapper that implements the Stringer interface by
// printing an arbitrary object with a given format specifier/verb.
// The formatting only happens when the log entry is actually emitted.
type FormatPrinter struct {
	verb string
	item any
}

func (v FormatPrinter) String() string {
	return fmt.Sprintf(v.verb, v.item)
}

func Format(verb string, item any) FormatPrinter {
	return FormatPrinter{verb, item}
}

// Truncate shortens s to at most n bytes, marking the cut with an ellipsis.
// Response bodies can be large and are only useful in logs as a hint.
func Truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

package sanitizer

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict allows no elements at all and drops the content of script/style.
var strict = bluemonday.StrictPolicy()

// Clean removes markup and control characters from user supplied text and
// collapses every whitespace run into a single space.
//
// Entities decoded during one pass can form new tags ("&lt;script&gt;"), so
// passes are repeated until the text is stable. Every pass after the first
// either shortens the text or leaves it unchanged, which bounds the loop and
// makes Clean idempotent.
func Clean(value string) string {
	for {
		next := clean(value)
		if next == value {
			return next
		}
		value = next
	}
}

// Pointer cleans the pointed-to value, keeping nil as nil.
func Pointer(value *string) *string {
	if value == nil {
		return nil
	}
	cleaned := Clean(*value)
	return &cleaned
}

func clean(value string) string {
	value = strings.ToValidUTF8(value, "")
	value = strings.Map(dropControl, value)
	value = html.UnescapeString(strict.Sanitize(value))
	return strings.Join(strings.Fields(value), " ")
}

// dropControl removes C0 controls and DEL, keeping tab, newline and carriage return.
func dropControl(r rune) rune {
	switch {
	case r == '\t' || r == '\n' || r == '\r':
		return r
	case r < 0x20 || r == 0x7f:
		return -1
	}
	return r
}

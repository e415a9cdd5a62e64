package corval

import (
	"fmt"
	"strconv"
	"strings"
)

// Location paths are JSON Pointers built from ordered segments. Children
// report paths relative to themselves; every container or decorator that
// forwards a child failure prefixes its own segment, so the final pointer
// reads root-to-failure.

// escapeToken escapes '~' -> '~0' and '/' -> '~1' per RFC 6901.
func escapeToken(name string) string {
	return strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
}

// segField renders an object key as a pointer segment.
func segField(name string) string { return "/" + escapeToken(name) }

// segIndex renders an array index as a pointer segment.
func segIndex(i int) string { return "/" + strconv.Itoa(i) }

// segOf renders an outer-location value: a string field name, an int index,
// or nil for "no outer location".
func segOf(loc any) string {
	switch l := loc.(type) {
	case nil:
		return ""
	case string:
		return segField(l)
	case int:
		return segIndex(l)
	default:
		return segField(fmt.Sprint(l))
	}
}

// prefixIssues rebases child issues under the given segment. A child path of
// "" or "/" collapses to the segment itself.
func prefixIssues(seg string, iss Issues) Issues {
	if seg == "" || len(iss) == 0 {
		return iss
	}
	out := make(Issues, 0, len(iss))
	for _, it := range iss {
		p := it.Path
		switch {
		case p == "" || p == "/":
			p = seg
		case p[0] == '/':
			p = seg + p
		default:
			p = seg + "/" + p
		}
		it.Path = p
		out = append(out, it)
	}
	return out
}

// withOuterLocation prepends an outer location to a validation error's path
// chain. Non-Issues errors (including ErrOmit) pass through unchanged.
func withOuterLocation(err error, loc any) error {
	if err == nil || loc == nil {
		return err
	}
	iss, ok := AsIssues(err)
	if !ok {
		return err
	}
	return prefixIssues(segOf(loc), iss)
}

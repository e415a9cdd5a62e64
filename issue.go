package corval

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mkondo/corval/i18n"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType   = "invalid_type"
	CodeRequired      = "required"
	CodeUnknownKey    = "unknown_key"
	CodeNoneRequired  = "none_required"
	CodeBoolParsing   = "bool_parsing"
	CodeIntParsing    = "int_parsing"
	CodeFloatParsing  = "float_parsing"
	CodeStringType    = "string_type"
	CodeListType      = "list_type"
	CodeDictType      = "dict_type"
	CodeTooShort      = "too_short"
	CodeTooLong       = "too_long"
	CodeUnionNoMatch  = "union_no_match"
	CodeRecursionLoop = "recursion_loop"
	CodeParseError    = "parse_error"
	// Build-phase diagnostics (carried inside ErrSchema wrappers)
	CodeSchemaError = "schema_error"
	CodeUnknownRef  = "unknown_ref"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /items/2/price).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, expected shapes, etc.
	Cause   error  // Optional: underlying error.
	// Input is the offending input value, kept by reference for host
	// presentation. It is never mutated by the engine.
	Input any
	// Params carries structured parameters (e.g., {"min":1, "got":42})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. int_parsing at /items/2
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
// It never matches ErrOmit.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// ErrOmit is the omit sentinel: a validator failing with ErrOmit asks its
// immediate caller to drop the value silently instead of reporting a failure.
// It is a result channel of its own, never an Issues, and must not escape to
// the host; Parse converts a leaked ErrOmit into a schema-misuse issue.
var ErrOmit error = omitSentinel{}

type omitSentinel struct{}

func (omitSentinel) Error() string { return "corval: omit" }

// ErrSchema marks build-phase failures: contradictory or malformed schema
// configuration and unresolved forward references. Match with errors.Is.
var ErrSchema = errors.New("corval: invalid schema")

func schemaErrf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrSchema}, args...)...)
}

// msg fetches the catalog message for an issue code.
func msg(code string) string { return i18n.T(code, nil) }

// issuesFromErr converts an error into Issues, wrapping non-Issues with
// CodeParseError. ErrOmit is never wrapped; callers branch on it first.
func issuesFromErr(path string, err error) Issues {
	if err == nil {
		return nil
	}
	if i2, ok := AsIssues(err); ok {
		return i2
	}
	return Issues{Issue{Path: path, Code: CodeParseError, Message: err.Error(), Cause: err}}
}

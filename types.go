package corval

import "context"

// UnknownPolicy controls how unknown object keys are handled.
type UnknownPolicy int

const (
	UnknownStrip  UnknownPolicy = iota // Drop unknown keys.
	UnknownStrict                      // Reject unknown keys with an error.
	UnknownAllow                       // Preserve unknown keys in the output.
)

// OnError is the default decorator's policy when its inner validator fails.
type OnError int

const (
	OnErrorRaise   OnError = iota // Propagate the inner error unchanged.
	OnErrorOmit                   // Fail with ErrOmit; the caller drops the field.
	OnErrorDefault                // Substitute the configured default value.
)

// Factory produces a fresh default value. It is invoked on every use and its
// result is never cached, so side effects (counters, randomness, mutable
// outputs) behave per call.
type Factory func() any

// Extra is the immutable per-call ambient state threaded through every
// validation call. A fresh Extra is allocated by each top-level Parse.
type Extra struct {
	// Ctx is the host context of the top-level call. Validation itself is
	// synchronous and never blocks on it; it exists for host hooks.
	Ctx context.Context
	// Strict disables lax coercion in leaf validators.
	Strict bool
	// FailFast stops containers at the first issue.
	FailFast bool
	// Context is opaque host data for custom validators.
	Context any
}

// Config is the ambient compilation config. Schema keys win over Config
// values; an unset Config behaves as all-false.
type Config struct {
	Strict          bool
	FailFast        bool
	ValidateDefault bool // resolved schema-or-config for "validate_default"
	Title           string
}

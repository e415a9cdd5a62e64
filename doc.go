package corval

// Package corval is the runtime core of a schema-driven validation engine:
//
// - A declarative schema document (nested map[string]any with a "type"
//   discriminator) is compiled once into an immutable validator tree.
// - The compiled tree is invoked many times via Parse/ParseJSON; each call
//   checks or coerces one input value and returns the value or Issues.
// - A stable error model via Issues (JSON Pointer, code, message).
// - Self-referential schemas are expressed through named definition slots
//   and bounded at runtime by a recursion guard.
//
// Design policy:
// - Keep the public API in the root package; place the CLI under cmd/corval
//   and the message catalog under i18n/.
// - Validators are immutable after Compile and safe for concurrent use;
//   per-call state (Extra, RecursionGuard) is allocated per Parse call.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	schema, err := corval.SchemaFromJSON(doc)
//	sv, err := corval.Compile(schema, nil)
//	v, err := sv.Parse(ctx, input)

package corval

import (
	"bytes"
	"context"
	"errors"

	json "github.com/goccy/go-json"
)

// SchemaValidator is a compiled, completed validator tree plus the flat slot
// array backing definition references. It is immutable and safe for
// concurrent use; each Parse call allocates its own Extra and RecursionGuard.
type SchemaValidator struct {
	root  Validator
	slots []Validator
	cfg   Config
}

// Compile builds the schema into a validator tree and runs the completion
// pass over the root and every definition slot. It is the phase barrier: the
// returned SchemaValidator is the only handle that can validate, so no
// Validate call can precede completion.
func Compile(schema map[string]any, cfg *Config) (*SchemaValidator, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	bc := NewBuildContext()
	root, err := BuildValidator(schema, cfg, bc)
	if err != nil {
		return nil, err
	}
	slots, err := bc.Finish()
	if err != nil {
		return nil, err
	}
	if err := root.Complete(bc); err != nil {
		return nil, err
	}
	for _, s := range slots {
		if err := s.Complete(bc); err != nil {
			return nil, err
		}
	}
	return &SchemaValidator{root: root, slots: slots, cfg: *cfg}, nil
}

// Parse validates one already-resident value and returns the checked or
// coerced result, or Issues. ctx is the host context; validation itself is
// synchronous and aborts only through returned errors.
func (s *SchemaValidator) Parse(ctx context.Context, v any) (any, error) {
	ex := &Extra{Ctx: ctx, Strict: s.cfg.Strict, FailFast: s.cfg.FailFast}
	out, err := s.root.Validate(v, ex, s.slots, newRecursionGuard())
	if err != nil {
		if errors.Is(err, ErrOmit) {
			// omit is consumed by containers; reaching the root means the
			// schema put an omitting validator outside any container
			return nil, Issues{Issue{Path: "/", Code: CodeSchemaError, Message: "omit is not allowed at the validation root", Input: v}}
		}
		return nil, err
	}
	return out, nil
}

// ParseJSON decodes data (numbers as json.Number) and validates the result.
func (s *SchemaValidator) ParseJSON(ctx context.Context, data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, Issues{Issue{Path: "/", Code: CodeParseError, Message: msg(CodeParseError), Cause: err}}
	}
	return s.Parse(ctx, v)
}

// Name reports the root validator's display name, prefixed with the
// configured title when set.
func (s *SchemaValidator) Name() string {
	if s.cfg.Title != "" {
		return s.cfg.Title + ":" + s.root.Name()
	}
	return s.root.Name()
}

// Ask forwards a structural question to the root validator.
func (s *SchemaValidator) Ask(q Question) bool { return s.root.Ask(q) }

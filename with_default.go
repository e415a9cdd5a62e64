package corval

// The default decorator wraps exactly one inner validator and adds default
// supply plus a configurable failure policy. Containers never special-case
// it: they reach it through the DefaultValue hook of the contract.

type defaultKind int

const (
	defaultNone defaultKind = iota
	defaultLiteral
	defaultFactory
)

var _ Validator = (*withDefaultValidator)(nil)

// withDefaultValidator owns its default source, on_error policy, the
// validate_default flag and the boxed inner validator.
type withDefaultValidator struct {
	kind            defaultKind
	literal         any
	factory         Factory
	onError         OnError
	inner           Validator
	validateDefault bool
	name            string
}

func buildWithDefault(schema map[string]any, cfg *Config, bc *BuildContext) (Validator, error) {
	v := &withDefaultValidator{}

	literal, hasLiteral := schema["default"]
	rawFactory, hasFactory := schema["default_factory"]
	switch {
	case hasLiteral && hasFactory:
		return nil, schemaErrf("'default' and 'default_factory' cannot be used together")
	case hasLiteral:
		v.kind = defaultLiteral
		v.literal = literal
	case hasFactory:
		f, err := asFactory(rawFactory)
		if err != nil {
			return nil, err
		}
		v.kind = defaultFactory
		v.factory = f
	}

	onErr, ok, err := schemaStr(schema, "on_error")
	if err != nil {
		return nil, err
	}
	if ok {
		switch onErr {
		case "raise":
			v.onError = OnErrorRaise
		case "omit":
			v.onError = OnErrorOmit
		case "default":
			if v.kind == defaultNone {
				return nil, schemaErrf("'on_error: default' requires a 'default' or 'default_factory'")
			}
			v.onError = OnErrorDefault
		default:
			return nil, schemaErrf("unknown value %q for field %q", onErr, "on_error")
		}
	}

	sub, err := schemaMapReq(schema, "schema")
	if err != nil {
		return nil, err
	}
	if v.inner, err = BuildValidator(sub, cfg, bc); err != nil {
		return nil, err
	}
	if v.validateDefault, err = schemaOrConfigBool(schema, "validate_default", cfg.ValidateDefault); err != nil {
		return nil, err
	}
	v.name = "default[" + v.inner.Name() + "]"
	return v, nil
}

func asFactory(raw any) (Factory, error) {
	switch f := raw.(type) {
	case Factory:
		return f, nil
	case func() any:
		return f, nil
	default:
		return nil, schemaErrf("'default_factory' must be a zero-argument producer")
	}
}

// Validate delegates to the inner validator. Success passes through
// untouched regardless of policy; failure branches on on_error.
func (v *withDefaultValidator) Validate(input any, ex *Extra, slots []Validator, g *RecursionGuard) (any, error) {
	out, err := v.inner.Validate(input, ex, slots, g)
	if err == nil {
		return out, nil
	}
	switch v.onError {
	case OnErrorOmit:
		return nil, ErrOmit
	case OnErrorDefault:
		dv, has, derr := v.DefaultValue(nil, ex, slots, g)
		if derr != nil {
			return nil, derr
		}
		if !has {
			// build rejects on_error=default without a source
			return nil, err
		}
		return dv, nil
	default:
		return nil, err
	}
}

// DefaultValue supplies the configured default, freshly produced on every
// call when a factory is set. With validate_default the produced value runs
// through Validate itself; a failure gets the outer location prepended so
// the report points at the enclosing field.
func (v *withDefaultValidator) DefaultValue(outerLoc any, ex *Extra, slots []Validator, g *RecursionGuard) (any, bool, error) {
	var produced any
	switch v.kind {
	case defaultNone:
		return nil, false, nil
	case defaultLiteral:
		produced = v.literal
	case defaultFactory:
		produced = v.factory()
	}
	if !v.validateDefault {
		return produced, true, nil
	}
	out, err := v.Validate(produced, ex, slots, g)
	if err != nil {
		return nil, false, withOuterLocation(err, outerLoc)
	}
	return out, true, nil
}

func (v *withDefaultValidator) Name() string { return v.name }

// Ask answers the questions about the decorator itself and forwards the
// rest.
func (v *withDefaultValidator) Ask(q Question) bool {
	switch q {
	case QHasDefault:
		return v.kind != defaultNone
	case QOmitOnError:
		return v.onError == OnErrorOmit
	default:
		return v.inner.Ask(q)
	}
}

func (v *withDefaultValidator) Complete(bc *BuildContext) error { return v.inner.Complete(bc) }

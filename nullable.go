package corval

var _ Validator = (*nullableValidator)(nil)

// nullableValidator passes nil through and delegates everything else,
// including the default hook and structural questions, to the inner
// validator.
type nullableValidator struct {
	inner Validator
	name  string
}

func buildNullable(schema map[string]any, cfg *Config, bc *BuildContext) (Validator, error) {
	sub, err := schemaMapReq(schema, "schema")
	if err != nil {
		return nil, err
	}
	inner, err := BuildValidator(sub, cfg, bc)
	if err != nil {
		return nil, err
	}
	return &nullableValidator{inner: inner, name: "nullable[" + inner.Name() + "]"}, nil
}

func (v *nullableValidator) Validate(input any, ex *Extra, slots []Validator, g *RecursionGuard) (any, error) {
	if input == nil {
		return nil, nil
	}
	return v.inner.Validate(input, ex, slots, g)
}

func (v *nullableValidator) DefaultValue(outerLoc any, ex *Extra, slots []Validator, g *RecursionGuard) (any, bool, error) {
	return v.inner.DefaultValue(outerLoc, ex, slots, g)
}

func (v *nullableValidator) Name() string { return v.name }

func (v *nullableValidator) Ask(q Question) bool {
	if q == QAllowsNull {
		return true
	}
	return v.inner.Ask(q)
}

func (v *nullableValidator) Complete(bc *BuildContext) error { return v.inner.Complete(bc) }

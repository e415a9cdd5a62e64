package corval

var _ Validator = anyValidator{}

// anyValidator accepts every input unchanged.
type anyValidator struct{ leaf }

func buildAny(schema map[string]any, cfg *Config, bc *BuildContext) (Validator, error) {
	return anyValidator{}, nil
}

func (anyValidator) Validate(input any, ex *Extra, slots []Validator, g *RecursionGuard) (any, error) {
	return input, nil
}

func (anyValidator) Name() string { return "any" }

// noneValidator requires nil input.
type noneValidator struct{ leaf }

func buildNone(schema map[string]any, cfg *Config, bc *BuildContext) (Validator, error) {
	return noneValidator{}, nil
}

func (noneValidator) Validate(input any, ex *Extra, slots []Validator, g *RecursionGuard) (any, error) {
	if input != nil {
		return nil, Issues{Issue{Path: "/", Code: CodeNoneRequired, Message: msg(CodeNoneRequired), Input: input}}
	}
	return nil, nil
}

func (noneValidator) Name() string { return "none" }

func (noneValidator) Ask(q Question) bool { return q == QAllowsNull }

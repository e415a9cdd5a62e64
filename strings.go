package corval

import (
	"encoding/json"
	"strconv"
)

// strValidator checks/coerces to string. Strict mode accepts string only;
// lax mode stringifies numbers and bools.
type strValidator struct {
	leaf
	strict bool
}

func buildStr(schema map[string]any, cfg *Config, bc *BuildContext) (Validator, error) {
	strict, err := schemaOrConfigBool(schema, "strict", cfg.Strict)
	if err != nil {
		return nil, err
	}
	return strValidator{strict: strict}, nil
}

func (v strValidator) Validate(input any, ex *Extra, slots []Validator, g *RecursionGuard) (any, error) {
	if s, ok := input.(string); ok {
		return s, nil
	}
	if !(v.strict || ex.Strict) {
		switch n := input.(type) {
		case json.Number:
			return n.String(), nil
		case bool:
			return strconv.FormatBool(n), nil
		case int:
			return strconv.Itoa(n), nil
		case int64:
			return strconv.FormatInt(n, 10), nil
		case float64:
			return strconv.FormatFloat(n, 'g', -1, 64), nil
		}
	}
	return nil, Issues{Issue{Path: "/", Code: CodeStringType, Message: msg(CodeStringType), Input: input}}
}

func (v strValidator) Name() string { return "str" }

package corval

import (
	"encoding/json"
	"strings"
)

// boolValidator checks/coerces to bool. Strict mode accepts bool only; lax
// mode accepts the usual string spellings and 0/1 numbers.
type boolValidator struct {
	leaf
	strict bool
}

func buildBool(schema map[string]any, cfg *Config, bc *BuildContext) (Validator, error) {
	strict, err := schemaOrConfigBool(schema, "strict", cfg.Strict)
	if err != nil {
		return nil, err
	}
	return boolValidator{strict: strict}, nil
}

func (v boolValidator) Validate(input any, ex *Extra, slots []Validator, g *RecursionGuard) (any, error) {
	if b, ok := input.(bool); ok {
		return b, nil
	}
	if !(v.strict || ex.Strict) {
		switch n := input.(type) {
		case string:
			if b, ok := boolFromString(n); ok {
				return b, nil
			}
		case json.Number:
			if b, ok := boolFromString(n.String()); ok {
				return b, nil
			}
		default:
			if i, err := coerceInt(input, false); err == nil && (i == 0 || i == 1) {
				return i == 1, nil
			}
		}
	}
	return nil, Issues{Issue{Path: "/", Code: CodeBoolParsing, Message: msg(CodeBoolParsing), Input: input}}
}

func (v boolValidator) Name() string { return "bool" }

func boolFromString(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on", "1":
		return true, true
	case "false", "no", "off", "0":
		return false, true
	default:
		return false, false
	}
}

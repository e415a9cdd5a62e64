package corval

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// intValidator checks/coerces to int64. Strict mode accepts Go integer types
// and integral json.Number only; lax mode additionally accepts integral
// floats and numeric strings.
type intValidator struct {
	leaf
	strict bool
}

func buildInt(schema map[string]any, cfg *Config, bc *BuildContext) (Validator, error) {
	strict, err := schemaOrConfigBool(schema, "strict", cfg.Strict)
	if err != nil {
		return nil, err
	}
	return intValidator{strict: strict}, nil
}

func (v intValidator) Validate(input any, ex *Extra, slots []Validator, g *RecursionGuard) (any, error) {
	n, err := coerceInt(input, v.strict || ex.Strict)
	if err != nil {
		return nil, Issues{Issue{Path: "/", Code: CodeIntParsing, Message: msg(CodeIntParsing), Input: input, Cause: err}}
	}
	return n, nil
}

func (v intValidator) Name() string { return "int" }

// floatValidator checks/coerces to float64. Strict mode accepts numeric Go
// types and json.Number; lax mode additionally accepts numeric strings.
type floatValidator struct {
	leaf
	strict bool
}

func buildFloat(schema map[string]any, cfg *Config, bc *BuildContext) (Validator, error) {
	strict, err := schemaOrConfigBool(schema, "strict", cfg.Strict)
	if err != nil {
		return nil, err
	}
	return floatValidator{strict: strict}, nil
}

func (v floatValidator) Validate(input any, ex *Extra, slots []Validator, g *RecursionGuard) (any, error) {
	f, err := coerceFloat(input, v.strict || ex.Strict)
	if err != nil {
		return nil, Issues{Issue{Path: "/", Code: CodeFloatParsing, Message: msg(CodeFloatParsing), Input: input, Cause: err}}
	}
	return f, nil
}

func (v floatValidator) Name() string { return "float" }

var errNotNumeric = strconv.ErrSyntax

func coerceInt(v any, strict bool) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint:
		return int64(n), nil
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint64:
		if n > math.MaxInt64 {
			return 0, strconv.ErrRange
		}
		return int64(n), nil
	case json.Number:
		return intFromNumericString(n.String())
	case float64:
		if strict {
			return 0, errNotNumeric
		}
		return intFromFloat(n)
	case float32:
		if strict {
			return 0, errNotNumeric
		}
		return intFromFloat(float64(n))
	case string:
		if strict {
			return 0, errNotNumeric
		}
		return intFromNumericString(strings.TrimSpace(n))
	default:
		return 0, errNotNumeric
	}
}

// intFromNumericString parses "12" and, for json.Number inputs, integral
// float forms like "12.0" or "1e3".
func intFromNumericString(s string) (int64, error) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return intFromFloat(f)
}

func intFromFloat(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, errNotNumeric
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, strconv.ErrRange
	}
	return int64(f), nil
}

func coerceFloat(v any, strict bool) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case json.Number:
		return strconv.ParseFloat(n.String(), 64)
	case string:
		if strict {
			return 0, errNotNumeric
		}
		return strconv.ParseFloat(strings.TrimSpace(n), 64)
	default:
		i, err := coerceInt(v, strict)
		if err != nil {
			return 0, err
		}
		return float64(i), nil
	}
}

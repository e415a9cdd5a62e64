package corval

import (
	"errors"
	"sort"
)

var _ Validator = (*objectValidator)(nil)

// objectField is one declared field of an object schema.
type objectField struct {
	name     string
	v        Validator
	required bool
}

// objectValidator checks map[string]any input against declared fields. It is
// the contract's canonical caller: presence branching happens here. A present
// value goes through the field's Validate; a missing field goes through the
// field's DefaultValue hook with the field name as outer location, and only
// when no default exists does required-field policy apply. A field failing
// with ErrOmit is dropped silently.
type objectValidator struct {
	noDefault
	fields  []objectField
	unknown UnknownPolicy
	name    string
}

func buildObject(schema map[string]any, cfg *Config, bc *BuildContext) (Validator, error) {
	raw, err := schemaMapReq(schema, "fields")
	if err != nil {
		return nil, err
	}
	// deterministic field order, as with sorted known keys elsewhere
	names := make([]string, 0, len(raw))
	for k := range raw {
		names = append(names, k)
	}
	sort.Strings(names)

	v := &objectValidator{name: "object"}
	for _, name := range names {
		fm, ok := raw[name].(map[string]any)
		if !ok {
			return nil, schemaErrf("field %q must be a mapping", name)
		}
		sub, err := schemaMapReq(fm, "schema")
		if err != nil {
			return nil, err
		}
		fv, err := BuildValidator(sub, cfg, bc)
		if err != nil {
			return nil, err
		}
		required, _, err := schemaBool(fm, "required")
		if err != nil {
			return nil, err
		}
		v.fields = append(v.fields, objectField{name: name, v: fv, required: required})
	}

	if pol, ok, err := schemaStr(schema, "unknown"); err != nil {
		return nil, err
	} else if ok {
		switch pol {
		case "strip":
			v.unknown = UnknownStrip
		case "strict":
			v.unknown = UnknownStrict
		case "allow":
			v.unknown = UnknownAllow
		default:
			return nil, schemaErrf("unknown value %q for field %q", pol, "unknown")
		}
	}
	return v, nil
}

func (v *objectValidator) Validate(input any, ex *Extra, slots []Validator, g *RecursionGuard) (any, error) {
	src, ok := input.(map[string]any)
	if !ok {
		return nil, Issues{Issue{Path: "/", Code: CodeDictType, Message: msg(CodeDictType), Input: input}}
	}
	out := make(map[string]any, len(src))
	var iss Issues
	for _, f := range v.fields {
		if val, exists := src[f.name]; exists {
			parsed, err := f.v.Validate(val, ex, slots, g)
			if err != nil {
				if errors.Is(err, ErrOmit) {
					continue
				}
				iss = AppendIssues(iss, prefixIssues(segField(f.name), issuesFromErr("/", err))...)
				if ex.FailFast {
					return nil, iss
				}
				continue
			}
			out[f.name] = parsed
			continue
		}
		dv, has, err := f.v.DefaultValue(f.name, ex, slots, g)
		if err != nil {
			if errors.Is(err, ErrOmit) {
				continue
			}
			// DefaultValue already prefixed the outer location.
			iss = AppendIssues(iss, issuesFromErr(segField(f.name), err)...)
			if ex.FailFast {
				return nil, iss
			}
			continue
		}
		if has {
			out[f.name] = dv
			continue
		}
		if f.required {
			iss = AppendIssues(iss, Issue{Path: segField(f.name), Code: CodeRequired, Message: msg(CodeRequired)})
			if ex.FailFast {
				return nil, iss
			}
		}
	}

	if v.unknown != UnknownStrip {
		known := make(map[string]struct{}, len(v.fields))
		for _, f := range v.fields {
			known[f.name] = struct{}{}
		}
		extras := make([]string, 0)
		for k := range src {
			if _, ok := known[k]; !ok {
				extras = append(extras, k)
			}
		}
		sort.Strings(extras)
		for _, k := range extras {
			switch v.unknown {
			case UnknownAllow:
				out[k] = src[k]
			case UnknownStrict:
				iss = AppendIssues(iss, Issue{Path: segField(k), Code: CodeUnknownKey, Message: msg(CodeUnknownKey), Input: src[k]})
				if ex.FailFast {
					return nil, iss
				}
			}
		}
	}

	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func (v *objectValidator) Name() string { return v.name }

func (v *objectValidator) Ask(q Question) bool { return false }

func (v *objectValidator) Complete(bc *BuildContext) error {
	for _, f := range v.fields {
		if err := f.v.Complete(bc); err != nil {
			return err
		}
	}
	return nil
}

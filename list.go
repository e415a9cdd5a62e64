package corval

import "errors"

var _ Validator = (*listValidator)(nil)

// listValidator checks []any input, validating each element against the item
// validator. Element issues are rebased under the element index; an element
// failing with ErrOmit is dropped silently.
type listValidator struct {
	noDefault
	item   Validator
	minLen int
	maxLen int
	name   string
}

func buildList(schema map[string]any, cfg *Config, bc *BuildContext) (Validator, error) {
	v := &listValidator{minLen: -1, maxLen: -1}
	if raw, ok := schema["items"]; ok {
		m, ok := raw.(map[string]any)
		if !ok {
			return nil, schemaErrf("field %q must be a mapping", "items")
		}
		item, err := BuildValidator(m, cfg, bc)
		if err != nil {
			return nil, err
		}
		v.item = item
	}
	if n, ok, err := schemaInt(schema, "min_length"); err != nil {
		return nil, err
	} else if ok {
		v.minLen = n
	}
	if n, ok, err := schemaInt(schema, "max_length"); err != nil {
		return nil, err
	} else if ok {
		v.maxLen = n
	}
	if v.item != nil {
		v.name = "list[" + v.item.Name() + "]"
	} else {
		v.name = "list[any]"
	}
	return v, nil
}

func (v *listValidator) Validate(input any, ex *Extra, slots []Validator, g *RecursionGuard) (any, error) {
	src, ok := input.([]any)
	if !ok {
		return nil, Issues{Issue{Path: "/", Code: CodeListType, Message: msg(CodeListType), Input: input}}
	}
	out := make([]any, 0, len(src))
	var iss Issues
	for i, el := range src {
		if v.item == nil {
			out = append(out, el)
			continue
		}
		parsed, err := v.item.Validate(el, ex, slots, g)
		if err != nil {
			if errors.Is(err, ErrOmit) {
				continue
			}
			iss = AppendIssues(iss, prefixIssues(segIndex(i), issuesFromErr("/", err))...)
			if ex.FailFast {
				return nil, iss
			}
			continue
		}
		out = append(out, parsed)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	if v.minLen >= 0 && len(out) < v.minLen {
		return nil, Issues{Issue{Path: "/", Code: CodeTooShort, Message: msg(CodeTooShort), Input: input, Params: map[string]any{"min": v.minLen, "got": len(out)}}}
	}
	if v.maxLen >= 0 && len(out) > v.maxLen {
		return nil, Issues{Issue{Path: "/", Code: CodeTooLong, Message: msg(CodeTooLong), Input: input, Params: map[string]any{"max": v.maxLen, "got": len(out)}}}
	}
	return out, nil
}

func (v *listValidator) Name() string { return v.name }

func (v *listValidator) Ask(q Question) bool { return false }

func (v *listValidator) Complete(bc *BuildContext) error {
	if v.item == nil {
		return nil
	}
	return v.item.Complete(bc)
}

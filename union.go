package corval

import (
	"errors"
	"strings"
)

var _ Validator = (*unionValidator)(nil)

// unionValidator tries each choice in declaration order and returns the
// first success. When every choice fails, the report carries each branch's
// issues rebased under the branch name.
type unionValidator struct {
	noDefault
	choices []Validator
	name    string
}

func buildUnion(schema map[string]any, cfg *Config, bc *BuildContext) (Validator, error) {
	raw, ok, err := schemaSlice(schema, "choices")
	if err != nil {
		return nil, err
	}
	if !ok || len(raw) == 0 {
		return nil, schemaErrf("missing required field %q", "choices")
	}
	v := &unionValidator{}
	names := make([]string, 0, len(raw))
	for _, c := range raw {
		m, ok := c.(map[string]any)
		if !ok {
			return nil, schemaErrf("field %q must be a list of mappings", "choices")
		}
		cv, err := BuildValidator(m, cfg, bc)
		if err != nil {
			return nil, err
		}
		v.choices = append(v.choices, cv)
		names = append(names, cv.Name())
	}
	v.name = "union[" + strings.Join(names, ",") + "]"
	return v, nil
}

func (v *unionValidator) Validate(input any, ex *Extra, slots []Validator, g *RecursionGuard) (any, error) {
	iss := Issues{Issue{Path: "/", Code: CodeUnionNoMatch, Message: msg(CodeUnionNoMatch), Input: input}}
	for _, c := range v.choices {
		out, err := c.Validate(input, ex, slots, g)
		if err == nil {
			return out, nil
		}
		if errors.Is(err, ErrOmit) {
			return nil, err
		}
		iss = AppendIssues(iss, prefixIssues(segField(c.Name()), issuesFromErr("/", err))...)
	}
	return nil, iss
}

func (v *unionValidator) Name() string { return v.name }

// Ask reports true when any branch does.
func (v *unionValidator) Ask(q Question) bool {
	for _, c := range v.choices {
		if c.Ask(q) {
			return true
		}
	}
	return false
}

func (v *unionValidator) Complete(bc *BuildContext) error {
	for _, c := range v.choices {
		if err := c.Complete(bc); err != nil {
			return err
		}
	}
	return nil
}

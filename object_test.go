package corval_test

import (
	"context"
	"testing"

	corval "github.com/mkondo/corval"
)

func userSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"fields": map[string]any{
			"name": map[string]any{
				"schema":   map[string]any{"type": "str"},
				"required": true,
			},
			"age": map[string]any{
				"schema": map[string]any{
					"type":    "default",
					"default": 18,
					"schema":  map[string]any{"type": "int"},
				},
			},
			"nick": map[string]any{
				"schema": map[string]any{"type": "str"},
			},
		},
	}
}

func TestObject_AppliesDefaultsForMissingFields(t *testing.T) {
	sv, err := corval.Compile(userSchema(), nil)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	out, err := sv.Parse(context.Background(), map[string]any{"name": "ada"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	m := out.(map[string]any)
	if m["name"] != "ada" || m["age"] != 18 {
		t.Fatalf("got %v", m)
	}
	if _, ok := m["nick"]; ok {
		t.Fatalf("optional field without default must be absent")
	}
}

func TestObject_RequiredFieldMissing(t *testing.T) {
	sv, err := corval.Compile(userSchema(), nil)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	_, err = sv.Parse(context.Background(), map[string]any{})
	iss, ok := corval.AsIssues(err)
	if !ok {
		t.Fatalf("expected issues, got %v", err)
	}
	if iss[0].Path != "/name" || iss[0].Code != corval.CodeRequired {
		t.Fatalf("got %v", iss[0])
	}
}

func TestObject_RebasesFieldIssues(t *testing.T) {
	sv, err := corval.Compile(map[string]any{
		"type": "object",
		"fields": map[string]any{
			"items": map[string]any{
				"schema": map[string]any{
					"type":  "list",
					"items": map[string]any{"type": "int"},
				},
				"required": true,
			},
		},
	}, nil)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	_, err = sv.Parse(context.Background(), map[string]any{"items": []any{1, "x", 3}})
	iss, ok := corval.AsIssues(err)
	if !ok {
		t.Fatalf("expected issues, got %v", err)
	}
	if iss[0].Path != "/items/1" || iss[0].Code != corval.CodeIntParsing {
		t.Fatalf("got %v", iss[0])
	}
}

func TestObject_OmitPolicyDropsFailingField(t *testing.T) {
	sv, err := corval.Compile(map[string]any{
		"type": "object",
		"fields": map[string]any{
			"opt": map[string]any{
				"schema": map[string]any{
					"type":     "default",
					"on_error": "omit",
					"schema":   map[string]any{"type": "int"},
				},
			},
		},
	}, nil)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	out, err := sv.Parse(context.Background(), map[string]any{"opt": "abc"})
	if err != nil {
		t.Fatalf("omit must not surface as an error: %v", err)
	}
	if _, ok := out.(map[string]any)["opt"]; ok {
		t.Fatalf("omitted field must be dropped: %v", out)
	}
}

func TestObject_UnknownPolicies(t *testing.T) {
	base := func(policy string) map[string]any {
		s := map[string]any{
			"type": "object",
			"fields": map[string]any{
				"a": map[string]any{"schema": map[string]any{"type": "int"}},
			},
		}
		if policy != "" {
			s["unknown"] = policy
		}
		return s
	}
	in := map[string]any{"a": 1, "zz": true}

	// default strips
	sv, _ := corval.Compile(base(""), nil)
	out, err := sv.Parse(context.Background(), in)
	if err != nil {
		t.Fatalf("strip: %v", err)
	}
	if _, ok := out.(map[string]any)["zz"]; ok {
		t.Fatalf("strip must drop unknown keys")
	}

	sv, _ = corval.Compile(base("allow"), nil)
	out, err = sv.Parse(context.Background(), in)
	if err != nil {
		t.Fatalf("allow: %v", err)
	}
	if out.(map[string]any)["zz"] != true {
		t.Fatalf("allow must preserve unknown keys")
	}

	sv, _ = corval.Compile(base("strict"), nil)
	_, err = sv.Parse(context.Background(), in)
	iss, ok := corval.AsIssues(err)
	if !ok || iss[0].Path != "/zz" || iss[0].Code != corval.CodeUnknownKey {
		t.Fatalf("strict must reject unknown keys, got %v", err)
	}
}

func TestObject_NonMappingInput(t *testing.T) {
	sv, _ := corval.Compile(userSchema(), nil)
	_, err := sv.Parse(context.Background(), []any{1})
	iss, ok := corval.AsIssues(err)
	if !ok || iss[0].Code != corval.CodeDictType {
		t.Fatalf("got %v", err)
	}
}

func TestObject_FailFastStopsAtFirstIssue(t *testing.T) {
	sv, err := corval.Compile(map[string]any{
		"type": "object",
		"fields": map[string]any{
			"a": map[string]any{"schema": map[string]any{"type": "int"}, "required": true},
			"b": map[string]any{"schema": map[string]any{"type": "int"}, "required": true},
		},
	}, &corval.Config{FailFast: true})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	_, err = sv.Parse(context.Background(), map[string]any{"a": "x", "b": "y"})
	iss, ok := corval.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("fail-fast should stop at the first issue, got %v", err)
	}
}

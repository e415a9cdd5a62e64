package corval_test

import (
	"context"
	"testing"

	corval "github.com/mkondo/corval"
)

func TestUnion_FirstMatchWins(t *testing.T) {
	sv, err := corval.Compile(map[string]any{
		"type": "union",
		"choices": []any{
			map[string]any{"type": "int", "strict": true},
			map[string]any{"type": "str"},
		},
	}, nil)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	out, err := sv.Parse(context.Background(), 5)
	if err != nil || out != int64(5) {
		t.Fatalf("got %v %v", out, err)
	}
	// strict int refuses "5", so the str branch takes it verbatim
	out, err = sv.Parse(context.Background(), "5")
	if err != nil || out != "5" {
		t.Fatalf("got %v %v", out, err)
	}
}

func TestUnion_ReportsEveryBranch(t *testing.T) {
	sv, err := corval.Compile(map[string]any{
		"type": "union",
		"choices": []any{
			map[string]any{"type": "int", "strict": true},
			map[string]any{"type": "bool", "strict": true},
		},
	}, nil)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	_, err = sv.Parse(context.Background(), []any{})
	iss, ok := corval.AsIssues(err)
	if !ok {
		t.Fatalf("expected issues, got %v", err)
	}
	if iss[0].Code != corval.CodeUnionNoMatch || iss[0].Path != "/" {
		t.Fatalf("got %v", iss[0])
	}
	if len(iss) != 3 {
		t.Fatalf("expected one issue per branch plus the summary, got %d", len(iss))
	}
}

func TestUnion_EmptyChoicesFailsBuild(t *testing.T) {
	if _, err := corval.Compile(map[string]any{"type": "union", "choices": []any{}}, nil); err == nil {
		t.Fatalf("expected build error")
	}
}

func TestNullable_PassesNilThrough(t *testing.T) {
	sv, err := corval.Compile(map[string]any{
		"type":   "nullable",
		"schema": map[string]any{"type": "int"},
	}, nil)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	out, err := sv.Parse(context.Background(), nil)
	if err != nil || out != nil {
		t.Fatalf("got %v %v", out, err)
	}
	out, err = sv.Parse(context.Background(), "3")
	if err != nil || out != int64(3) {
		t.Fatalf("got %v %v", out, err)
	}
	if sv.Name() != "nullable[int]" {
		t.Fatalf("got %q", sv.Name())
	}
	if !sv.Ask(corval.QAllowsNull) {
		t.Fatalf("nullable must answer QAllowsNull")
	}
}

func TestNullable_ForwardsDefaultHook(t *testing.T) {
	sv, err := corval.Compile(map[string]any{
		"type": "object",
		"fields": map[string]any{
			"n": map[string]any{
				"schema": map[string]any{
					"type": "nullable",
					"schema": map[string]any{
						"type":    "default",
						"default": 1,
						"schema":  map[string]any{"type": "int"},
					},
				},
			},
		},
	}, nil)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	out, err := sv.Parse(context.Background(), map[string]any{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if out.(map[string]any)["n"] != 1 {
		t.Fatalf("nullable must forward DefaultValue to its inner validator: %v", out)
	}
}

package corval_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	corval "github.com/mkondo/corval"
)

func TestCompile_UnknownKindFailsBuild(t *testing.T) {
	_, err := corval.Compile(map[string]any{"type": "frobnicate"}, nil)
	if err == nil || !errors.Is(err, corval.ErrSchema) {
		t.Fatalf("expected ErrSchema, got %v", err)
	}
	if want := "frobnicate"; !strings.Contains(err.Error(), want) {
		t.Fatalf("error should name the offending kind: %v", err)
	}
}

func TestCompile_MissingDiscriminatorFailsBuild(t *testing.T) {
	_, err := corval.Compile(map[string]any{}, nil)
	if err == nil || !errors.Is(err, corval.ErrSchema) {
		t.Fatalf("expected ErrSchema, got %v", err)
	}
}

func TestCompile_UnresolvedReferenceFailsBuild(t *testing.T) {
	_, err := corval.Compile(map[string]any{
		"type":       "definition-ref",
		"schema_ref": "nowhere",
	}, nil)
	if err == nil || !errors.Is(err, corval.ErrSchema) {
		t.Fatalf("expected ErrSchema for dangling ref, got %v", err)
	}
	if !strings.Contains(err.Error(), "nowhere") {
		t.Fatalf("error should name the dangling reference: %v", err)
	}
}

func TestCompile_DuplicateDefinitionFailsBuild(t *testing.T) {
	_, err := corval.Compile(map[string]any{
		"type": "definitions",
		"definitions": []any{
			map[string]any{"type": "int", "ref": "n"},
			map[string]any{"type": "str", "ref": "n"},
		},
		"schema": map[string]any{"type": "definition-ref", "schema_ref": "n"},
	}, nil)
	if err == nil || !errors.Is(err, corval.ErrSchema) {
		t.Fatalf("expected ErrSchema for duplicate definition, got %v", err)
	}
}

func TestSchemaOrConfig_SchemaWinsOverConfig(t *testing.T) {
	// validate_default=false in the schema must override the ambient true.
	schema := map[string]any{
		"type":             "default",
		"default":          "zzz",
		"validate_default": false,
		"schema":           map[string]any{"type": "int"},
	}
	sv, err := corval.Compile(map[string]any{
		"type":   "object",
		"fields": map[string]any{"n": map[string]any{"schema": schema}},
	}, &corval.Config{ValidateDefault: true})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	out, err := sv.Parse(context.Background(), map[string]any{})
	if err != nil {
		t.Fatalf("expected the unvalidated default to pass through, got %v", err)
	}
	if out.(map[string]any)["n"] != "zzz" {
		t.Fatalf("got %v", out)
	}
}

func TestSchemaOrConfig_ConfigAppliesWhenSchemaSilent(t *testing.T) {
	schema := map[string]any{
		"type":    "default",
		"default": "zzz",
		"schema":  map[string]any{"type": "int"},
	}
	sv, err := corval.Compile(map[string]any{
		"type":   "object",
		"fields": map[string]any{"n": map[string]any{"schema": schema}},
	}, &corval.Config{ValidateDefault: true})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	_, err = sv.Parse(context.Background(), map[string]any{})
	iss, ok := corval.AsIssues(err)
	if !ok {
		t.Fatalf("expected the ambient validate_default to reject the default, got %v", err)
	}
	if iss[0].Path != "/n" {
		t.Fatalf("expected the failure at /n, got %q", iss[0].Path)
	}
}


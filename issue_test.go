package corval_test

import (
	"errors"
	"testing"

	corval "github.com/mkondo/corval"
)

func TestIssues_ErrorSummary(t *testing.T) {
	iss := corval.Issues{
		{Path: "/a", Code: corval.CodeIntParsing},
		{Path: "/b", Code: corval.CodeRequired},
		{Path: "/c", Code: corval.CodeTooShort},
		{Path: "/d", Code: corval.CodeTooLong},
	}
	s := iss.Error()
	if s == "" {
		t.Fatalf("expected non-empty error summary")
	}
	// only the first few are shown, the rest is counted
	if want := "int_parsing at /a"; len(s) < len(want) || s[:len(want)] != want {
		t.Fatalf("unexpected summary: %q", s)
	}
}

func TestAppendIssues_InitializesNil(t *testing.T) {
	var iss corval.Issues
	iss = corval.AppendIssues(iss, corval.Issue{Path: "/", Code: corval.CodeRequired})
	if len(iss) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(iss))
	}
}

func TestAsIssues_ExtractsWrapped(t *testing.T) {
	var err error = corval.Issues{{Path: "/x", Code: corval.CodeDictType}}
	iss, ok := corval.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Path != "/x" {
		t.Fatalf("expected extraction, got %v %v", iss, ok)
	}
	if _, ok := corval.AsIssues(errors.New("plain")); ok {
		t.Fatalf("plain errors must not match Issues")
	}
}

func TestErrOmit_IsNotIssues(t *testing.T) {
	if _, ok := corval.AsIssues(corval.ErrOmit); ok {
		t.Fatalf("ErrOmit must never be interpreted as Issues")
	}
	if !errors.Is(corval.ErrOmit, corval.ErrOmit) {
		t.Fatalf("ErrOmit must match itself via errors.Is")
	}
}

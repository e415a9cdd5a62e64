package corval

import "testing"

func TestEscapeToken_RFC6901(t *testing.T) {
	if got := escapeToken("a/b~c"); got != "a~1b~0c" {
		t.Fatalf("unexpected escape: %q", got)
	}
}

func TestPrefixIssues_Rebase(t *testing.T) {
	child := Issues{
		{Path: "/", Code: CodeIntParsing},
		{Path: "/0", Code: CodeIntParsing},
		{Path: "name", Code: CodeRequired},
	}
	out := prefixIssues(segField("items"), child)
	want := []string{"/items", "/items/0", "/items/name"}
	for i, p := range want {
		if out[i].Path != p {
			t.Fatalf("issue %d: got %q want %q", i, out[i].Path, p)
		}
	}
}

func TestWithOuterLocation(t *testing.T) {
	err := withOuterLocation(Issues{{Path: "/0", Code: CodeIntParsing}}, "field")
	iss, _ := AsIssues(err)
	if iss[0].Path != "/field/0" {
		t.Fatalf("got %q", iss[0].Path)
	}

	// nil location leaves the chain alone
	err = withOuterLocation(Issues{{Path: "/0", Code: CodeIntParsing}}, nil)
	iss, _ = AsIssues(err)
	if iss[0].Path != "/0" {
		t.Fatalf("got %q", iss[0].Path)
	}

	// the omit sentinel passes through untouched
	if got := withOuterLocation(ErrOmit, "field"); got != ErrOmit {
		t.Fatalf("ErrOmit must not be rebased")
	}
}

func TestSegOf_IndexAndField(t *testing.T) {
	if segOf(2) != "/2" || segOf("a/b") != "/a~1b" || segOf(nil) != "" {
		t.Fatalf("unexpected segments: %q %q %q", segOf(2), segOf("a/b"), segOf(nil))
	}
}

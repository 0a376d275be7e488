package pdf

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValueZero(t *testing.T) {
	var v Value
	if !v.IsNull() || v.Kind() != NullKind {
		t.Error("zero Value is not null")
	}
}

func TestValueAccessors(t *testing.T) {
	v, _ := parseAll(t, "<< /N 3 /Flag true /Title (hi) /Font /F1 /Kids [1 0 R] /Next 9 2 R >>")

	if got := v.Kind(); got != DictKind {
		t.Fatalf("Kind = %v, want DictKind", got)
	}
	if got := v.Key("N").Float64(); got != 3 {
		t.Errorf("N = %v, want 3", got)
	}
	if got := v.Key("N").Int64(); got != 3 {
		t.Errorf("N as int = %v, want 3", got)
	}
	if !v.Key("Flag").Bool() {
		t.Error("Flag = false, want true")
	}
	if got := v.Key("Title").RawString(); got != "hi" {
		t.Errorf("Title = %q, want hi", got)
	}
	if got := v.Key("Font").Name(); got != "F1" {
		t.Errorf("Font = %q, want F1", got)
	}
	if got := v.Key("Next").Link(); got != (Ref{Num: 9, Gen: 2}) {
		t.Errorf("Next = %v, want 9 2 R", got)
	}

	kids := v.Key("Kids")
	if kids.Len() != 1 || kids.Index(0).Kind() != LinkKind {
		t.Errorf("Kids = %v, want a one-element array of links", kids)
	}
	if !kids.Index(1).IsNull() || !kids.Index(-1).IsNull() {
		t.Error("out-of-bounds Index is not null")
	}

	// Key does not dereference: the link stays a link.
	if got := v.Key("Kids").Index(0).Key("Type"); !got.IsNull() {
		t.Errorf("Key on a link = %v, want null", got)
	}

	want := []string{"Flag", "Font", "Kids", "N", "Next", "Title"}
	if diff := cmp.Diff(v.Keys(), want); diff != "" {
		t.Error("Keys didn't match expectation:", diff)
	}

	if got := v.Key("Missing"); !got.IsNull() {
		t.Errorf("missing key = %v, want null", got)
	}
}

// Accessors return zero values on kind mismatch.
func TestValueAccessorMismatch(t *testing.T) {
	v, _ := parseAll(t, "(text)")
	if v.Bool() || v.Float64() != 0 || v.Int64() != 0 || v.Name() != "" ||
		v.Link() != (Ref{}) || v.Len() != 0 || v.Keys() != nil || !v.Key("X").IsNull() {
		t.Error("mismatched accessors returned non-zero results")
	}
	n, _ := parseAll(t, "42 ")
	if n.RawString() != "" || n.Text() != "" {
		t.Error("string accessors on a number returned non-zero results")
	}
}

func TestValueString(t *testing.T) {
	testCases := map[string]struct {
		input string
		want  string
	}{
		"null":   {"null ", "null"},
		"bool":   {"false ", "false"},
		"number": {"2.5 ", "2.5"},
		"name":   {"/Pages ", "/Pages"},
		"link":   {"3 0 R", "3 0 R"},
		"string": {"(hi)", `"hi"`},
		"array":  {"[1 /A]", "[1 /A]"},
		"dict":   {"<</B 2/A 1>>", "<</A 1 /B 2>>"},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			v, _ := parseAll(t, tc.input)
			if got := v.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestValueText(t *testing.T) {
	// UTF-16 big-endian "Ab" behind a byte order mark.
	v, _ := parseAll(t, "<FEFF00410062>")
	if got := v.Text(); got != "Ab" {
		t.Errorf("Text = %q, want Ab", got)
	}
	if got := v.RawString(); got != "\xfe\xff\x00A\x00b" {
		t.Errorf("RawString = %q", got)
	}
}

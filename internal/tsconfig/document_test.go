package tsconfig

import (
	"errors"
	"strings"
	"testing"
)

func TestParsePreservesKeyOrder(t *testing.T) {
	doc, err := Parse(`{"zeta": 1, "alpha": {"m": true, "b": null}, "mid": [1, "x"]}`)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	want := []string{"zeta", "alpha", "mid"}
	got := doc.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	nested, ok := doc.Get("alpha")
	if !ok {
		t.Fatal("missing key alpha")
	}
	obj, ok := nested.(*Object)
	if !ok {
		t.Fatalf("alpha is %T, want *Object", nested)
	}
	if obj.Keys()[0] != "m" || obj.Keys()[1] != "b" {
		t.Errorf("nested keys = %v, want [m b]", obj.Keys())
	}
}

func TestParseRejectsNonObject(t *testing.T) {
	for _, in := range []string{`[1, 2]`, `"text"`, `42`, `true`} {
		if _, err := Parse(in); !errors.Is(err, ErrMalformed) {
			t.Errorf("Parse(%q) error = %v, want ErrMalformed", in, err)
		}
	}
}

func TestParseRejectsTrailingContent(t *testing.T) {
	if _, err := Parse(`{"a": 1} {"b": 2}`); !errors.Is(err, ErrMalformed) {
		t.Errorf("expected ErrMalformed for trailing content, got %v", err)
	}
}

func TestParseReportsOffset(t *testing.T) {
	_, err := Parse(`{"a": }`)
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("error = %v, want ErrMalformed", err)
	}
	// The message must carry enough context to locate the problem.
	msg := err.Error()
	if !strings.Contains(msg, "byte") || !strings.Contains(msg, `"a"`) {
		t.Errorf("error message lacks offset or snippet: %s", msg)
	}
}

func TestSerialize(t *testing.T) {
	doc, err := Parse(`{"name": "app", "count": 3, "opts": {"strict": true}, "tags": ["a", "b"], "empty": {}, "none": null}`)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	want := `{
  "name": "app",
  "count": 3,
  "opts": {
    "strict": true
  },
  "tags": [
    "a",
    "b"
  ],
  "empty": {},
  "none": null
}
`
	got := string(doc.Serialize())
	if got != want {
		t.Errorf("Serialize() =\n%s\nwant:\n%s", got, want)
	}
}

func TestSerializeKeepsNumberForm(t *testing.T) {
	doc, err := Parse(`{"a": 1.50, "b": 1e3}`)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	got := string(doc.Serialize())
	if !strings.Contains(got, "1.50") || !strings.Contains(got, "1e3") {
		t.Errorf("number literals not preserved:\n%s", got)
	}
}

func TestSerializeParseRoundTrip(t *testing.T) {
	in := `{"a": {"b": [1, {"c": "d"}]}, "e": false}`
	doc, err := Parse(in)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	once := doc.Serialize()

	doc2, err := Parse(string(once))
	if err != nil {
		t.Fatalf("reparse error: %v", err)
	}
	twice := doc2.Serialize()

	if string(once) != string(twice) {
		t.Errorf("round trip not stable:\n%s\nvs\n%s", once, twice)
	}
}

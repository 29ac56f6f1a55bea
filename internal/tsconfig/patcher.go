package tsconfig

import (
	"errors"
	"fmt"
	"os"
)

// Injected compiler options. The paths map is replaced wholesale on every
// patch (last writer wins), never merged entry-by-entry.
const (
	BaseURL     = "."
	AliasPrefix = "@/*"
	AliasTarget = "./src/*"
)

// Sentinel errors for the patch pipeline. All are fatal to the caller;
// a malformed or unwritable config cannot be recovered without operator
// intervention.
var (
	ErrNotFound  = errors.New("config file not found")
	ErrMalformed = errors.New("malformed config")
	ErrWrite     = errors.New("config write failed")
)

// Patch transforms raw tsconfig bytes: strips comments and trailing commas,
// parses, injects the path alias, and re-serializes as canonical JSON.
// Patching is idempotent and touches no keys other than
// compilerOptions.baseUrl and compilerOptions.paths.
func Patch(raw []byte) ([]byte, error) {
	text := StripTrailingCommas(StripComments(string(raw)))

	doc, err := Parse(text)
	if err != nil {
		return nil, err
	}

	InjectPathAlias(doc)
	return doc.Serialize(), nil
}

// InjectPathAlias sets compilerOptions.baseUrl and compilerOptions.paths on
// doc, creating compilerOptions if absent. A compilerOptions value that is
// not an object is replaced with a fresh one.
func InjectPathAlias(doc *Object) {
	var opts *Object
	if v, ok := doc.Get("compilerOptions"); ok {
		opts, _ = v.(*Object)
	}
	if opts == nil {
		opts = NewObject()
		doc.Set("compilerOptions", opts)
	}

	opts.Set("baseUrl", BaseURL)

	paths := NewObject()
	paths.Set(AliasPrefix, []any{AliasTarget})
	opts.Set("paths", paths)
}

// PatchFile reads, patches, and overwrites the config file at path. The
// serialized result is built fully in memory before the write so a failure
// never leaves a truncated file behind a successful parse.
func PatchFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}

	out, err := Patch(raw)
	if err != nil {
		return fmt.Errorf("patching %s: %w", path, err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	return nil
}

// malformed wraps ErrMalformed with the byte offset and a window of the
// stripped text. Stripping is lossy, so the snippet shows what the parser
// actually saw.
func malformed(text string, offset int64, cause error) error {
	start := offset - 40
	if start < 0 {
		start = 0
	}
	end := offset + 40
	if end > int64(len(text)) {
		end = int64(len(text))
	}
	return fmt.Errorf("%w: %v (at byte %d, near %q)", ErrMalformed, cause, offset, text[start:end])
}

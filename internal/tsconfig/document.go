package tsconfig

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Object is a JSON object that remembers key insertion order. Values are
// *Object for nested objects, []any for arrays, and json.Number, string,
// bool, or nil for scalars.
type Object struct {
	keys   []string
	values map[string]any
}

// NewObject returns an empty ordered object.
func NewObject() *Object {
	return &Object{values: make(map[string]any)}
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Set stores value under key, appending the key if it is new.
func (o *Object) Set(key string, value any) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	return o.keys
}

// Len returns the number of keys.
func (o *Object) Len() int {
	return len(o.keys)
}

// Parse decodes strict JSON text into an ordered document. The top-level
// value must be an object. Any syntax error is reported as ErrMalformed
// with the byte offset and a snippet of the text that survived stripping.
func Parse(text string) (*Object, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, malformed(text, dec.InputOffset(), err)
	}

	obj, ok := v.(*Object)
	if !ok {
		return nil, malformed(text, 0, fmt.Errorf("top-level value is not an object"))
	}

	// Anything after the first value is garbage.
	if _, err := dec.Token(); err != io.EOF {
		return nil, malformed(text, dec.InputOffset(), fmt.Errorf("unexpected trailing content"))
	}

	return obj, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		// Scalar: string, json.Number, bool, or nil.
		return tok, nil
	}

	switch delim {
	case '{':
		obj := NewObject()
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("object key is not a string: %v", keyTok)
			}
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			obj.Set(key, val)
		}
		if _, err := dec.Token(); err != nil { // consume '}'
			return nil, err
		}
		return obj, nil

	case '[':
		arr := []any{}
		for dec.More() {
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		if _, err := dec.Token(); err != nil { // consume ']'
			return nil, err
		}
		return arr, nil
	}

	return nil, fmt.Errorf("unexpected delimiter %v", delim)
}

// Serialize renders the document as 2-space indented JSON with keys in
// insertion order, terminated by a single newline.
func (o *Object) Serialize() []byte {
	var buf bytes.Buffer
	writeValue(&buf, o, 0)
	buf.WriteByte('\n')
	return buf.Bytes()
}

func writeValue(buf *bytes.Buffer, v any, depth int) {
	switch val := v.(type) {
	case *Object:
		if val.Len() == 0 {
			buf.WriteString("{}")
			return
		}
		buf.WriteByte('{')
		for i, key := range val.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
			writeIndent(buf, depth+1)
			writeScalar(buf, key)
			buf.WriteString(": ")
			writeValue(buf, val.values[key], depth+1)
		}
		buf.WriteByte('\n')
		writeIndent(buf, depth)
		buf.WriteByte('}')

	case []any:
		if len(val) == 0 {
			buf.WriteString("[]")
			return
		}
		buf.WriteByte('[')
		for i, item := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
			writeIndent(buf, depth+1)
			writeValue(buf, item, depth+1)
		}
		buf.WriteByte('\n')
		writeIndent(buf, depth)
		buf.WriteByte(']')

	case json.Number:
		buf.WriteString(val.String())

	default:
		writeScalar(buf, val)
	}
}

func writeScalar(buf *bytes.Buffer, v any) {
	out, err := json.Marshal(v)
	if err != nil {
		// Only strings, bools, and nil reach here; Marshal cannot fail.
		out = []byte("null")
	}
	buf.Write(out)
}

func writeIndent(buf *bytes.Buffer, depth int) {
	for i := 0; i < depth; i++ {
		buf.WriteString("  ")
	}
}

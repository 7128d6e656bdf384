package waha

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Object is a decoded JSON object from the gateway.
type Object map[string]any

// Result is a decoded response body: either a list of objects or any other
// JSON value. Commands print lists as per-item summaries and fall back to a
// generic structured dump for everything else.
type Result struct {
	list  []Object
	value any
}

// ParseResult decodes a response body. Numbers decode as json.Number so
// timestamps and sizes print the way the gateway sent them.
func ParseResult(r io.Reader) (Result, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			// Some POST endpoints answer 200 with an empty body.
			return Result{}, nil
		}
		return Result{}, fmt.Errorf("decoding response: %w", err)
	}

	arr, ok := v.([]any)
	if !ok {
		return Result{value: v}, nil
	}
	list := make([]Object, 0, len(arr))
	for _, item := range arr {
		obj, ok := item.(map[string]any)
		if !ok {
			// A list of non-objects gets the generic dump instead.
			return Result{value: v}, nil
		}
		list = append(list, Object(obj))
	}
	return Result{list: list, value: v}, nil
}

// List reports the response items when the body was a JSON array of objects.
func (r Result) List() ([]Object, bool) {
	return r.list, r.list != nil
}

// Any returns the decoded body as-is.
func (r Result) Any() any {
	return r.value
}

// Text returns the value of the first present, non-nil key, rendered as a
// string. Missing keys yield "".
func (o Object) Text(keys ...string) string {
	for _, k := range keys {
		v, ok := o[k]
		if !ok || v == nil {
			continue
		}
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprint(v)
	}
	return ""
}

// TextOr is Text with an explicit fallback for when every key is absent.
func (o Object) TextOr(fallback string, keys ...string) string {
	if s := o.Text(keys...); s != "" {
		return s
	}
	return fallback
}

// Truthy reports whether any of the keys holds a truthy value: true, a
// non-empty string, or a non-zero number.
func (o Object) Truthy(keys ...string) bool {
	for _, k := range keys {
		switch v := o[k].(type) {
		case bool:
			if v {
				return true
			}
		case string:
			if v != "" {
				return true
			}
		case json.Number:
			if v.String() != "0" {
				return true
			}
		}
	}
	return false
}

// Child returns a nested object, or an empty one when the key is absent or
// not an object.
func (o Object) Child(key string) Object {
	if m, ok := o[key].(map[string]any); ok {
		return Object(m)
	}
	return Object{}
}

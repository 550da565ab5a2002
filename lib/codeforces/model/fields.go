// Package model contains the typed codeforces entities and the mapper that builds them
// from decoded JSON.
//
// Every entity has a <Entity>FromMap constructor taking the decoded object (numbers may
// be json.Number, float64 or Go integers) and a ToMap method that renders it back with
// snake_case keys. Required fields that are absent fail with a *cferr.MissingFieldError,
// present fields of the wrong JSON type fail with cferr.ErrTypeMismatch. A nil object
// maps to a nil entity without error.
package model

import (
	"encoding/json"
	"fmt"
	"math"

	"codeforces-client/lib/codeforces/cferr"
)

type kind[T any] struct {
	name string
	conv func(any) (T, bool)
}

var (
	kString = kind[string]{name: "string", conv: asString}
	kBool   = kind[bool]{name: "boolean", conv: asBool}
	kInt    = kind[int]{name: "integer", conv: asInt}
	kInt64  = kind[int64]{name: "integer", conv: asInt64}
	kFloat  = kind[float64]{name: "number", conv: asFloat}

	kStrings   = kind[[]string]{name: "string array", conv: asStrings}
	kStringMap = kind[map[string]string]{name: "string map", conv: asStringMap}
	kObject    = kind[map[string]any]{name: "object", conv: asObject}
	kList      = kind[[]any]{name: "array", conv: asList}
)

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case float64:
		if n != math.Trunc(n) || n > math.MaxInt64 || n < math.MinInt64 {
			return 0, false
		}
		return int64(n), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	case int32:
		return int64(n), true
	}
	return 0, false
}

func asInt(v any) (int, bool) {
	i, ok := asInt64(v)
	return int(i), ok
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func asStrings(v any) ([]string, bool) {
	switch list := v.(type) {
	case []string:
		return append([]string{}, list...), true
	case []any:
		out := make([]string, len(list))
		for i, e := range list {
			s, ok := e.(string)
			if !ok {
				return nil, false
			}
			out[i] = s
		}
		return out, true
	}
	return nil, false
}

func asStringMap(v any) (map[string]string, bool) {
	switch m := v.(type) {
	case map[string]string:
		out := make(map[string]string, len(m))
		for k, e := range m {
			out[k] = e
		}
		return out, true
	case map[string]any:
		out := make(map[string]string, len(m))
		for k, e := range m {
			s, ok := e.(string)
			if !ok {
				return nil, false
			}
			out[k] = s
		}
		return out, true
	}
	return nil, false
}

func asObject(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func asList(v any) ([]any, bool) {
	switch list := v.(type) {
	case []any:
		return list, true
	case []map[string]any:
		out := make([]any, len(list))
		for i, e := range list {
			out[i] = e
		}
		return out, true
	}
	return nil, false
}

// fields reads one decoded object, keeping the first error encountered.
type fields struct {
	entity string
	raw    map[string]any
	err    error
}

func newFields(entity string, raw map[string]any) *fields {
	return &fields{entity: entity, raw: raw}
}

func (f *fields) fail(err error) {
	if f.err == nil {
		f.err = err
	}
}

// null is treated the same as an absent key.
func (f *fields) lookup(key string, required bool) (any, bool) {
	v, ok := f.raw[key]
	if !ok || v == nil {
		if required {
			f.fail(&cferr.MissingFieldError{Entity: f.entity, Field: key})
		}
		return nil, false
	}
	return v, true
}

func read[T any](f *fields, key string, k kind[T], required bool) (T, bool) {
	var zero T
	v, ok := f.lookup(key, required)
	if !ok {
		return zero, false
	}
	out, ok := k.conv(v)
	if !ok {
		f.fail(fmt.Errorf(
			"%w: %s.%s is %T, expected %s",
			cferr.ErrTypeMismatch, f.entity, key, v, k.name,
		))
		return zero, false
	}
	return out, true
}

func req[T any](f *fields, key string, k kind[T]) T {
	out, _ := read(f, key, k, true)
	return out
}

func opt[T any](f *fields, key string, k kind[T]) *T {
	out, ok := read(f, key, k, false)
	if !ok {
		return nil
	}
	return &out
}

func reqObject[T any](f *fields, key string, fn func(map[string]any) (*T, error)) T {
	var zero T
	raw, ok := read(f, key, kObject, true)
	if !ok {
		return zero
	}
	out, err := fn(raw)
	if err != nil {
		f.fail(err)
		return zero
	}
	return *out
}

func optObject[T any](f *fields, key string, fn func(map[string]any) (*T, error)) *T {
	raw, ok := read(f, key, kObject, false)
	if !ok {
		return nil
	}
	out, err := fn(raw)
	if err != nil {
		f.fail(err)
		return nil
	}
	return out
}

func listOf[T any](f *fields, key string, fn func(map[string]any) (*T, error), required bool) []T {
	raw, ok := read(f, key, kList, required)
	if !ok {
		return nil
	}
	out, err := mapList(f.entity+"."+key, raw, fn)
	if err != nil {
		f.fail(err)
		return nil
	}
	return out
}

func mapList[T any](name string, raw []any, fn func(map[string]any) (*T, error)) ([]T, error) {
	out := make([]T, 0, len(raw))
	for i, e := range raw {
		obj, ok := e.(map[string]any)
		if !ok {
			return nil, fmt.Errorf(
				"%w: %s[%d] is %T, expected object",
				cferr.ErrTypeMismatch, name, i, e,
			)
		}
		entity, err := fn(obj)
		if err != nil {
			return nil, err
		}
		out = append(out, *entity)
	}
	return out, nil
}

// MapList maps every element of a decoded JSON array, preserving order.
func MapList[T any](name string, raw []any, fn func(map[string]any) (*T, error)) ([]T, error) {
	return mapList(name, raw, fn)
}

func setOpt[T any](m map[string]any, key string, v *T) {
	if v != nil {
		m[key] = *v
	}
}

type mappable interface {
	ToMap() map[string]any
}

func toMaps[T mappable](list []T) []map[string]any {
	out := make([]map[string]any, len(list))
	for i, e := range list {
		out[i] = e.ToMap()
	}
	return out
}

package signer

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Value is a request field: a scalar or an ordered list of scalars.
type Value struct {
	items []string
}

func String(s string) Value {
	return Value{items: []string{s}}
}

func Int(i int) Value {
	return String(strconv.Itoa(i))
}

func Bool(b bool) Value {
	return String(strconv.FormatBool(b))
}

// List keeps items in the given order.
func List(items ...string) Value {
	copied := make([]string, len(items))
	copy(copied, items)
	return Value{items: copied}
}

// String renders the value the way it is hashed and transmitted, lists are joined with ';'.
func (v Value) String() string {
	return strings.Join(v.items, ";")
}

// Fields is the caller supplied, unordered field set of a single request.
type Fields map[string]Value

type Param struct {
	Key   string
	Value string
}

// Params is an ordered parameter set. The order is the order the parameters are
// hashed in and the order they are transmitted in.
type Params []Param

func sortedParams(fields Fields) Params {
	params := make(Params, 0, len(fields))
	for k, v := range fields {
		params = append(params, Param{Key: k, Value: v.String()})
	}
	// byte-wise comparison of keys, the remote verifier does the same
	sort.Slice(params, func(i, j int) bool {
		return params[i].Key < params[j].Key
	})
	return params
}

// Get returns the value of the first parameter named key.
func (p Params) Get(key string) (string, bool) {
	for _, param := range p {
		if param.Key == key {
			return param.Value, true
		}
	}
	return "", false
}

// Raw renders "k=v&k=v" without escaping, this is the form that gets hashed.
func (p Params) Raw() string {
	var out strings.Builder
	for i, param := range p {
		if i > 0 {
			out.WriteByte('&')
		}
		out.WriteString(param.Key)
		out.WriteByte('=')
		out.WriteString(param.Value)
	}
	return out.String()
}

// Encode renders the parameters as application/x-www-form-urlencoded, preserving order.
// url.Values is not used since its Encode re-sorts and groups by key.
func (p Params) Encode() string {
	var out strings.Builder
	for i, param := range p {
		if i > 0 {
			out.WriteByte('&')
		}
		out.WriteString(url.QueryEscape(param.Key))
		out.WriteByte('=')
		out.WriteString(url.QueryEscape(param.Value))
	}
	return out.String()
}

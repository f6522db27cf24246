package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind identifies the concrete type carried by a Value.
type Kind int

const (
	KindBool Kind = iota
	KindNumber
	KindString
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindList:
		return "list"
	}
	return "unknown"
}

// Value is a submitted answer value. It holds exactly one of a boolean,
// a number, a string or a list of strings, matching the payloads the
// intake client sends for each answer type.
type Value struct {
	kind Kind
	b    bool
	num  float64
	str  string
	list []string
}

func BoolValue(b bool) Value          { return Value{kind: KindBool, b: b} }
func NumberValue(n float64) Value     { return Value{kind: KindNumber, num: n} }
func StringValue(s string) Value      { return Value{kind: KindString, str: s} }
func ListValue(items ...string) Value { return Value{kind: KindList, list: items} }

func (v Value) Kind() Kind     { return v.kind }
func (v Value) Bool() bool     { return v.b }
func (v Value) Number() float64 { return v.num }
func (v Value) Str() string    { return v.str }

// List returns the selected options in the order the client sent them.
func (v Value) List() []string { return v.list }

// Key returns the canonical string form used to look up a branch in the
// flow graph. Lists have no single key; use Keys instead.
func (v Value) Key() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindString:
		return v.str
	}
	return ""
}

// Keys returns every branch key this value can match, preserving the
// client's selection order for multi-choice answers.
func (v Value) Keys() []string {
	if v.kind == KindList {
		return v.list
	}
	return []string{v.Key()}
}

// AsNumber coerces the value to a float64 when possible. Strings are
// parsed, booleans and lists never coerce.
func (v Value) AsNumber() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.num, true
	case KindString:
		n, err := strconv.ParseFloat(v.str, 64)
		return n, err == nil
	}
	return 0, false
}

// Truthy reports whether the value counts as an affirmative answer.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindBool:
		return v.b
	case KindString:
		switch v.str {
		case "Sí", "Si", "true", "True":
			return true
		}
	}
	return false
}

func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.b == o.b
	case KindNumber:
		return v.num == o.num
	case KindString:
		return v.str == o.str
	case KindList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if v.list[i] != o.list[i] {
				return false
			}
		}
		return true
	}
	return false
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindBool:
		return json.Marshal(v.b)
	case KindNumber:
		return json.Marshal(v.num)
	case KindString:
		return json.Marshal(v.str)
	case KindList:
		if v.list == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.list)
	}
	return nil, fmt.Errorf("catalog: cannot marshal value of kind %d", v.kind)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch t := raw.(type) {
	case bool:
		*v = BoolValue(t)
	case float64:
		*v = NumberValue(t)
	case string:
		*v = StringValue(t)
	case []interface{}:
		items := make([]string, 0, len(t))
		for _, e := range t {
			s, ok := e.(string)
			if !ok {
				return fmt.Errorf("catalog: list answers must contain strings, got %T", e)
			}
			items = append(items, s)
		}
		*v = ListValue(items...)
	default:
		return fmt.Errorf("catalog: unsupported answer value %T", raw)
	}
	return nil
}

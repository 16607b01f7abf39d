package domain

import (
	"encoding/json"
	"fmt"
)

// ValueKind discriminates the variants of Value.
type ValueKind string

const (
	ValueString ValueKind = "string"
	ValueNumber ValueKind = "number"
	ValueBool   ValueKind = "bool"
	ValueMap    ValueKind = "map"
)

// Value is a tagged union for the arbitrary values carried by a System's
// additional information and by parameter values. Exactly one variant is
// populated, indicated by Kind.
type Value struct {
	Kind ValueKind
	Str  string
	Num  float64
	Bool bool
	Map  map[string]Value
}

// StringValue builds a string variant.
func StringValue(s string) Value { return Value{Kind: ValueString, Str: s} }

// NumberValue builds a number variant.
func NumberValue(n float64) Value { return Value{Kind: ValueNumber, Num: n} }

// BoolValue builds a bool variant.
func BoolValue(b bool) Value { return Value{Kind: ValueBool, Bool: b} }

// MapValue builds a nested-map variant.
func MapValue(m map[string]Value) Value { return Value{Kind: ValueMap, Map: m} }

// ValueFrom converts a decoded JSON value (string, number, bool or object)
// into a Value. Arrays, nulls and other types are rejected.
func ValueFrom(raw any) (Value, error) {
	switch v := raw.(type) {
	case string:
		return StringValue(v), nil
	case float64:
		return NumberValue(v), nil
	case bool:
		return BoolValue(v), nil
	case map[string]any:
		m := make(map[string]Value, len(v))
		for k, inner := range v {
			converted, err := ValueFrom(inner)
			if err != nil {
				return Value{}, err
			}
			m[k] = converted
		}
		return MapValue(m), nil
	default:
		return Value{}, fmt.Errorf("unsupported value type %T", raw)
	}
}

// Interface returns the plain Go representation of the value, suitable for
// JSON encoding.
func (v Value) Interface() any {
	switch v.Kind {
	case ValueString:
		return v.Str
	case ValueNumber:
		return v.Num
	case ValueBool:
		return v.Bool
	case ValueMap:
		m := make(map[string]any, len(v.Map))
		for k, inner := range v.Map {
			m[k] = inner.Interface()
		}
		return m
	default:
		return nil
	}
}

// MarshalJSON encodes the active variant as its plain JSON value.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// UnmarshalJSON decodes a plain JSON value into the matching variant.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ValueFrom(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// RandomSentinel is the wire value a client sends for a dimension whose
// option should be drawn at generation time.
const RandomSentinel = "random"

// SelectionKind discriminates the value a dimension can hold in a selection.
type SelectionKind int

const (
	KindUnset SelectionKind = iota
	KindSingle
	KindMulti
	KindRandom
)

// DimensionValue is the tagged value for one dimension of a variable
// selection: unset, a single option, a list of options, or the random
// sentinel to be resolved before prompt building.
type DimensionValue struct {
	Kind SelectionKind
	One  string
	Many []string
}

// Single returns a value holding one option id.
func Single(option string) DimensionValue {
	return DimensionValue{Kind: KindSingle, One: option}
}

// Multi returns a value holding several option ids.
func Multi(options ...string) DimensionValue {
	return DimensionValue{Kind: KindMulti, Many: options}
}

// Random returns the resolve-at-generation-time sentinel value.
func Random() DimensionValue {
	return DimensionValue{Kind: KindRandom}
}

// IsEmpty reports whether the value carries nothing renderable:
// unset, an empty single, or an empty list.
func (v DimensionValue) IsEmpty() bool {
	switch v.Kind {
	case KindSingle:
		return v.One == ""
	case KindMulti:
		return len(v.Many) == 0
	case KindRandom:
		return false
	default:
		return true
	}
}

// Values returns the option ids carried by the value. Random and unset
// values carry none.
func (v DimensionValue) Values() []string {
	switch v.Kind {
	case KindSingle:
		if v.One == "" {
			return nil
		}
		return []string{v.One}
	case KindMulti:
		return v.Many
	default:
		return nil
	}
}

// MarshalJSON renders the wire shape clients use: a bare string for a
// single option, an array for multi-select, and the literal "random"
// for the sentinel.
func (v DimensionValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindSingle:
		return json.Marshal(v.One)
	case KindMulti:
		return json.Marshal(v.Many)
	case KindRandom:
		return json.Marshal(RandomSentinel)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts the three wire shapes: string, string array, or
// the "random" sentinel string.
func (v *DimensionValue) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == RandomSentinel {
			*v = Random()
		} else {
			*v = Single(single)
		}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*v = Multi(many...)
		return nil
	}

	if string(data) == "null" {
		*v = DimensionValue{}
		return nil
	}

	return fmt.Errorf("dimension value must be a string or string array, got %s", data)
}

// VariableSelection maps dimension keys to their selected values. A key
// absent from the map means the dimension is not used.
type VariableSelection map[string]DimensionValue

// Clone returns a shallow copy of the selection.
func (s VariableSelection) Clone() VariableSelection {
	out := make(VariableSelection, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// HasRandom reports whether any dimension still holds the random sentinel.
func (s VariableSelection) HasRandom() bool {
	for _, v := range s {
		if v.Kind == KindRandom {
			return true
		}
	}
	return false
}

// Value implements driver.Valuer so a selection can be stored as a JSON
// column alongside its caption.
func (s VariableSelection) Value() (driver.Value, error) {
	if s == nil {
		return "{}", nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for the JSON column form.
func (s *VariableSelection) Scan(value interface{}) error {
	if value == nil {
		*s = VariableSelection{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		str, ok := value.(string)
		if !ok {
			return errors.New("failed to scan VariableSelection")
		}
		bytes = []byte(str)
	}
	return json.Unmarshal(bytes, s)
}

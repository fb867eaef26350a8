package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Kind identifies the scalar type held by a FieldValue.
type Kind uint8

const (
	KindNone   Kind = iota // KindNone marks an absent or null value.
	KindString             // KindString holds text.
	KindNumber             // KindNumber holds a float64.
	KindBool               // KindBool holds a boolean.
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	default:
		return "none"
	}
}

// FieldValue is a tagged scalar: a string, a number or a bool.
// The zero value has KindNone.
type FieldValue struct {
	kind Kind
	str  string
	num  float64
	flag bool
}

// String returns a text FieldValue.
func String(s string) FieldValue {
	return FieldValue{kind: KindString, str: s}
}

// Number returns a numeric FieldValue.
func Number(f float64) FieldValue {
	return FieldValue{kind: KindNumber, num: f}
}

// Bool returns a boolean FieldValue.
func Bool(b bool) FieldValue {
	return FieldValue{kind: KindBool, flag: b}
}

// Kind returns the held scalar type.
func (v FieldValue) Kind() Kind {
	return v.kind
}

// IsZero reports whether v holds no value.
func (v FieldValue) IsZero() bool {
	return v.kind == KindNone
}

// Str returns the text value and whether v is a string.
func (v FieldValue) Str() (string, bool) {
	return v.str, v.kind == KindString
}

// Num returns the numeric value and whether v is a number.
// Strings are never converted.
func (v FieldValue) Num() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// Flag returns the boolean value and whether v is a bool.
func (v FieldValue) Flag() (bool, bool) {
	return v.flag, v.kind == KindBool
}

// Text renders v in the canonical form used by set, choice and search
// matching: strings as-is, numbers in shortest form, bools as "true"/"false".
// KindNone renders as "".
func (v FieldValue) Text() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.flag)
	default:
		return ""
	}
}

// Equal reports whether v and other hold the same kind and value.
func (v FieldValue) Equal(other FieldValue) bool {
	return v == other
}

func (v FieldValue) String() string {
	return v.Text()
}

// MarshalJSON encodes v as a JSON string, number, bool or null.
func (v FieldValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindNumber:
		if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
			return []byte("null"), nil
		}

		return json.Marshal(v.num)
	case KindBool:
		return json.Marshal(v.flag)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes a JSON scalar into v. null yields KindNone; arrays
// and objects are rejected.
func (v *FieldValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("dataset: empty field value")
	}

	switch data[0] {
	case 'n':
		*v = FieldValue{}
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = String(s)

		return nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*v = Bool(b)

		return nil
	case '{', '[':
		return fmt.Errorf("dataset: field value must be a scalar, got %c", data[0])
	default:
		var f float64
		if err := json.Unmarshal(data, &f); err != nil {
			return err
		}
		*v = Number(f)

		return nil
	}
}

package endpoint

import (
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
)

// Kind identifies which variant of a Value is populated.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindNull
	KindRaw
)

// Value is a closed set of payload value types: string, number, boolean,
// null, or a raw JSON fragment for nested structures. The zero Value is the
// empty string.
type Value struct {
	kind    Kind
	str     string
	num     float64
	boolean bool
	raw     json.RawMessage
}

func String(s string) Value {
	return Value{kind: KindString, str: s}
}

func Number(n float64) Value {
	return Value{kind: KindNumber, num: n}
}

func Bool(b bool) Value {
	return Value{kind: KindBool, boolean: b}
}

func Null() Value {
	return Value{kind: KindNull}
}

// RawJSON wraps a pre-encoded JSON fragment, e.g. a nested array or object.
// Validity is checked at serialization time, not here.
func RawJSON(raw json.RawMessage) Value {
	return Value{kind: KindRaw, raw: raw}
}

func (v Value) Kind() Kind {
	return v.kind
}

// CanonicalString returns the string form of the value and whether one
// exists. Null and raw JSON fragments have no canonical string form.
func (v Value) CanonicalString() (string, bool) {
	switch v.kind {
	case KindString:
		return v.str, true
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64), true
	case KindBool:
		return strconv.FormatBool(v.boolean), true
	default:
		return "", false
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindNumber:
		return json.Marshal(v.num)
	case KindBool:
		return json.Marshal(v.boolean)
	case KindNull:
		return []byte("null"), nil
	case KindRaw:
		if !json.Valid(v.raw) {
			return nil, errors.Errorf("invalid JSON fragment: %q", string(v.raw))
		}
		return v.raw, nil
	default:
		return nil, errors.Errorf("unknown value kind: %d", v.kind)
	}
}

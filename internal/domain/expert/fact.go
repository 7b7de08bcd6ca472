package expert

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"unicode"
	"unicode/utf8"
)

// Facts are loosely typed: callers may post any key, and values carry whatever
// the JSON body produced (string, float64, bool, nil, or composites).
type Facts map[string]any

// ToInternalForm converts an external (lowerFirst) fact name to the internal
// (UpperFirst) form used by rule conditions. Only the first rune is touched.
func ToInternalForm(name string) string {
	return setFirstRune(name, unicode.ToUpper)
}

// ToExternalForm converts an internal (UpperFirst) fact name to the external
// (lowerFirst) form presented to callers. Only the first rune is touched.
func ToExternalForm(name string) string {
	return setFirstRune(name, unicode.ToLower)
}

func setFirstRune(s string, conv func(rune) rune) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	converted := conv(r)
	if converted == r {
		return s
	}
	return string(converted) + s[size:]
}

// IsNull reports whether a fact value is absent, covering both untyped and
// typed nils (a nil *float64 stored in an any is still a nil value).
func IsNull(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}

// ValuesEqual compares two fact values with strict, type-sensitive equality:
// a string "3" never equals the number 3 and "true" never equals true.
// Composite values fall back to deep equality so they never panic.
func ValuesEqual(a, b any) bool {
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case nil:
		return b == nil
	default:
		return reflect.DeepEqual(a, b)
	}
}

// NormalizeFacts drops null-valued entries and converts the remaining keys to
// internal form. The input map is not modified.
func NormalizeFacts(facts Facts) Facts {
	normalized := make(Facts, len(facts))
	for name, value := range facts {
		if IsNull(value) {
			continue
		}
		normalized[ToInternalForm(name)] = value
	}
	return normalized
}

// CountProvided 回傳非空值事實的數量，供最低事實數前置檢查使用。
func CountProvided(facts Facts) int {
	n := 0
	for _, value := range facts {
		if !IsNull(value) {
			n++
		}
	}
	return n
}

// FactEntry is one named fact definition.
type FactEntry struct {
	Name  string
	Value any
}

// FactList is an ordered fact-definition mapping. Iteration and JSON
// serialization follow insertion order exactly, which a plain Go map cannot
// guarantee.
type FactList []FactEntry

// ToExternal returns a copy with every name converted to external form,
// preserving order.
func (l FactList) ToExternal() FactList {
	out := make(FactList, len(l))
	for i, e := range l {
		out[i] = FactEntry{Name: ToExternalForm(e.Name), Value: e.Value}
	}
	return out
}

// MarshalJSON serializes the list as a JSON object in list order.
func (l FactList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range l {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object keeping its key order.
func (l *FactList) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("fact definitions: expected JSON object, got %v", tok)
	}

	entries := FactList{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("fact definitions: unexpected key token %v", keyTok)
		}
		var value any
		if err := dec.Decode(&value); err != nil {
			return err
		}
		entries = append(entries, FactEntry{Name: key, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*l = entries
	return nil
}

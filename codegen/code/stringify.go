package code

import (
	"bytes"
	"encoding/json"
	"strings"
)

// lineTerminators escapes the characters JavaScript treats as line
// terminators inside string literals.
var lineTerminators = strings.NewReplacer("\u2028", `\u2028`, "\u2029", `\u2029`)

// SafeStringify encodes v as a quoted JSON literal that can be embedded in
// generated source. HTML characters are left as-is, U+2028 and U+2029 are
// always escaped.
func SafeStringify(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", &EncodingError{Value: v, Err: err}
	}
	return lineTerminators.Replace(strings.TrimSuffix(buf.String(), "\n")), nil
}

// Stringify returns a fragment holding the quoted literal of v.
func Stringify(v any) (*Fragment, error) {
	s, err := SafeStringify(v)
	if err != nil {
		return nil, err
	}
	return New(s), nil
}

// MustStringify is like Stringify but panics if v cannot be encoded.
func MustStringify(v any) *Fragment {
	f, err := Stringify(v)
	if err != nil {
		panic(err)
	}
	return f
}

func mustSafeStringify(v any) string {
	s, err := SafeStringify(v)
	if err != nil {
		panic(err)
	}
	return s
}

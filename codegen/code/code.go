package code

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

type (
	// Code is implemented by the values that can be spliced into a template
	// as code: Name and *Fragment.
	Code interface {
		fmt.Stringer
		// EmptyStr reports whether the rendered code is "" or the empty
		// string literal "".
		EmptyStr() bool
		// IsExpr reports whether the code is a string expression built by
		// StrTemplate and thus a candidate for constant folding.
		IsExpr() bool
		// Optimize folds constant string concatenations and returns the
		// receiver.
		Optimize() Code
		// UsedNames returns the identifiers referenced by the code.
		UsedNames() UsedNames

		appendTo(items []Item) []Item
	}

	// Item is a single element of a fragment: a Name, raw source text
	// (string), a number, a bool or nil (null).
	Item = any

	// Fragment is a piece of generated code made of items together with the
	// identifiers it references.
	Fragment struct {
		items []Item
		names UsedNames
		expr  bool
	}
)

// Nil is the empty fragment.
var Nil = New("")

// New returns a fragment made of the raw source text s.
func New(s string) *Fragment {
	return &Fragment{items: []Item{s}}
}

// NewFragment returns a fragment made of the given items. names may be nil.
// expr marks fragments that evaluate to a runtime string and may be folded.
func NewFragment(items []Item, names UsedNames, expr bool) *Fragment {
	return &Fragment{items: items, names: names, expr: expr}
}

// String renders the fragment by concatenating the text of its items.
func (f *Fragment) String() string {
	var sb strings.Builder
	for _, it := range f.items {
		sb.WriteString(itemString(it))
	}
	return sb.String()
}

// EmptyStr reports whether the fragment renders to "" or to the empty string
// literal "".
func (f *Fragment) EmptyStr() bool {
	s := f.String()
	return s == "" || s == `""`
}

// IsExpr reports whether f was built by StrTemplate.
func (f *Fragment) IsExpr() bool {
	return f.expr
}

// UsedNames returns the usage map recorded when f was built. It may be nil.
func (f *Fragment) UsedNames() UsedNames {
	return f.names
}

// Items returns a copy of the fragment items.
func (f *Fragment) Items() []Item {
	out := make([]Item, len(f.items))
	copy(out, f.items)
	return out
}

func (f *Fragment) appendTo(items []Item) []Item {
	return append(items, f.items...)
}

// itemString renders a single item.
func itemString(it Item) string {
	switch v := it.(type) {
	case string:
		return v
	case Name:
		return v.str
	}
	if s, ok := scalarString(it); ok {
		return s
	}
	return fmt.Sprint(it)
}

// isScalar reports whether v is nil, a bool or a number, the values that are
// spliced as-is into generated code.
func isScalar(v any) bool {
	_, ok := scalarString(v)
	return ok
}

// scalarString renders nil, booleans and numbers the way JavaScript prints
// them.
func scalarString(v any) (string, bool) {
	if v == nil {
		return "null", true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return formatNumber(rv.Float(), 32), true
	case reflect.Float64:
		return formatNumber(rv.Float(), 64), true
	}
	return "", false
}

// formatNumber formats f like Number.prototype.toString: plain decimal
// notation for 1e-6 <= |f| < 1e21, exponent notation otherwise.
func formatNumber(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	fmtc := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		fmtc = 'e'
	}
	b := strconv.AppendFloat(nil, f, fmtc, -1, bits)
	if fmtc == 'e' {
		// e-07 => e-7
		n := len(b)
		if n >= 4 && b[n-4] == 'e' && b[n-3] == '-' && b[n-2] == '0' {
			b[n-2] = b[n-1]
			b = b[:n-1]
		}
	}
	return string(b)
}

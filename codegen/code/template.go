package code

import (
	"fmt"
	"strings"
)

// Template interleaves segments and args (segments[0] args[0] segments[1] ...)
// into a code fragment. Code arguments are spliced verbatim, expression
// fragments are optimized first. Numbers, booleans and nil are written in
// their literal form. Any other argument is data and is encoded with
// SafeStringify.
//
// Template panics if len(segments) != len(args)+1 or if a data argument
// cannot be encoded.
func Template(segments []string, args ...any) *Fragment {
	checkArity(segments, args)
	names := UsedNames{}
	items := []Item{segments[0]}
	for i, arg := range args {
		v := interpolate(arg)
		if c, ok := v.(Code); ok {
			MergeUsedNames(names, c, Add)
			if c.IsExpr() {
				c.Optimize()
			}
			items = c.appendTo(items)
		} else {
			items = append(items, v)
		}
		items = append(items, segments[i+1])
	}
	return NewFragment(items, names, false)
}

// StrTemplate builds an expression evaluating to the string obtained by
// interleaving segments and args. Segments and data arguments are encoded as
// string literals, Code arguments are concatenated as live values. A []string
// argument is joined with commas. The returned fragment is an expression and
// is folded when optimized.
//
// StrTemplate panics if len(segments) != len(args)+1 or if an argument cannot
// be encoded.
func StrTemplate(segments []string, args ...any) *Fragment {
	checkArity(segments, args)
	names := UsedNames{}
	var items []Item
	if segments[0] != "" {
		items = append(items, mustSafeStringify(segments[0]))
	}
	for i, arg := range args {
		if len(items) > 0 {
			items = append(items, "+")
		}
		v := interpolateStr(arg)
		if c, ok := v.(Code); ok {
			MergeUsedNames(names, c, Add)
			items = c.appendTo(items)
		} else {
			items = append(items, v)
		}
		if s := segments[i+1]; s != "" {
			items = append(items, "+", mustSafeStringify(s))
		}
	}
	return NewFragment(items, names, true)
}

func interpolate(x any) any {
	if _, ok := x.(Code); ok || isScalar(x) {
		return x
	}
	return mustSafeStringify(x)
}

func interpolateStr(x any) any {
	if list, ok := x.([]string); ok {
		x = strings.Join(list, ",")
	}
	return interpolate(x)
}

func checkArity(segments []string, args []any) {
	if len(segments) != len(args)+1 {
		panic(fmt.Sprintf("code: template has %d segments for %d arguments", len(segments), len(args)))
	}
}

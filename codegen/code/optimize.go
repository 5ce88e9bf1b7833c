package code

import "strings"

// Optimize folds string literals joined by "+" in place and returns f.
// Adjacent literals are merged, and numbers, booleans and null next to a
// literal are absorbed into it. Names are never folded. Optimize is
// idempotent.
func (f *Fragment) Optimize() Code {
	f.items = fold(f.items)
	return f
}

// fold compacts items and returns the resulting slice, reusing its backing
// array. After a merge the scan steps back one triple so that the merged
// literal is also tried against its left neighbor.
func fold(items []Item) []Item {
	i := 1
	for i < len(items)-1 {
		if op, ok := items[i].(string); ok && op == "+" {
			if res, ok := foldPair(items[i-1], items[i+1]); ok {
				items[i-1] = res
				items = append(items[:i], items[i+2:]...)
				if i > 2 {
					i -= 2
				} else {
					i = 1
				}
				continue
			}
		}
		i++
	}
	return items
}

// foldPair merges a + b into a single literal when possible.
func foldPair(a, b Item) (string, bool) {
	sa, aStr := a.(string)
	sb, bStr := b.(string)
	_, aName := a.(Name)
	_, bName := b.(Name)
	var res string
	switch {
	case aStr && bStr:
		if strings.HasSuffix(sa, `"`) && strings.HasPrefix(sb, `"`) {
			res = sa[:len(sa)-1] + sb[1:]
		}
	case aStr && strings.HasSuffix(sa, `"`) && !bName:
		res = sa[:len(sa)-1] + itemString(b) + `"`
	case bStr && strings.HasPrefix(sb, `"`) && !aName:
		res = `"` + itemString(a) + sb[1:]
	}
	return res, res != ""
}

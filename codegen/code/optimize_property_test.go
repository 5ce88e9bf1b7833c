package code

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// buildStrTemplate derives segments and arguments from generated data. kinds
// selects the type of each argument: name, integer, word, bool or null.
func buildStrTemplate(kinds []int, words []string) *Fragment {
	segments := make([]string, len(kinds)+1)
	args := make([]any, len(kinds))
	word := func(i int) string {
		if len(words) == 0 {
			return ""
		}
		return words[i%len(words)]
	}
	for i := range segments {
		segments[i] = word(i)
	}
	for i, k := range kinds {
		switch k {
		case 0:
			args[i] = MustName(fmt.Sprintf("v%d", i))
		case 1:
			args[i] = i
		case 2:
			args[i] = word(i + 1)
		case 3:
			args[i] = i%2 == 0
		default:
			args[i] = nil
		}
	}
	return StrTemplate(segments, args...)
}

// TestOptimizeProperty verifies that constant folding is idempotent, never
// folds identifiers and preserves the value of literal-only expressions.
func TestOptimizeProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("fold is idempotent", prop.ForAll(
		func(kinds []int, words []string) bool {
			f := buildStrTemplate(kinds, words)
			once := f.Optimize().String()
			items := f.Items()
			twice := f.Optimize().String()
			return once == twice && len(items) == len(f.Items())
		},
		gen.SliceOf(gen.IntRange(0, 4)),
		gen.SliceOf(gen.AlphaString()),
	))

	properties.Property("identifiers survive folding", prop.ForAll(
		func(kinds []int, words []string) bool {
			f := buildStrTemplate(kinds, words)
			before := countNames(f.Items())
			f.Optimize()
			return countNames(f.Items()) == before
		},
		gen.SliceOf(gen.IntRange(0, 4)),
		gen.SliceOf(gen.AlphaString()),
	))

	properties.Property("literal-only expressions fold to their value", prop.ForAll(
		func(parts []string) bool {
			if len(parts)%2 == 0 {
				parts = append(parts, "")
			}
			var segments []string
			var args []any
			for i, p := range parts {
				if i%2 == 0 {
					segments = append(segments, p)
				} else {
					args = append(args, p)
				}
			}
			want := strings.Join(parts, "")
			f := StrTemplate(segments, args...)
			f.Optimize()
			items := f.Items()
			if len(items) == 0 {
				return segments[0] == "" && len(args) == 0
			}
			if len(items) != 1 {
				return false
			}
			var got string
			if err := json.Unmarshal([]byte(f.String()), &got); err != nil {
				return false
			}
			return got == want
		},
		gen.SliceOf(gen.AnyString()),
	))

	properties.TestingRun(t)
}

func countNames(items []Item) int {
	n := 0
	for _, it := range items {
		if _, ok := it.(Name); ok {
			n++
		}
	}
	return n
}

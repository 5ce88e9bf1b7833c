package code

type (
	// UsedNames maps identifier text to the number of references. Counts are
	// signed so that removing a fragment can be expressed as merging it with
	// the Remove increment.
	UsedNames map[string]int

	// Inc is the factor applied when merging usage counts.
	Inc int

	// NamesProvider is implemented by values that reference identifiers. Name
	// and *Fragment implement it, higher-level generator nodes may too.
	NamesProvider interface {
		UsedNames() UsedNames
	}
)

const (
	// Add merges usage counts.
	Add Inc = 1
	// Remove subtracts usage counts.
	Remove Inc = -1
)

// MergeUsedNames adds inc times the usage counts of from to into. It must be
// called exactly once per fragment spliced into another so that counts stay
// exact.
func MergeUsedNames(into UsedNames, from NamesProvider, inc Inc) {
	if n, ok := from.(Name); ok {
		into[n.str] += int(inc)
		return
	}
	for name, count := range from.UsedNames() {
		into[name] += int(inc) * count
	}
}

// UsedNamesOf returns the usage map of v: a single reference for a Name, the
// recorded map for a *Fragment and nil for any other value.
func UsedNamesOf(v any) UsedNames {
	switch c := v.(type) {
	case Name:
		return UsedNames{c.str: 1}
	case *Fragment:
		return c.names
	}
	return nil
}

package code

type (
	// Name is an identifier embedded in generated code. Names are live
	// references: their run-time value is unknown at generation time so they
	// are never folded into string literals.
	Name struct {
		str string
	}
)

// NewName validates s against the identifier grammar and returns the
// corresponding Name. It returns an *InvalidIdentifierError when s is not a
// valid identifier.
func NewName(s string) (Name, error) {
	if !IsIdentifier(s) {
		return Name{}, &InvalidIdentifierError{Text: s}
	}
	return Name{str: s}, nil
}

// MustName is like NewName but panics when s is not a valid identifier. Use it
// for names written by the generator itself where an invalid name is a
// programming error.
func MustName(s string) Name {
	n, err := NewName(s)
	if err != nil {
		panic(err)
	}
	return n
}

// IsIdentifier reports whether s matches [A-Za-z_$][A-Za-z_$0-9]*.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_', c == '$':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// String returns the identifier text.
func (n Name) String() string {
	return n.str
}

// EmptyStr always returns false: an identifier is never the empty string.
func (n Name) EmptyStr() bool {
	return false
}

// IsExpr returns false, names are never folded.
func (n Name) IsExpr() bool {
	return false
}

// Optimize returns n unchanged.
func (n Name) Optimize() Code {
	return n
}

// UsedNames returns a usage map referencing n once.
func (n Name) UsedNames() UsedNames {
	return UsedNames{n.str: 1}
}

func (n Name) appendTo(items []Item) []Item {
	return append(items, n)
}

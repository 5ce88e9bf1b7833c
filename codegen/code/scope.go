package code

import (
	"goa.design/goa/v3/codegen"

	"goa.design/jscodegen/codegen/naming"
)

// Scope allocates identifiers that are unique within a generated function or
// module. A Scope is not safe for concurrent use.
type Scope struct {
	scope *codegen.NameScope
	taken map[string]struct{}
	names []Name
}

// NewScope returns an empty scope.
func NewScope() *Scope {
	return &Scope{
		scope: codegen.NewNameScope(),
		taken: make(map[string]struct{}),
	}
}

// Name returns a new identifier derived from prefix. The prefix is sanitized
// so that any input yields a valid identifier, and a numeric suffix is added
// when the name was already allocated.
func (s *Scope) Name(prefix string) Name {
	candidate := s.scope.Unique(naming.IdentifierPrefix(prefix))
	for {
		if _, ok := s.taken[candidate]; !ok {
			break
		}
		candidate = s.scope.Unique(candidate)
	}
	s.taken[candidate] = struct{}{}
	n := MustName(candidate)
	s.names = append(s.names, n)
	return n
}

// Names returns the names allocated so far in allocation order.
func (s *Scope) Names() []Name {
	out := make([]Name, len(s.names))
	copy(out, s.names)
	return out
}

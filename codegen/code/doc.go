// Package code provides the intermediate representation used to assemble
// fragments of generated JavaScript.
//
// A fragment is an ordered list of items: identifiers ([Name]), raw source
// text, numbers, booleans and null. Fragments are built with [Template], which
// splices its arguments verbatim as code, or with [StrTemplate], which builds
// an expression evaluating to a runtime string and safely quotes every data
// argument. Each fragment records how many times it references each
// identifier so that generators can drop declarations nothing uses.
//
// Expression fragments are compacted by [Fragment.Optimize], which folds
// adjacent string literals joined by "+" into a single literal:
//
//	x := code.MustName("x")
//	f := code.StrTemplate([]string{"a", "b", "c"}, 1, x)
//	f.Optimize().String() // "a1b"+x+"c"
//
// The package is not safe for concurrent mutation: a fragment must not be
// optimized from two goroutines at once.
package code

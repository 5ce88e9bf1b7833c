// Package naming contains the naming helpers shared by the code fragment
// builders and the file emitter.
//
// The functions in this package turn arbitrary user input (schema keywords,
// property names, module names) into identifiers and file tokens that are
// always valid in generated JavaScript.
package naming

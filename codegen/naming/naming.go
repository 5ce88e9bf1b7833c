package naming

import (
	"strings"

	"goa.design/goa/v3/codegen"
)

// reserved lists the JavaScript reserved words and the globals generated code
// must not shadow.
var reserved = map[string]struct{}{
	"arguments": {}, "await": {}, "break": {}, "case": {}, "catch": {},
	"class": {}, "const": {}, "continue": {}, "debugger": {}, "default": {},
	"delete": {}, "do": {}, "else": {}, "enum": {}, "eval": {},
	"export": {}, "extends": {}, "false": {}, "finally": {}, "for": {},
	"function": {}, "if": {}, "implements": {}, "import": {}, "in": {},
	"instanceof": {}, "interface": {}, "let": {}, "new": {}, "null": {},
	"package": {}, "private": {}, "protected": {}, "public": {}, "return": {},
	"static": {}, "super": {}, "switch": {}, "this": {}, "throw": {},
	"true": {}, "try": {}, "typeof": {}, "undefined": {}, "var": {},
	"void": {}, "while": {}, "with": {}, "yield": {},
	"Infinity": {}, "NaN": {},
}

// IsReserved reports whether s is a JavaScript reserved word or a global
// value name that cannot be redeclared.
func IsReserved(s string) bool {
	_, ok := reserved[s]
	return ok
}

// IdentifierPrefix converts an arbitrary string into a prefix that is a valid
// identifier ([A-Za-z_$][A-Za-z_$0-9]*) and not a reserved word.
//
// Characters outside the identifier alphabet are replaced with '_', a leading
// digit is prefixed with '_' and reserved words get a trailing '_'. When the
// result is empty, IdentifierPrefix returns "v".
func IdentifierPrefix(s string) string {
	s = strings.Map(func(r rune) rune {
		if isIdentRune(r) {
			return r
		}
		return '_'
	}, s)
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	if s == "" || s == "_" {
		return "v"
	}
	if s[0] >= '0' && s[0] <= '9' {
		s = "_" + s
	}
	if IsReserved(s) {
		s += "_"
	}
	return s
}

// SanitizeToken converts an arbitrary string into a filesystem-safe token.
// It is used to derive deterministic file names from module names.
//
// The returned token:
//   - is lower snake_case
//   - contains only [a-z0-9_]
//   - never starts/ends with '_' and never contains repeated "__"
//
// When the sanitized result is empty, SanitizeToken returns fallback.
func SanitizeToken(name, fallback string) string {
	s := strings.ToLower(codegen.SnakeCase(name))
	s = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			return r
		}
		return '_'
	}, s)
	s = strings.Trim(s, "_")
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	if s == "" {
		return fallback
	}
	return s
}

func isIdentRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '$'
}

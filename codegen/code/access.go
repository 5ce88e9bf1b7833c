package code

// GetProperty returns the property access for key: ".key" when key is a
// string that is a valid identifier, "[key]" otherwise. String and number keys
// are quoted, Code keys are spliced verbatim.
func GetProperty(key any) *Fragment {
	if s, ok := key.(string); ok && IsIdentifier(s) {
		return New("." + s)
	}
	return Template([]string{"[", "]"}, key)
}

// StrConcat returns the string concatenation of c1 and c2, eliding either
// operand when it is empty.
func StrConcat(c1, c2 Code) Code {
	if c2.EmptyStr() {
		return c1
	}
	if c1.EmptyStr() {
		return c2
	}
	return StrTemplate([]string{"", "", ""}, c1, c2)
}

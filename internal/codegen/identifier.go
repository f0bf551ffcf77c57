package codegen

import "unicode"

// IsIdentifier reports whether s can be used as a bare C# member name.
// Verbatim (@-prefixed) identifiers and unicode escapes are not accepted.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if i == 0 {
			if !isIdentifierStart(r) {
				return false
			}
			continue
		}
		if !isIdentifierPart(r) {
			return false
		}
	}

	return true
}

// IsKeyword reports whether s is a reserved C# keyword
func IsKeyword(s string) bool {
	_, ok := csharpKeywords[s]
	return ok
}

func isIdentifierStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.Is(unicode.Nl, r)
}

func isIdentifierPart(r rune) bool {
	if isIdentifierStart(r) {
		return true
	}
	return unicode.In(r, unicode.Nd, unicode.Mn, unicode.Mc, unicode.Pc)
}

var csharpKeywords = map[string]struct{}{
	"abstract": {}, "as": {}, "base": {}, "bool": {}, "break": {}, "byte": {},
	"case": {}, "catch": {}, "char": {}, "checked": {}, "class": {}, "const": {},
	"continue": {}, "decimal": {}, "default": {}, "delegate": {}, "do": {}, "double": {},
	"else": {}, "enum": {}, "event": {}, "explicit": {}, "extern": {}, "false": {},
	"finally": {}, "fixed": {}, "float": {}, "for": {}, "foreach": {}, "goto": {},
	"if": {}, "implicit": {}, "in": {}, "int": {}, "interface": {}, "internal": {},
	"is": {}, "lock": {}, "long": {}, "namespace": {}, "new": {}, "null": {},
	"object": {}, "operator": {}, "out": {}, "override": {}, "params": {}, "private": {},
	"protected": {}, "public": {}, "readonly": {}, "ref": {}, "return": {}, "sbyte": {},
	"sealed": {}, "short": {}, "sizeof": {}, "stackalloc": {}, "static": {}, "string": {},
	"struct": {}, "switch": {}, "this": {}, "throw": {}, "true": {}, "try": {},
	"typeof": {}, "uint": {}, "ulong": {}, "unchecked": {}, "unsafe": {}, "ushort": {},
	"using": {}, "virtual": {}, "void": {}, "volatile": {}, "while": {},
}

package naming

import (
	"unicode"
	"unicode/utf8"
)

// UpperFirst uppercases the first rune of name.
func UpperFirst(name string) string {
	if name == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}

// LowerFirst lowercases the first rune of name, unless the second rune is
// already uppercase: PAKEVerifier must not become pAKEVerifier.
func LowerFirst(name string) string {
	if name == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(name)
	if rest := name[size:]; rest != "" {
		second, _ := utf8.DecodeRuneInString(rest)
		if unicode.IsUpper(second) {
			return name
		}
	}
	return string(unicode.ToLower(first)) + name[size:]
}

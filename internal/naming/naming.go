// Package naming derives the identifiers of generated filter code from field
// names.
package naming

import (
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Plural returns the default plural of a field name. It only appends "s", so
// "Person" becomes "Persons" and "Address" becomes "Addresss". An explicit
// plural option is the way to get anything else.
func Plural(name string) string {
	return name + "s"
}

// Upper upper-cases the first rune of name.
//
// e.g., Upper("name_a") => "Name_a"
func Upper(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// Factory returns the name of the function creating an empty filter for the
// type. It is exported only if the type is exported.
//
// e.g., Factory("User") => "NewUserFilter", Factory("user") => "newUserFilter"
func Factory(typeName string) string {
	if token.IsExported(typeName) {
		return "New" + typeName + "Filter"
	}
	return "new" + Upper(typeName) + "Filter"
}

// With returns the name of a builder method for the field or plural name.
//
// e.g., With("name") => "WithName"
func With(name string) string {
	return "With" + Upper(name)
}

// Local returns a name for a local variable holding the value of a field. The
// first word is lower-cased entirely so that initialisms read naturally.
//
// e.g., Local("Name") => "name", Local("ID") => "id", Local("URLPath") => "urlPath"
//
// The default plural of an initialism is lower-cased as a whole.
//
// e.g., Local("IDs") => "ids"
func Local(name string) string {
	if name == "" || name == "_" {
		return "v"
	}

	var local string
	if initialism, ok := strings.CutSuffix(name, "s"); ok && initialism != "" && strings.ToUpper(initialism) == initialism {
		local = strings.ToLower(name)
	} else {
		words := SplitWords(name)
		words[0] = strings.ToLower(words[0])
		local = strings.Join(words, "")
	}
	if token.Lookup(local).IsKeyword() {
		return local + "_"
	}
	return local
}

// IsIdent reports whether s can be used as a Go identifier which is not blank.
func IsIdent(s string) bool {
	return s != "_" && token.IsIdentifier(s)
}

// SplitWords splits a string into words based on character transitions. It
// detects word boundaries at:
//   - Uppercase letter after lowercase letter: "getID" -> "get" + "ID"
//   - Uppercase letter before lowercase letter: "URLPath" -> "URL" + "Path"
//   - Around underscores: "name_a" -> "name" + "_" + "a"
//   - Around digits: "file2name" -> "file" + "2" + "name"
func SplitWords(s string) []string {
	var words []string
	i := 0
	for i < len(s) {
		splitted := false

		j := i + 1
		for ; j < len(s); j++ {
			var next byte
			if j != len(s)-1 {
				next = s[j+1]
			}

			if isWordBoundary(s[j-1], s[j], next) {
				words = append(words, s[i:j])
				i = j
				splitted = true
				break
			}
		}

		if !splitted {
			words = append(words, s[i:])
			break
		}
	}
	return words
}

// isWordBoundary detects word boundaries based on character transitions.
func isWordBoundary(prev, curr, next byte) bool {
	switch {
	case isLower(prev) && isUpper(curr):
		// getID
		//    ^
		return true
	case isUpper(prev) && isUpper(curr) && isLower(next):
		// URLPath
		//    ^
		return true
	case prev != '_' && curr == '_', prev == '_' && curr != '_':
		// name_a
		//     ^^
		return true
	case isLetter(prev) && isDigit(curr), isDigit(prev) && isLetter(curr):
		// file2name
		//     ^^
		return true
	}
	return false
}

func isLower(b byte) bool  { return 'a' <= b && b <= 'z' }
func isUpper(b byte) bool  { return 'A' <= b && b <= 'Z' }
func isDigit(b byte) bool  { return '0' <= b && b <= '9' }
func isLetter(b byte) bool { return isLower(b) || isUpper(b) }

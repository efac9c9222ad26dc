package astgen

import (
	"strings"
	"unicode"
)

var goKeywords = map[string]struct{}{
	"break": {}, "default": {}, "func": {}, "interface": {}, "select": {},
	"case": {}, "defer": {}, "go": {}, "map": {}, "struct": {},
	"chan": {}, "else": {}, "goto": {}, "package": {}, "switch": {},
	"const": {}, "fallthrough": {}, "if": {}, "range": {}, "type": {},
	"continue": {}, "for": {}, "import": {}, "return": {}, "var": {},
}

// reservedParams are constructor parameter names the generator uses itself.
var reservedParams = map[string]struct{}{
	"pos": {},
}

func sanitizeIdent(name string) string {
	if name == "" {
		return "_"
	}
	var b strings.Builder
	for i, r := range name {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			if i == 0 && unicode.IsDigit(r) {
				b.WriteByte('_')
			}
			b.WriteRune(r)
			continue
		}
		b.WriteByte('_')
	}
	return b.String()
}

func exportIdent(name string) string {
	safe := sanitizeIdent(name)
	return strings.ToUpper(safe[:1]) + safe[1:]
}

func unexportIdent(name string) string {
	safe := sanitizeIdent(name)
	return strings.ToLower(safe[:1]) + safe[1:]
}

// paramIdent turns a field name into a constructor parameter name.
func paramIdent(name string) string {
	out := unexportIdent(name)
	if _, ok := goKeywords[out]; ok {
		return out + "_"
	}
	if _, ok := reservedParams[out]; ok {
		return out + "_"
	}
	return out
}

package astgen

import (
	"strings"
	"unicode"

	"github.com/dhamidi/jscst/syntax"
)

// tokenConstOverrides lists the kinds whose Go constant does not follow the
// camel-cased kind name.
var tokenConstOverrides = map[syntax.Kind]string{
	syntax.TokenEOF:    "TokenEOF",
	syntax.TokenUShr:   "TokenUShr",
	syntax.TokenUShrEq: "TokenUShrEq",
}

// camel turns a snake_case or SCREAMING_CASE name into CamelCase:
// "l_paren_token" becomes "LParenToken".
func camel(s string) string {
	var b strings.Builder
	for _, part := range strings.Split(s, "_") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(strings.ToLower(part[1:]))
	}
	return b.String()
}

// snake turns a CamelCase node name into snake_case: "ElseClause" becomes
// "else_clause".
func snake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// screaming turns a production name into its kind name: "JsIfStatement"
// becomes "JS_IF_STATEMENT".
func screaming(s string) string {
	return strings.ToUpper(snake(s))
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func kindConst(k syntax.Kind) string {
	if k.IsNode() {
		return "Kind" + camel(k.String())
	}
	if name, ok := tokenConstOverrides[k]; ok {
		return name
	}
	return "Token" + camel(strings.TrimSuffix(k.String(), "_KW"))
}

// tokenLabel is the field label of an unlabeled token: "l_paren_token".
func tokenLabel(k syntax.Kind) string {
	return strings.ToLower(strings.TrimSuffix(k.String(), "_KW")) + "_token"
}

// nodeLabel is the field label of an unlabeled node reference:
// "JsAnyExpression" becomes "expression".
func nodeLabel(name string) string {
	name = strings.TrimPrefix(name, "JsAny")
	name = strings.TrimPrefix(name, "Js")
	return snake(name)
}

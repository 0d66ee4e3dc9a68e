package generator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/typeforge/typeforge/internal/models"
)

// typeScriptTarget emits exported interface declarations. It needs no
// runtime imports, so header and dependencies are empty.
type typeScriptTarget struct{}

var tsIdentifierRegex = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

func (t *typeScriptTarget) primitive(kind models.Kind) string {
	switch kind {
	case models.KindString:
		return "string"
	case models.KindNumber:
		return "number"
	case models.KindBoolean:
		return "boolean"
	case models.KindNull:
		return "null"
	default:
		return "any"
	}
}

func (t *typeScriptTarget) anyPlaceholder() string {
	return "any"
}

func (t *typeScriptTarget) array(elem string) string {
	// Union element types need parentheses: (number | null)[]
	if strings.Contains(elem, " | ") {
		return "(" + elem + ")[]"
	}
	return elem + "[]"
}

func (t *typeScriptTarget) nullable(expr string) string {
	return expr + " | null"
}

func (t *typeScriptTarget) declaration(name string, fields []fieldSpec) string {
	if len(fields) == 0 {
		return fmt.Sprintf("export interface %s {}", name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "export interface %s {\n", name)
	for _, f := range fields {
		key := f.Key
		if !tsIdentifierRegex.MatchString(key) {
			key = fmt.Sprintf("%q", key)
		}
		if f.Optional {
			key += "?"
		}
		typ := f.Type
		if f.Nullable {
			typ = t.nullable(typ)
		}
		fmt.Fprintf(&b, "  %s: %s;\n", key, typ)
	}
	b.WriteString("}")
	return b.String()
}

func (t *typeScriptTarget) alias(name, expr string) string {
	return fmt.Sprintf("export type %s = %s;", name, expr)
}

func (t *typeScriptTarget) header() string {
	return ""
}

func (t *typeScriptTarget) dependencies() []string {
	return nil
}
